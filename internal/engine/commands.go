// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/bind/internal/interface/boolean"
	"github.com/michaelmacinnis/bind/internal/interface/literal"
	"github.com/michaelmacinnis/bind/internal/interface/rational"
	"github.com/michaelmacinnis/bind/internal/interface/reference"
	"github.com/michaelmacinnis/bind/internal/interface/scope"
	"github.com/michaelmacinnis/bind/internal/reader"
	"github.com/michaelmacinnis/bind/internal/type/env"
	"github.com/michaelmacinnis/bind/internal/type/key"
	"github.com/michaelmacinnis/bind/internal/type/num"
	"github.com/michaelmacinnis/bind/internal/validate"
)

type command struct {
	usage string
	run   func(e *T, args []reader.Word) error
}

var commands map[string]command //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	commands = map[string]command{
		"alias":    {"alias [NS] NAME OTHER", alias},
		"bound":    {"bound [NS] NAME", bound},
		"copy":     {"copy", duplicate},
		"define":   {"define [NS] NAME VALUE", define},
		"describe": {"describe [PATTERN]", describe},
		"enter":    {"enter [use=LABEL | [NS:]NAME=VALUE]...", enter},
		"get":      {"get [NS] NAME", get},
		"help":     {"help", help},
		"incr":     {"incr NAME [STEP]", incr},
		"label":    {"label LABEL", label},
		"leave":    {"leave", leave},
		"owner":    {"owner [NS] NAME", owner},
		"rbound":   {"rbound [NS] NAME", rbound},
		"replace":  {"replace NS NAME VALUE", replace},
		"set":      {"set [NS] NAME VALUE", set},
		"truth":    {"truth [NS] NAME", truth},
	}
}

func alias(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 2, key.Variable)
	if err != nil {
		return err
	}

	_, r, err := e.resolve(ns, v[1].Text)
	if err != nil {
		return err
	}

	e.Scope().DefineIn(ns, v[0].Text, r.Get())

	return nil
}

func bound(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 1, key.Variable)
	if err != nil {
		return err
	}

	e.println(e.Scope().IsBoundIn(ns, v[0].Text))

	return nil
}

func define(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 2, key.Variable)
	if err != nil {
		return err
	}

	e.Scope().DefineIn(ns, v[0].Text, v[1].Value())

	return nil
}

func describe(e *T, args []reader.Word) error {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return err
	}

	if len(v) == 0 {
		fmt.Fprint(e.out, e.Scope().Describe())
		return nil
	}

	e.Scope().Each(func(k key.T, r reference.T) bool {
		var ok bool

		ok, err = adapted.Match(v[0].Text, k.String())
		if err != nil {
			return false
		}

		if ok {
			fmt.Fprint(e.out, env.Line(k, r.Get()))
		}

		return true
	})

	return err
}

func duplicate(e *T, args []reader.Word) error {
	if _, err := validate.Fixed(args, 0, 0); err != nil {
		return err
	}

	s := e.Scope()
	c := s.Copy()

	e.frame.SetScope(c)

	if s == e.global {
		e.global = c
		e.labels["global"] = c
	}

	return nil
}

func enter(e *T, args []reader.Word) error {
	var (
		bs   []scope.Binding
		uses []scope.T
	)

	for _, w := range args {
		k, text, ok := strings.Cut(w.Text, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected NAME=VALUE or use=LABEL, got %q", w.Text)
		}

		if k == "use" {
			s, ok := e.labels[text]
			if !ok {
				return fmt.Errorf("no scope labelled %q", text)
			}

			uses = append(uses, s)

			continue
		}

		ns, name, ok := strings.Cut(k, ":")
		if !ok {
			ns, name = key.Variable, k
		}

		bs = append(bs, scope.Binding{
			Key:   key.New(ns, name),
			Value: reader.Word{Text: text}.Value(),
		})
	}

	e.frame = e.frame.Push(uses, bs...)

	return nil
}

func get(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 1, key.Variable)
	if err != nil {
		return err
	}

	_, r, err := e.resolve(ns, v[0].Text)
	if err != nil {
		return err
	}

	e.println(literal.Display(r.Get()))

	return nil
}

func help(e *T, args []reader.Word) error {
	for _, k := range Commands() {
		e.println(commands[k].usage)
	}

	return nil
}

func incr(e *T, args []reader.Word) error {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return err
	}

	step := reader.Word{Text: "1"}
	if len(v) == 2 {
		step = v[1]
	}

	_, r, err := e.resolve(key.Variable, v[0].Text)
	if err != nil {
		return err
	}

	n, err := rational.Sum(r.Get(), step.Value())
	if err != nil {
		return err
	}

	r.Set(num.Rat(n))

	return nil
}

func label(e *T, args []reader.Word) error {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return err
	}

	e.labels[v[0].Text] = e.Scope()

	return nil
}

func leave(e *T, args []reader.Word) error {
	if _, err := validate.Fixed(args, 0, 0); err != nil {
		return err
	}

	if e.frame.Depth() == 0 {
		return errors.New("already at top level")
	}

	e.frame = e.frame.Pop()

	return nil
}

func owner(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 1, key.Variable)
	if err != nil {
		return err
	}

	o, _ := e.frame.Resolve(ns, v[0].Text)
	if o == nil {
		e.println("none")
		return nil
	}

	n := 0
	for s := e.Scope(); s != nil; s = s.Enclosing() {
		if s == o {
			e.println(n)
			return nil
		}

		n++
	}

	e.println("used")

	return nil
}

func rbound(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 1, key.Variable)
	if err != nil {
		return err
	}

	_, r := e.frame.Resolve(ns, v[0].Text)

	e.println(r != nil)

	return nil
}

func replace(e *T, args []reader.Word) error {
	v, err := validate.Fixed(args, 3, 3)
	if err != nil {
		return err
	}

	ns := v[0].Text

	_, r, err := e.resolve(ns, v[1].Text)
	if err != nil {
		return err
	}

	e.Scope().SetByIdentity(ns, r.Get(), v[2].Value(), nil)

	return nil
}

func set(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 2, key.Variable)
	if err != nil {
		return err
	}

	_, r, err := e.resolve(ns, v[0].Text)
	if err != nil {
		return err
	}

	r.Set(v[1].Value())

	return nil
}

func truth(e *T, args []reader.Word) error {
	ns, v, err := validate.Qualified(args, 1, key.Variable)
	if err != nil {
		return err
	}

	_, r, err := e.resolve(ns, v[0].Text)
	if err != nil {
		return err
	}

	b, err := boolean.Value(r.Get())
	if err != nil {
		return err
	}

	e.println(b)

	return nil
}
