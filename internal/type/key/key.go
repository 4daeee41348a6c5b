// Released under an MIT license. See LICENSE.

// Package key provides bind's namespace-qualified binding name.
package key

// Well-known namespaces.
const (
	// Variable is the namespace used by unqualified operations.
	Variable = "var"

	// Macro holds syntax bindings, separate from ordinary variables.
	Macro = "macro"
)

// T (key) pairs a namespace with a name. Keys are compared structurally.
type T struct {
	Namespace string
	Name      string
}

// New creates a key for the name k in the namespace ns.
func New(ns, k string) T {
	return T{Namespace: ns, Name: k}
}

// Var creates a key for the name k in the default namespace.
func Var(k string) T {
	return T{Namespace: Variable, Name: k}
}

// String returns the name of the key k, qualified by its namespace when it
// is not the default.
func (k T) String() string {
	if k.Namespace == Variable {
		return k.Name
	}

	return k.Namespace + ":" + k.Name
}
