package tokencache

import (
	"errors"
	"fmt"
)

// DefaultNamespace is assumed when a key is built from a bare scope.
const DefaultNamespace = "default"

// ErrEmptyScope rejects keys without a scope at the API boundary.
var ErrEmptyScope = errors.New("tokencache: key scope is empty")

// Key identifies a single cache slot.
type Key struct {
	Namespace string
	Scope     string
	Subject   string // impersonated identity, optional
}

// NewKey builds a key for a bare scope in the default namespace.
func NewKey(scope string) Key {
	return Key{Namespace: DefaultNamespace, Scope: scope}
}

// Validate reports whether the key is well formed.
func (k Key) Validate() error {
	if k.Scope == "" {
		return ErrEmptyScope
	}
	return nil
}

// normalize applies key defaults; the single normalization point, every
// public entry applies it before touching cache state.
func (k Key) normalize() Key {
	if k.Namespace == "" {
		k.Namespace = DefaultNamespace
	}
	return k
}

func (k Key) String() string {
	if k.Subject == "" {
		return k.Namespace + "/" + k.Scope
	}
	return fmt.Sprintf("%s/%s@%s", k.Namespace, k.Scope, k.Subject)
}
