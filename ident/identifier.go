// Package ident implements namespaced string identifiers (spec §3/§6/§4.13):
// "namespace:path" with a restricted charset, defaulting to namespace
// "minecraft" when the colon is omitted.
package ident

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultNamespace is used when an identifier string carries no ":".
const DefaultNamespace = "minecraft"

var (
	// ErrMissingNamespaceTag is returned when the namespace or the path is
	// empty (e.g. ":foo", "mod:" or ""). Named for consistency with the
	// spec's "MissingTag" class. This check runs before the charset
	// checks, so an empty namespace yields this error, not
	// ErrInvalidNamespace.
	ErrMissingNamespaceTag = errors.New("ident: identifier missing required segment")
	ErrInvalidNamespace    = errors.New("ident: namespace contains characters outside [a-z0-9_.-]")
	ErrInvalidPath         = errors.New("ident: path contains characters outside [a-z0-9_./-]")
)

// Identifier is a namespaced name (spec §6: "namespace:path").
type Identifier struct {
	Namespace string
	Path      string
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

func isNamespaceByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-':
		return true
	default:
		return false
	}
}

func isPathByte(c byte) bool {
	return isNamespaceByte(c) || c == '/'
}

// Parse validates and splits s into an Identifier. A missing ':' implies
// namespace DefaultNamespace (spec §6/§8 scenario 6).
func Parse(s string) (Identifier, error) {
	namespace, path := DefaultNamespace, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		namespace, path = s[:i], s[i+1:]
	}
	if namespace == "" || path == "" {
		return Identifier{}, errors.WithStack(ErrMissingNamespaceTag)
	}
	for i := 0; i < len(namespace); i++ {
		if !isNamespaceByte(namespace[i]) {
			return Identifier{}, errors.WithStack(ErrInvalidNamespace)
		}
	}
	for i := 0; i < len(path); i++ {
		if !isPathByte(path[i]) {
			return Identifier{}, errors.WithStack(ErrInvalidPath)
		}
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}
