package ident

import (
	"errors"
	"testing"
)

func TestParseNamespacedIdentifier(t *testing.T) {
	id, err := Parse("mod:foo_bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Namespace != "mod" || id.Path != "foo_bar" {
		t.Errorf("got %+v, want namespace=mod path=foo_bar", id)
	}
}

func TestParseDefaultsToMinecraftNamespace(t *testing.T) {
	id, err := Parse("foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Namespace != DefaultNamespace || id.Path != "foo" {
		t.Errorf("got %+v, want namespace=%s path=foo", id, DefaultNamespace)
	}
}

func TestParseRejectsInvalidNamespace(t *testing.T) {
	_, err := Parse("Mod:foo")
	if !errors.Is(err, ErrInvalidNamespace) {
		t.Errorf("got %v, want ErrInvalidNamespace", err)
	}
}

func TestParseRejectsInvalidPath(t *testing.T) {
	_, err := Parse("mod:FOO")
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("got %v, want ErrInvalidPath", err)
	}
}

func TestParseAllowsPathSeparators(t *testing.T) {
	id, err := Parse("mod:textures/block/stone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Path != "textures/block/stone" {
		t.Errorf("got path %q", id.Path)
	}
}

func TestStringRoundTrip(t *testing.T) {
	id, err := Parse("mod:foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "mod:foo" {
		t.Errorf("got %q, want mod:foo", id.String())
	}
}
