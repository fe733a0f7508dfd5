package domain_test

import (
	"testing"

	"go.trai.ch/refdex/internal/core/domain"
)

func TestInternedString_RoundTrip(t *testing.T) {
	is := domain.NewInternedString("assets/player.prefab")
	if is.String() != "assets/player.prefab" {
		t.Errorf("unexpected value: %q", is.String())
	}
}

func TestInternedString_ZeroValue(t *testing.T) {
	var is domain.InternedString
	if is.String() != "" {
		t.Errorf("expected empty string for zero value, got %q", is.String())
	}
}

func TestInternedString_Equality(t *testing.T) {
	a := domain.NewInternedString("same/path.prefab")
	b := domain.NewInternedString("same/path.prefab")
	if a != b {
		t.Error("expected interned strings of equal content to compare equal")
	}
}

func TestInternedString_TextMarshaling(t *testing.T) {
	is := domain.NewInternedString("a.png")
	data, err := is.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var out domain.InternedString
	if err := out.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if out != is {
		t.Errorf("round trip mismatch: %v != %v", out, is)
	}
}
