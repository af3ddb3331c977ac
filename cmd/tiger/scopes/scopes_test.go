package scopes

import (
	"errors"
	"testing"
)

func TestAlgebraLaws(t *testing.T) {
	samples := []Set{Empty, None, Character, Character | LandedTitle, Primitive(), NonPrimitive(), All()}
	for _, s := range samples {
		if got := s.Union(All()); got != All() {
			t.Fatalf("%v ∪ all = %v, want all", s, got)
		}
		if got := s.Intersect(Empty); got != Empty {
			t.Fatalf("%v ∩ none = %v, want none", s, got)
		}
		if got := s.Intersect(All()); got != s {
			t.Fatalf("%v ∩ all = %v, want %v", s, got, s)
		}
	}
}

func TestAllIsUnionOfEveryKind(t *testing.T) {
	var union Set
	for i := range snakeNames {
		union |= Set(1) << i
	}
	if union != All() {
		t.Fatalf("union of kinds %b != all %b", union, All())
	}
	if All().Count() != len(snakeNames) {
		t.Fatalf("expected %d kinds, got %d", len(snakeNames), All().Count())
	}
}

func TestPrimitivePartition(t *testing.T) {
	if Primitive().Intersects(NonPrimitive()) {
		t.Fatal("primitive and non-primitive overlap")
	}
	if got := Primitive() | NonPrimitive() | None; got != All() {
		t.Fatalf("partition does not cover all: %v", got)
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want Set
	}{
		{"character", Character},
		{"Landed Title", LandedTitle},
		{"landed-title", LandedTitle},
		{"ghw", GreatHolyWar},
		{"story", StoryCycle},
		{"  faith ", Faith},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := FromName(tt.in)
			if !ok || got != tt.want {
				t.Fatalf("FromName(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
			}
		})
	}

	if _, ok := FromName("spaceship"); ok {
		t.Fatal("expected unknown name to fail")
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("character|landed_title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Character|LandedTitle {
		t.Fatalf("got %v", got)
	}

	got, err = Parse("all")
	if err != nil || got != All() {
		t.Fatalf("Parse(all) = %v, %v", got, err)
	}

	_, err = Parse("character|spaceship")
	if !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("expected ErrUnknownScope, got %v", err)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Set
		want string
	}{
		{Character, "character"},
		{Character | LandedTitle, "character or landed title"},
		{None | Value | Character, "none, value, or character"},
		{VassalObligationLevel, "vassal obligation level"},
		{All(), "any scope"},
		{Empty, "no scope"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%b) = %q, want %q", uint64(tt.in), got, tt.want)
		}
	}
}

func TestSnakeNameRoundTrip(t *testing.T) {
	All().Each(func(one Set) {
		back, ok := FromName(one.SnakeName())
		if !ok || back != one {
			t.Fatalf("round trip failed for %q", one.SnakeName())
		}
	})
	if (Character | Faith).SnakeName() != "" {
		t.Fatal("multi-kind set should have no snake name")
	}
}
