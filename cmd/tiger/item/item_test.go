package item

import (
	"errors"
	"testing"
)

func TestNamesCoverEveryKind(t *testing.T) {
	if len(names) != int(kindCount) {
		t.Fatalf("%d names for %d kinds", len(names), kindCount)
	}
	for _, k := range Kinds() {
		back, err := FromName(k.String())
		if err != nil || back != k {
			t.Fatalf("round trip of %v failed: %v", k, err)
		}
	}
}

func TestFromNameUnknown(t *testing.T) {
	if _, err := FromName("spaceship"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if k, err := FromName(" Faith "); err != nil || k != Faith {
		t.Fatalf("FromName(Faith) = %v, %v", k, err)
	}
}
