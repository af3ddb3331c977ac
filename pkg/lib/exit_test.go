package lib

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	base := errors.New("3 diagnostics at error or above")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", base, 1},
		{"with code", WithCode(2, base), 2},
		{"wrapped", fmt.Errorf("validate: %w", WithCode(2, base)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code = %d, want %d", got, tt.want)
			}
		})
	}
	if WithCode(2, nil) != nil {
		t.Error("WithCode(2, nil) should be nil")
	}
	if !errors.Is(WithCode(2, base), base) {
		t.Error("ExitError does not unwrap")
	}
}
