package matrix

import (
	"errors"
	"testing"
)

func TestSpanResolve(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		extent int
		start  int
		step   int
		length int
	}{
		{"all", All(), 5, 0, 1, 5},
		{"range", Range(1, 3), 5, 1, 1, 2},
		{"to", To(3), 5, 0, 1, 3},
		{"from", From(2), 5, 2, 1, 3},
		{"negative start", From(-3), 5, 2, 1, 3},
		{"negative stop", To(-1), 5, 0, 1, 4},
		{"stop clamped", Range(1, 10), 5, 1, 1, 4},
		{"start clamped", Range(-10, 3), 5, 0, 1, 3},
		{"empty forward", Range(3, 1), 5, 3, 1, 0},
		{"strided", Stride(0, 5, 2), 5, 0, 2, 3},
		{"strided uneven", Stride(1, 5, 3), 5, 1, 3, 2},
		{"reversed", All().By(-1), 5, 4, -1, 5},
		{"reversed range", Range(4, 1).By(-1), 5, 4, -1, 3},
		{"reversed strided", All().By(-2), 5, 4, -2, 3},
		{"empty backward", Range(1, 3).By(-1), 5, 1, -1, 0},
		{"zero extent", All(), 0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, step, length, err := tt.span.resolve(tt.extent)
			if err != nil {
				t.Fatalf("resolve(%d): %v", tt.extent, err)
			}
			if start != tt.start || step != tt.step || length != tt.length {
				t.Fatalf("resolve(%d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.extent, start, step, length, tt.start, tt.step, tt.length)
			}
		})
	}
}

func TestSpanResolveZeroStep(t *testing.T) {
	_, _, _, err := All().By(0).resolve(5)
	if !errors.Is(err, ErrInvalidSelectorType) {
		t.Fatalf("zero step: got %v, want ErrInvalidSelectorType", err)
	}
}

func TestSpanString(t *testing.T) {
	tests := []struct {
		span Span
		want string
	}{
		{All(), "[:]"},
		{Range(1, 3), "[1:3]"},
		{From(2), "[2:]"},
		{To(-1), "[:-1]"},
		{Stride(0, 5, 2), "[0:5:2]"},
		{All().By(-1), "[::-1]"},
	}
	for _, tt := range tests {
		if got := tt.span.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	pair, err := Canonicalize(Index(1))
	if err != nil {
		t.Fatalf("single selector: %v", err)
	}
	if pair[0] != Index(1) {
		t.Fatalf("axis i selector = %v, want Index(1)", pair[0])
	}
	if _, ok := pair[1].(Span); !ok {
		t.Fatalf("axis j selector = %T, want implicit Span", pair[1])
	}

	pair, err = Canonicalize(Index(1), Range(0, 2))
	if err != nil {
		t.Fatalf("two selectors: %v", err)
	}
	if pair[0] != Index(1) || pair[1] != Range(0, 2) {
		t.Fatalf("pair = %v", pair)
	}
}

func TestCanonicalizeErrors(t *testing.T) {
	if _, err := Canonicalize(); !errors.Is(err, ErrInvalidSelectorLength) {
		t.Errorf("no selectors: got %v, want ErrInvalidSelectorLength", err)
	}
	if _, err := Canonicalize(Index(0), Index(0), Index(0)); !errors.Is(err, ErrTooManyAxes) {
		t.Errorf("three selectors: got %v, want ErrTooManyAxes", err)
	}
	if _, err := Canonicalize(nil, Index(0)); !errors.Is(err, ErrInvalidSelectorType) {
		t.Errorf("nil selector: got %v, want ErrInvalidSelectorType", err)
	}
}

func TestPick(t *testing.T) {
	s := Pick(2, 0, 2)
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
	for k, want := range []int{2, 0, 2} {
		v, ok := asIndex(s[k])
		if !ok || v != want {
			t.Errorf("element %d = %v, want %d", k, s[k], want)
		}
	}
}
