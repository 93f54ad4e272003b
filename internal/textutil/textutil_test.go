package textutil

import "testing"

func TestTrim(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "trailing", fn: TrimTrailing, in: "abcd \t\n\v\f\r", want: "abcd"},
		{name: "leading", fn: TrimLeading, in: " \t\n\v\f\rabcd", want: "abcd"},
		{name: "both", fn: Trim, in: " \t\n\v\f\rabcd \t\n\v\f\r", want: "abcd"},
		{name: "internal whitespace kept", fn: Trim, in: "  a  b  ", want: "a  b"},
		{name: "unicode space", fn: Trim, in: "\u00a0x\u2003", want: "x"},
		{name: "empty", fn: Trim, in: "", want: ""},
		{name: "only whitespace", fn: Trim, in: " \t ", want: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fn(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \t\n\v\f\r" {
		if !IsSpace(r) {
			t.Fatalf("expected %q to be whitespace", r)
		}
	}
	if IsSpace('x') || IsSpace('#') {
		t.Fatalf("unexpected whitespace classification")
	}
}
