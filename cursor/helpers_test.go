package cursor_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/izvolov/go-burst/cursor"
)

func ranges(slices ...[]int) []cursor.SortedRange[int] {
	out := make([]cursor.SortedRange[int], len(slices))
	for i, s := range slices {
		out[i] = cursor.NewArrayRange(append([]int(nil), s...))
	}
	return out
}

// requireSequenceEqual compares two emitted sequences structurally with
// cmp.Diff and, on mismatch, dumps both sides via spew so the failure
// message shows the full slice contents rather than a truncated summary.
func requireSequenceEqual(t *testing.T, want, got []int) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s\nwant: %s\ngot:  %s", diff, spew.Sdump(want), spew.Sdump(got))
	}
}
