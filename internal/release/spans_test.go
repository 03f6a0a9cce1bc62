package release

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestMergeSpans(t *testing.T) {
	tests := []struct {
		name string
		in   []Span
		want []Span
	}{
		{"empty", nil, nil},
		{"touching", []Span{{0, 3}, {3, 5}}, []Span{{0, 5}}},
		{"nested", []Span{{2, 9}, {3, 4}}, []Span{{2, 9}}},
		{"unsorted", []Span{{8, 10}, {0, 2}, {1, 4}}, []Span{{0, 4}, {8, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeSpans(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("mergeSpans(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	text := []rune("Title.2019.-.x264")
	tr := newSpanTracker(len(text))
	tr.add(Span{6, 10})
	tr.add(Span{13, 17})

	keep := tr.complement(text, true)
	if want := []Span{{0, 6}, {10, 13}}; !reflect.DeepEqual(keep, want) {
		t.Fatalf("complement(keep) = %v, want %v", keep, want)
	}
	drop := tr.complement(text, false)
	if want := []Span{{0, 6}}; !reflect.DeepEqual(drop, want) {
		t.Fatalf("complement(drop) = %v, want %v", drop, want)
	}
}

func TestComplementWithoutSpans(t *testing.T) {
	text := []rune("anything")
	got := newSpanTracker(len(text)).complement(text, false)
	if want := []Span{{0, len(text)}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("complement = %v, want %v", got, want)
	}
}

func TestMergedSpansNeverOverlap(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(0, 200).Draw(t, "size")
		tr := newSpanTracker(size)
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			start := rapid.IntRange(0, size).Draw(t, "start")
			end := rapid.IntRange(start, size).Draw(t, "end")
			tr.add(Span{start, end})
		}
		merged := tr.merged()
		for i := 1; i < len(merged); i++ {
			if merged[i].Start <= merged[i-1].End {
				t.Fatalf("spans %v and %v overlap or touch", merged[i-1], merged[i])
			}
		}
		for _, gap := range tr.complement(make([]rune, size), true) {
			for _, s := range merged {
				if gap.Start < s.End && s.Start < gap.End {
					t.Fatalf("gap %v intersects claimed span %v", gap, s)
				}
			}
		}
	})
}
