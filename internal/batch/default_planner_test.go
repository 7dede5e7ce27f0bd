package batch

import (
	"fmt"
	"testing"

	"github.com/uno-labs/waroster/internal/domain"
)

func numbers(n int) []domain.Number {
	out := make([]domain.Number, n)
	for i := range out {
		out[i] = domain.Number(fmt.Sprintf("+62811%06d", i))
	}
	return out
}

func collect(p Planner) []domain.Batch {
	var out []domain.Batch
	for {
		b, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

func TestDedupe(t *testing.T) {
	in := []domain.Number{"+111", "+222", "+111"}
	got := Dedupe(in)

	want := []domain.Number{"+111", "+222"}
	if len(got) != len(want) {
		t.Fatalf("Dedupe = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dedupe[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDefaultPlanner_Coverage(t *testing.T) {
	p := NewDefaultPlanner(numbers(60), 25, 1)

	if p.Total() != 3 {
		t.Fatalf("Total = %d, want 3", p.Total())
	}
	if p.Count() != 60 {
		t.Fatalf("Count = %d, want 60", p.Count())
	}

	batches := collect(p)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}

	wantSizes := []int{25, 25, 10}
	for i, b := range batches {
		if b.Size() != wantSizes[i] {
			t.Errorf("batch %d size = %d, want %d", i+1, b.Size(), wantSizes[i])
		}
		if b.Index != i+1 {
			t.Errorf("batch %d index = %d, want %d", i+1, b.Index, i+1)
		}
		if b.Total != 3 {
			t.Errorf("batch %d total = %d, want 3", i+1, b.Total)
		}
	}

	// Contiguous and exhaustive: every number exactly once, in order.
	var flat []domain.Number
	for _, b := range batches {
		flat = append(flat, b.Numbers...)
	}
	want := numbers(60)
	if len(flat) != len(want) {
		t.Fatalf("flattened length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flattened[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestDefaultPlanner_Resume(t *testing.T) {
	batches := collect(NewDefaultPlanner(numbers(60), 25, 2))

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if batches[0].Index != 2 || batches[0].Size() != 25 {
		t.Errorf("first batch = index %d size %d, want index 2 size 25", batches[0].Index, batches[0].Size())
	}
	if batches[1].Index != 3 || batches[1].Size() != 10 {
		t.Errorf("second batch = index %d size %d, want index 3 size 10", batches[1].Index, batches[1].Size())
	}
	// Batch 1's members are skipped entirely.
	if batches[0].Numbers[0] != numbers(60)[25] {
		t.Errorf("resume started at %v, want %v", batches[0].Numbers[0], numbers(60)[25])
	}
}

func TestDefaultPlanner_StartBeyondTotal(t *testing.T) {
	p := NewDefaultPlanner(numbers(60), 25, 4)
	if got := collect(p); len(got) != 0 {
		t.Errorf("got %d batches, want empty plan", len(got))
	}
}

func TestDefaultPlanner_Dedupes(t *testing.T) {
	p := NewDefaultPlanner([]domain.Number{"+111", "+222", "+111"}, 25, 1)
	batches := collect(p)

	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	if batches[0].Size() != 2 {
		t.Errorf("batch size = %d, want 2", batches[0].Size())
	}
}

func TestDefaultPlanner_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		size      int
		start     int
		wantTotal int
		wantSizes []int
	}{
		{name: "exact multiple", count: 50, size: 25, start: 1, wantTotal: 2, wantSizes: []int{25, 25}},
		{name: "size one", count: 3, size: 1, start: 1, wantTotal: 3, wantSizes: []int{1, 1, 1}},
		{name: "single short batch", count: 10, size: 25, start: 1, wantTotal: 1, wantSizes: []int{10}},
		{name: "empty input", count: 0, size: 25, start: 1, wantTotal: 0, wantSizes: nil},
		{name: "last batch only", count: 26, size: 25, start: 2, wantTotal: 2, wantSizes: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDefaultPlanner(numbers(tt.count), tt.size, tt.start)
			if p.Total() != tt.wantTotal {
				t.Fatalf("Total = %d, want %d", p.Total(), tt.wantTotal)
			}
			batches := collect(p)
			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			for i, b := range batches {
				if b.Size() != tt.wantSizes[i] {
					t.Errorf("batch %d size = %d, want %d", b.Index, b.Size(), tt.wantSizes[i])
				}
			}
		})
	}
}
