package vista

import "testing"

// fill inserts the listed entities with values derived from their ordinal.
func fill(tbl *Table[int], ents []Entity, ordinals ...int) {
	for _, n := range ordinals {
		tbl.Set(ents[n], n*100)
	}
}

// TestJoinFiltering covers the two-table membership predicate.
func TestJoinFiltering(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want []int // expected ordinals in leading (a) order
	}{
		{
			name: "partial overlap",
			a:    []int{1, 2, 3},
			b:    []int{2, 3, 4},
			want: []int{2, 3},
		},
		{
			name: "disjoint",
			a:    []int{1, 2},
			b:    []int{3, 4},
			want: nil,
		},
		{
			name: "subset",
			a:    []int{1, 2, 3, 4},
			b:    []int{2, 4},
			want: []int{2, 4},
		},
		{
			name: "identical",
			a:    []int{1, 2},
			b:    []int{1, 2},
			want: []int{1, 2},
		},
		{
			name: "one empty",
			a:    []int{1, 2},
			b:    nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := makeEntities(5)
			a, b := NewTable[int](), NewTable[int]()
			fill(a, ents, tt.a...)
			fill(b, ents, tt.b...)
			v := NewView2(a, b)

			var got []Entity
			for it := v.Begin(); it != v.End(); it = it.Next() {
				got = append(got, it.Entity())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d matches, got %d", len(tt.want), len(got))
			}
			for i, n := range tt.want {
				if got[i] != ents[n] {
					t.Errorf("match %d: expected entity %d, got %v", i, n, got[i])
				}
			}

			// Entities materializes the same sequence.
			collected := v.Entities()
			if len(collected) != len(got) {
				t.Fatalf("Entities: expected %d, got %d", len(got), len(collected))
			}
			for i := range got {
				if collected[i] != got[i] {
					t.Error("Entities disagrees with iterator order")
				}
			}

			// Contains must agree with the iterated set for every entity.
			matched := make(map[Entity]bool, len(got))
			for _, e := range got {
				matched[e] = true
			}
			for _, e := range ents {
				if v.Contains(e) != matched[e] {
					t.Errorf("Contains(%v) = %v, iterated %v", e, v.Contains(e), matched[e])
				}
			}

			// The hint is the minimum included size, never below the yield.
			minSize := a.Size()
			if b.Size() < minSize {
				minSize = b.Size()
			}
			if v.SizeHint() != minSize {
				t.Errorf("SizeHint: expected %d, got %d", minSize, v.SizeHint())
			}
			if v.SizeHint() < len(got) {
				t.Error("SizeHint below actual match count")
			}
		})
	}
}

// TestExclusion covers the single-included-table join with excluded sets.
func TestExclusion(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		excl []int
		want []int
	}{
		{
			name: "single exclusion",
			a:    []int{1, 2, 3},
			excl: []int{2},
			want: []int{1, 3},
		},
		{
			name: "exclusion misses",
			a:    []int{1, 3},
			excl: []int{2, 4},
			want: []int{1, 3},
		},
		{
			name: "everything excluded",
			a:    []int{1, 2},
			excl: []int{1, 2, 3},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := makeEntities(5)
			a, excl := NewTable[int](), NewTable[int]()
			fill(a, ents, tt.a...)
			fill(excl, ents, tt.excl...)
			v := NewView1(a, Without(excl))

			got := v.Entities()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d matches, got %d", len(tt.want), len(got))
			}
			for i, n := range tt.want {
				if got[i] != ents[n] {
					t.Errorf("match %d: expected entity %d, got %v", i, n, got[i])
				}
			}
			for _, n := range tt.excl {
				if v.Contains(ents[n]) {
					t.Errorf("excluded entity %d contained", n)
				}
			}
		})
	}
}

func TestJoinFind(t *testing.T) {
	ents := makeEntities(5)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 1, 2, 3)
	fill(b, ents, 2, 3, 4)
	v := NewView2(a, b)

	for _, e := range ents {
		it := v.Find(e)
		if (it != v.End()) != v.Contains(e) {
			t.Errorf("Find(%v) disagrees with Contains", e)
		}
		if it != v.End() && it.Entity() != e {
			t.Errorf("Find(%v) dereferences to %v", e, it.Entity())
		}
	}
}

func TestJoinFrontBack(t *testing.T) {
	ents := makeEntities(5)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 1, 2, 3)
	fill(b, ents, 2, 3, 4)
	v := NewView2(a, b)

	if v.Front() != ents[2] {
		t.Errorf("expected front %v, got %v", ents[2], v.Front())
	}
	if v.Back() != ents[3] {
		t.Errorf("expected back %v, got %v", ents[3], v.Back())
	}

	empty := NewView2(NewTable[int](), NewTable[int]())
	if empty.Front() != Null || empty.Back() != Null {
		t.Error("empty join front/back not Null")
	}
}

func TestIteratorBidirectional(t *testing.T) {
	ents := makeEntities(6)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 0, 1, 2, 3, 4)
	fill(b, ents, 0, 2, 4)
	v := NewView2(a, b)

	var forward []Entity
	it := v.Begin()
	for ; it != v.End(); it = it.Next() {
		forward = append(forward, it.Entity())
	}
	if len(forward) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(forward))
	}

	// Walk back from the last match; the first match sits at a valid
	// position, so Prev retraces the forward walk exactly.
	var backward []Entity
	for it = it.Prev(); ; it = it.Prev() {
		backward = append(backward, it.Entity())
		if it.Entity() == forward[0] {
			break
		}
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatal("Prev does not retrace Next")
		}
	}
}

func TestIteratorOrderFollowsLead(t *testing.T) {
	ents := makeEntities(6)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 3, 1, 4, 2)
	fill(b, ents, 1, 2, 3, 4, 5)
	v := NewView2(a, b)

	var positions []int
	for it := v.Begin(); it != v.End(); it = it.Next() {
		positions = append(positions, a.FindIndex(it.Entity()))
	}
	if len(positions) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(positions))
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Fatal("iteration is not increasing over the leading dense order")
		}
	}
}

func TestRemoveCurrentDuringIteration(t *testing.T) {
	ents := makeEntities(5)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 0, 1, 2, 3)
	fill(b, ents, 0, 1, 2, 3)
	v := NewView2(a, b)

	var visited []Entity
	for it := v.Begin(); !it.Done(); it = it.Next() {
		e := it.Entity()
		visited = append(visited, e)
		if e == ents[1] {
			a.Remove(e)
		}
	}

	seen := make(map[Entity]int)
	for _, e := range visited {
		seen[e]++
	}
	if seen[ents[1]] != 1 {
		t.Fatalf("removed entity visited %d times", seen[ents[1]])
	}
	if seen[ents[2]] != 1 {
		t.Fatal("iteration did not reach the entity after the removed one")
	}
}

func TestInsertDuringIteration(t *testing.T) {
	ents := makeEntities(6)
	a, b, excl := NewTable[int](), NewTable[int](), NewTable[int]()
	fill(a, ents, 0, 1, 2, 3, 4)
	fill(b, ents, 0, 1, 2, 3, 4)
	v := NewView2(a, b, Without(excl))

	var visited []Entity
	for it := v.Begin(); !it.Done(); it = it.Next() {
		e := it.Entity()
		visited = append(visited, e)
		if e == ents[1] {
			excl.Set(ents[3], 300)
			b.Set(ents[5], 500)
		}
	}

	seen := make(map[Entity]int)
	for _, e := range visited {
		seen[e]++
	}
	for _, n := range []int{0, 1, 2, 4} {
		if seen[ents[n]] != 1 {
			t.Fatalf("entity %d visited %d times", ents[n].Index(), seen[ents[n]])
		}
	}
	if seen[ents[3]] != 0 {
		t.Fatal("entity excluded mid-walk was still visited")
	}
	if len(visited) != 4 {
		t.Fatalf("walk yielded %d entities, want 4", len(visited))
	}
}

func TestJoinBackward(t *testing.T) {
	ents := makeEntities(6)
	a, b := NewTable[int](), NewTable[int]()
	fill(a, ents, 0, 1, 2, 3, 4)
	fill(b, ents, 1, 3, 4)
	v := NewView2(a, b)

	forward := v.Entities()
	var reverse []Entity
	for e := range v.Backward() {
		reverse = append(reverse, e)
	}
	if len(reverse) != len(forward) {
		t.Fatalf("backward yielded %d entities, forward %d", len(reverse), len(forward))
	}
	for i, e := range reverse {
		if want := forward[len(forward)-1-i]; e != want {
			t.Fatalf("backward[%d] = entity %d, want %d", i, e.Index(), want.Index())
		}
	}

	for range v.Backward() {
		break
	}
	count := 0
	for range v.Backward() {
		count++
	}
	if count != len(forward) {
		t.Fatalf("restart after break saw %d entities", count)
	}
}
