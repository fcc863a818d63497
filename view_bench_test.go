package vista

import "testing"

func benchTables(n int) (*Table[int], *Table[int], []Entity) {
	ei := newEntryIndex()
	a, b := NewTable[int](), NewTable[int]()
	ents := make([]Entity, n)
	for i := range ents {
		ents[i] = ei.New()
		a.Set(ents[i], i)
		if i%2 == 0 {
			b.Set(ents[i], i)
		}
	}
	return a, b, ents
}

func BenchmarkViewEach(b *testing.B) {
	tbl, _, _ := benchTables(1000)
	v := NewView(tbl)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		v.Each(func(_ Entity, n *int) { sum += *n })
	}
}

func BenchmarkView2Each(b *testing.B) {
	ta, tb, _ := benchTables(1000)
	v := NewView2(ta, tb)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		v.Each(func(_ Entity, x, y *int) { sum += *x + *y })
	}
}

func BenchmarkView2Iterator(b *testing.B) {
	ta, tb, _ := benchTables(1000)
	v := NewView2(ta, tb)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for it := v.Begin(); !it.Done(); it = it.Next() {
			count++
		}
	}
}

func BenchmarkView2All(b *testing.B) {
	ta, tb, _ := benchTables(1000)
	v := NewView2(ta, tb)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for row := range v.All() {
			sum += *row.A
		}
	}
}

func BenchmarkView2Contains(b *testing.B) {
	ta, tb, ents := benchTables(1000)
	v := NewView2(ta, tb)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Contains(ents[i%len(ents)])
	}
}
