package fractal

import "testing"

func BenchmarkDrawCarpet(b *testing.B) {
	brush, _ := FromRows([][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, true},
	})
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Draw(brush, 6); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCanvasOn(b *testing.B) {
	brush, _ := FromRows([][]bool{{true, false}, {true, true}})
	src, err := Draw(brush, 8)
	if err != nil {
		b.Fatal(err)
	}
	stencil, _ := NewPixmap(4, 4, true)
	c, err := NewCanvas(src, stencil)
	if err != nil {
		b.Fatal(err)
	}
	w, h := c.Size()
	b.ReportAllocs()
	for b.Loop() {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_ = c.On(x, y)
			}
		}
	}
}

func BenchmarkToGray(b *testing.B) {
	brush, _ := FromRows([][]bool{{true, false}, {true, true}})
	src, err := Draw(brush, 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = ToGray(src)
	}
}
