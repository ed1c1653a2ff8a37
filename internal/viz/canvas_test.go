package viz

import (
	"strings"
	"testing"
)

func TestCanvasStartsEmpty(t *testing.T) {
	c := NewCanvas(10, 5)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("expected empty braille char, got %q", r)
			}
		}
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0, TagExact)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at (0,0)")
	}
	if c.Colors[0][0] != TagExact {
		t.Errorf("expected color tag %d, got %d", TagExact, c.Colors[0][0])
	}

	// sub-pixel addressing: (3, 7) lands in cell (1, 1)
	c.Set(3, 7, TagShot0)
	if c.Grid[1][1] == 0x2800 {
		t.Error("expected dot in cell (1,1)")
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(-1, 0, 1)
	c.Set(0, -1, 1)
	c.Set(100, 0, 1)
	c.Set(0, 100, 1)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-bounds set must not draw")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19, TagFinal)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected line to light cells")
	}
}

func TestCanvasMarkCell(t *testing.T) {
	c := NewCanvas(10, 5)
	c.MarkCell(3, 2, '●', TagMarker)

	if c.Grid[2][3] != '●' {
		t.Error("expected marker rune in cell")
	}

	c.MarkCell(-1, 2, '●', TagMarker)
	c.MarkCell(3, 99, '●', TagMarker)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19, 1)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected empty canvas after clear")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(8, 3)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d", len(lines))
	}
}

func TestCanvasRenderUnstyledEmptyCells(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, TagExact)

	out := c.Render(DefaultPalette())
	if !strings.Contains(out, "\n") {
		t.Error("expected multi-line render")
	}
}
