package life

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"torus-life/internal/core"
)

func newEmpty(w, h uint32) *Universe {
	return Config{Width: w, Height: h}.New()
}

func cellAt(u *Universe, row, col uint32) core.Cell {
	return u.Cells()[int(row)*int(u.Width())+int(col)]
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Printf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestNewSeedPattern(t *testing.T) {
	u := New()
	if u.Width() != 64 || u.Height() != 64 {
		t.Fatalf("default size = %dx%d, expected 64x64", u.Width(), u.Height())
	}
	cells := u.Cells()
	if len(cells) != 64*64 {
		t.Fatalf("len(cells) = %d, expected %d", len(cells), 64*64)
	}
	for i, cell := range cells {
		want := core.Dead
		if i%2 == 0 || i%7 == 0 {
			want = core.Alive
		}
		if cell != want {
			t.Fatalf("seed cell %d = %d, expected %d", i, cell, want)
		}
	}
}

func TestDimensionInvariant(t *testing.T) {
	u := New()
	check := func(op string) {
		t.Helper()
		want := int(u.Width()) * int(u.Height())
		if len(u.Cells()) != want {
			t.Fatalf("after %s: len(cells) = %d, expected width*height = %d", op, len(u.Cells()), want)
		}
	}

	check("New")
	u.SetWidth(10)
	check("SetWidth")
	u.SetHeight(5)
	check("SetHeight")
	u.ToggleCell(2, 3)
	check("ToggleCell")
	u.SetPattern("glider", 0, 0)
	check("SetPattern")
	u.Reset(7)
	check("Reset")
	u.Step()
	check("Step")
	u.Clear()
	check("Clear")
}

func TestResizeResetsCells(t *testing.T) {
	u := New()
	u.SetWidth(10)
	if u.Width() != 10 || u.Height() != 64 {
		t.Fatalf("size after SetWidth = %dx%d, expected 10x64", u.Width(), u.Height())
	}
	for i, cell := range u.Cells() {
		if cell != core.Dead {
			t.Fatalf("cell %d alive after SetWidth, expected all dead", i)
		}
	}

	u.ToggleCell(3, 3)
	u.SetHeight(8)
	if u.Width() != 10 || u.Height() != 8 {
		t.Fatalf("size after SetHeight = %dx%d, expected 10x8", u.Width(), u.Height())
	}
	for i, cell := range u.Cells() {
		if cell != core.Dead {
			t.Fatalf("cell %d alive after SetHeight, expected all dead", i)
		}
	}
}

func TestToggleCellWraps(t *testing.T) {
	u := newEmpty(5, 5)
	u.ToggleCell(5, 5)
	if cellAt(u, 0, 0) != core.Alive {
		t.Fatal("ToggleCell(5, 5) on a 5x5 grid should wrap to (0, 0)")
	}
	u.ToggleCell(0, 0)
	if cellAt(u, 0, 0) != core.Dead {
		t.Fatal("second toggle should return (0, 0) to dead")
	}
}

func TestLoneCellDies(t *testing.T) {
	u := newEmpty(5, 5)
	u.ToggleCell(2, 2)
	u.Step()
	if pop := u.Population(); pop != 0 {
		t.Fatalf("population after stepping a lone cell = %d, expected 0", pop)
	}
}

func TestBlockStillLife(t *testing.T) {
	u := newEmpty(6, 6)
	for _, rc := range [][2]uint32{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		u.ToggleCell(rc[0], rc[1])
	}
	before := slices.Clone(u.Cells())
	u.Step()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("2x2 block should be unchanged by Step")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	u := newEmpty(5, 5)
	u.ToggleCell(1, 2)
	u.ToggleCell(2, 2)
	u.ToggleCell(3, 2)

	u.Step()
	expects := map[[2]uint32]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := uint32(0); row < 5; row++ {
		for col := uint32(0); col < 5; col++ {
			alive := cellAt(u, row, col) == core.Alive
			if expects[[2]uint32{row, col}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, !alive)
			}
		}
	}

	u.Step()
	expects = map[[2]uint32]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := uint32(0); row < 5; row++ {
		for col := uint32(0); col < 5; col++ {
			alive := cellAt(u, row, col) == core.Alive
			if expects[[2]uint32{row, col}] != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, !alive)
			}
		}
	}
}

func TestBlinkerWrapsAcrossEdge(t *testing.T) {
	u := newEmpty(5, 5)
	// Horizontal blinker straddling the vertical seam.
	u.ToggleCell(0, 4)
	u.ToggleCell(0, 0)
	u.ToggleCell(0, 1)

	u.Step()
	expects := map[[2]uint32]bool{
		{4, 0}: true,
		{0, 0}: true,
		{1, 0}: true,
	}
	for row := uint32(0); row < 5; row++ {
		for col := uint32(0); col < 5; col++ {
			alive := cellAt(u, row, col) == core.Alive
			if expects[[2]uint32{row, col}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, !alive)
			}
		}
	}
}

func TestCornerWrapNeighbors(t *testing.T) {
	u := newEmpty(5, 5)
	// The three wrapped neighbors of (0,0): its diagonal, upper and left
	// cells all live on the far edges of the torus.
	u.ToggleCell(4, 4)
	u.ToggleCell(4, 0)
	u.ToggleCell(0, 4)

	u.Step()
	if cellAt(u, 0, 0) != core.Alive {
		t.Fatal("(0,0) should be born from three wrapped neighbors")
	}
	// Together with the newborn they form a block across the corner.
	before := slices.Clone(u.Cells())
	u.Step()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("wrapped corner block should be stable")
	}
}

func TestGliderTranslation(t *testing.T) {
	u := newEmpty(10, 10)
	u.SetPattern("glider", 0, 0)
	for i := 0; i < 4; i++ {
		u.Step()
	}

	want := newEmpty(10, 10)
	want.SetPattern("glider", 1, 1)
	if !slices.Equal(u.Cells(), want.Cells()) {
		t.Fatalf("glider after 4 steps should equal a fresh glider at (1,1)\ngot:\n%swant:\n%s", u.Render(), want.Render())
	}
}

func TestPatternClearsFootprint(t *testing.T) {
	u := newEmpty(10, 10)
	u.ToggleCell(0, 0) // inside the glider bounding box, not in its offsets
	u.ToggleCell(5, 5) // outside the bounding box
	u.SetPattern("glider", 0, 0)

	if cellAt(u, 0, 0) != core.Dead {
		t.Fatal("cell inside the stamped bounding box should be cleared")
	}
	if cellAt(u, 5, 5) != core.Alive {
		t.Fatal("cell outside the stamped bounding box should be untouched")
	}
	if cellAt(u, 0, 1) != core.Alive {
		t.Fatal("pattern offset cell should be alive")
	}
}

func TestUnknownPatternNoOp(t *testing.T) {
	rec := &recordingLogger{}
	u := New()
	u.SetLogger(rec)

	before := slices.Clone(u.Cells())
	u.SetPattern("not_a_pattern", 0, 0)

	if !slices.Equal(before, u.Cells()) {
		t.Fatal("unknown pattern must leave every cell unchanged")
	}
	if len(rec.messages) != 1 || !strings.Contains(rec.messages[0], "not_a_pattern") {
		t.Fatalf("expected one diagnostic naming the pattern, got %v", rec.messages)
	}
}

func TestRandomizeDistribution(t *testing.T) {
	u := newEmpty(128, 128)
	u.Randomize(core.NewRNG(1).Source())

	total := len(u.Cells())
	frac := float64(u.Population()) / float64(total)
	if frac < 0.27 || frac > 0.33 {
		t.Fatalf("alive fraction after Randomize = %.4f, expected about 0.3", frac)
	}
}

func TestResetDeterministic(t *testing.T) {
	u := newEmpty(32, 24)
	u.Reset(777)
	first := slices.Clone(u.Cells())

	u.Step()
	u.ToggleCell(1, 1)
	u.Reset(777)

	if !slices.Equal(first, u.Cells()) {
		t.Fatal("Reset with the same seed must reproduce the same cells")
	}
}

func TestZeroDimensionsAreInert(t *testing.T) {
	u := New()
	u.SetWidth(0)
	if len(u.Cells()) != 0 {
		t.Fatalf("len(cells) = %d after SetWidth(0), expected 0", len(u.Cells()))
	}
	// Every operation must degrade to a no-op without panicking.
	u.Step()
	u.ToggleCell(0, 0)
	u.SetPattern("glider", 0, 0)
	u.Clear()
	u.Reset(1)
	u.Render()

	u.SetHeight(0)
	u.Step()
	if len(u.Cells()) != 0 {
		t.Fatalf("len(cells) = %d after SetHeight(0), expected 0", len(u.Cells()))
	}
}

func TestRenderGlyphs(t *testing.T) {
	u := newEmpty(2, 2)
	u.ToggleCell(0, 1)
	u.ToggleCell(1, 0)

	want := "◻◼\n◼◻\n"
	if got := u.Render(); got != want {
		t.Fatalf("Render() = %q, expected %q", got, want)
	}
}

func TestGenerationCounter(t *testing.T) {
	u := newEmpty(4, 4)
	u.Step()
	u.Step()
	if u.Generation() != 2 {
		t.Fatalf("Generation() = %d after two steps, expected 2", u.Generation())
	}
	u.Clear()
	if u.Generation() != 0 {
		t.Fatalf("Generation() = %d after Clear, expected 0", u.Generation())
	}
}
