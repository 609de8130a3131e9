package life

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"torus-life/internal/core"
)

const (
	defaultWidth  = 64
	defaultHeight = 64

	// aliveChance is the probability Randomize assigns Alive to a cell.
	aliveChance = 0.3
)

// Universe implements Conway's Game of Life on a toroidal grid. Cells are
// stored row-major; the cell at (row, col) lives at row*width+col. All
// neighbor lookups wrap modulo the dimensions, so the grid has no boundary.
//
// A Universe is not safe for concurrent use; it expects a single owner, such
// as a UI loop driving Step once per frame.
type Universe struct {
	width  uint32
	height uint32
	cells  []core.Cell
	next   []core.Cell

	generation uint64

	log    core.Logger
	timing core.Logger
}

// New returns the default 64x64 universe with its deterministic seed pattern:
// the cell at flat index i starts Alive iff i%2 == 0 or i%7 == 0.
func New() *Universe {
	u := &Universe{log: core.NopLogger{}, timing: nil}
	u.resize(defaultWidth, defaultHeight)
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = core.Alive
		}
	}
	return u
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: int(u.width), H: int(u.height)} }

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Cells exposes the current grid values without copying. The slice is only
// valid until the next mutating call; Step, Randomize and the resize
// operations may swap or reallocate the backing buffer.
func (u *Universe) Cells() []core.Cell { return u.cells }

// Generation returns the number of Step calls since the last reset of the
// counter (construction, resize, Clear, Randomize).
func (u *Universe) Generation() uint64 { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int {
	total := 0
	for _, c := range u.cells {
		total += int(c)
	}
	return total
}

// SetLogger installs the diagnostic sink. A nil logger silences diagnostics.
func (u *Universe) SetLogger(log core.Logger) {
	if log == nil {
		log = core.NopLogger{}
	}
	u.log = log
}

// SetTimingLog enables per-step timing reports through the given logger.
// Pass nil to disable.
func (u *Universe) SetTimingLog(log core.Logger) { u.timing = log }

// resize rebuilds both buffers all-Dead at the new dimensions.
func (u *Universe) resize(width, height uint32) {
	u.width = width
	u.height = height
	total := int(width) * int(height)
	u.cells = make([]core.Cell, total)
	u.next = make([]core.Cell, total)
	u.generation = 0
}

// SetWidth sets the number of columns and resets every cell to Dead. The
// height is retained; prior cell content is discarded.
func (u *Universe) SetWidth(width uint32) {
	u.resize(width, u.height)
}

// SetHeight sets the number of rows and resets every cell to Dead. The width
// is retained; prior cell content is discarded.
func (u *Universe) SetHeight(height uint32) {
	u.resize(u.width, height)
}

// Clear sets every cell to Dead without changing the dimensions.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = core.Dead
	}
	u.generation = 0
}

// Randomize sets each cell independently to Alive with probability 0.3 using
// the injected source, else Dead.
func (u *Universe) Randomize(rng *rand.Rand) {
	core.FillChance(rng, u.cells, aliveChance)
	u.generation = 0
}

// Reset reseeds the universe randomly from the provided seed.
func (u *Universe) Reset(seed int64) {
	u.Randomize(core.NewRNG(seed).Source())
}

// ToggleCell flips the cell at (row, col) between Alive and Dead. The
// coordinates wrap modulo the dimensions, matching neighbor addressing, so
// every input maps to some cell. On an empty universe the call is a no-op.
func (u *Universe) ToggleCell(row, col uint32) {
	if u.width == 0 || u.height == 0 {
		return
	}
	idx := u.index(row%u.height, col%u.width)
	u.cells[idx] = u.cells[idx].Toggled()
}

// Step advances the universe by one generation. Every cell is updated
// simultaneously: neighbor counts read the pre-step state and the new
// generation replaces the old in a single buffer swap.
func (u *Universe) Step() {
	defer core.StartTimer(u.timing, "universe.step").Stop()

	if u.width == 0 || u.height == 0 {
		return
	}
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			cell := u.cells[idx]
			neighbors := u.liveNeighborCount(row, col)

			next := cell
			switch {
			case cell == core.Alive && neighbors < 2:
				next = core.Dead // underpopulation
			case cell == core.Alive && neighbors > 3:
				next = core.Dead // overpopulation
			case cell == core.Dead && neighbors == 3:
				next = core.Alive // reproduction
			}
			u.next[idx] = next
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++
}

// Render produces a text snapshot of the grid, one line per row, with Dead
// cells drawn as '◻' and Alive cells as '◼'.
func (u *Universe) Render() string {
	var b strings.Builder
	for row := uint32(0); row < u.height; row++ {
		start := u.index(row, 0)
		for _, cell := range u.cells[start : start+int(u.width)] {
			if cell == core.Dead {
				b.WriteRune('◻')
			} else {
				b.WriteRune('◼')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parameters publishes the current universe stats for display surfaces.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "universe",
			Params: []core.Parameter{
				{Key: "width", Label: "Width", Value: fmt.Sprintf("%d", u.width)},
				{Key: "height", Label: "Height", Value: fmt.Sprintf("%d", u.height)},
				{Key: "generation", Label: "Generation", Value: fmt.Sprintf("%d", u.generation)},
				{Key: "population", Label: "Population", Value: fmt.Sprintf("%d", u.Population())},
			},
		},
	}}
}

func (u *Universe) index(row, col uint32) int {
	return int(row*u.width + col)
}

// liveNeighborCount sums the 8 toroidal neighbors of (row, col). Deltas are
// expressed as width-1/height-1 instead of -1 to stay in unsigned arithmetic.
func (u *Universe) liveNeighborCount(row, col uint32) uint8 {
	count := uint8(0)
	for _, dr := range [3]uint32{u.height - 1, 0, 1} {
		for _, dc := range [3]uint32{u.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % u.height
			c := (col + dc) % u.width
			count += uint8(u.cells[u.index(r, c)])
		}
	}
	return count
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return FromMap(cfg).New()
	})
}
