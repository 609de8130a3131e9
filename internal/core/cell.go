package core

// Cell is the state of a single grid square. The numeric values are part of
// the contract: summing cells yields a live-neighbor count.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a live cell.
	Alive Cell = 1
)

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Dead {
		return Alive
	}
	return Dead
}
