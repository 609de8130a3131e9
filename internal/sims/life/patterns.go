package life

import (
	"sort"

	"torus-life/internal/core"
)

// pattern is a set of live-cell offsets relative to an anchor, together with
// the bounding box that gets cleared before the offsets are stamped.
type pattern struct {
	rows    uint32
	cols    uint32
	offsets [][2]uint32
}

var patterns = map[string]pattern{
	"glider": {
		rows: 3, cols: 3,
		offsets: [][2]uint32{
			{0, 1},
			{1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	},
	"pulsar": {
		rows: 17, cols: 17,
		offsets: [][2]uint32{
			// top lobe
			{2, 4}, {2, 5}, {2, 6}, {2, 10}, {2, 11}, {2, 12},
			{4, 2}, {4, 7}, {4, 9}, {4, 14},
			{5, 2}, {5, 7}, {5, 9}, {5, 14},
			{6, 2}, {6, 7}, {6, 9}, {6, 14},
			{7, 4}, {7, 5}, {7, 6}, {7, 10}, {7, 11}, {7, 12},
			// bottom lobe
			{9, 4}, {9, 5}, {9, 6}, {9, 10}, {9, 11}, {9, 12},
			{10, 2}, {10, 7}, {10, 9}, {10, 14},
			{11, 2}, {11, 7}, {11, 9}, {11, 14},
			{12, 2}, {12, 7}, {12, 9}, {12, 14},
			{14, 4}, {14, 5}, {14, 6}, {14, 10}, {14, 11}, {14, 12},
		},
	},
	"gosper_glider_gun": {
		rows: 11, cols: 38,
		offsets: [][2]uint32{
			{1, 25},
			{2, 23}, {2, 25},
			{3, 13}, {3, 14}, {3, 21}, {3, 22}, {3, 35}, {3, 36},
			{4, 12}, {4, 16}, {4, 21}, {4, 22}, {4, 35}, {4, 36},
			{5, 1}, {5, 2}, {5, 11}, {5, 17}, {5, 21}, {5, 22},
			{6, 1}, {6, 2}, {6, 11}, {6, 15}, {6, 17}, {6, 18}, {6, 23}, {6, 25},
			{7, 11}, {7, 17}, {7, 25},
			{8, 12}, {8, 16},
			{9, 13}, {9, 14},
		},
	},
}

// Patterns returns the known pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetPattern stamps a named pattern anchored at (startRow, startCol), with
// every offset wrapped toroidally. The pattern's bounding box is cleared to
// Dead first, so a stamp fully replaces whatever occupied that footprint.
// Unknown names are reported through the diagnostic logger and leave the
// grid untouched.
func (u *Universe) SetPattern(name string, startRow, startCol uint32) {
	if u.width == 0 || u.height == 0 {
		return
	}
	p, ok := patterns[name]
	if !ok {
		u.log.Printf("unknown pattern %q", name)
		return
	}
	u.clearArea(startRow, startCol, p.rows, p.cols)
	for _, off := range p.offsets {
		r := (startRow + off[0]) % u.height
		c := (startCol + off[1]) % u.width
		u.cells[u.index(r, c)] = core.Alive
	}
}

// clearArea sets a rows x cols rectangle anchored at (startRow, startCol) to
// Dead, wrapping toroidally.
func (u *Universe) clearArea(startRow, startCol, rows, cols uint32) {
	for row := uint32(0); row < rows; row++ {
		for col := uint32(0); col < cols; col++ {
			r := (startRow + row) % u.height
			c := (startCol + col) % u.width
			u.cells[u.index(r, c)] = core.Dead
		}
	}
}
