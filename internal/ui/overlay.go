//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

var helpLines = []string{
	"space pause  n step  r reset  s reseed",
	"c clear  1/2/3 stamp glider/pulsar/gun at cursor",
	"click toggle cell  h toggle overlay  q/esc quit",
}

// Overlay draws simulation stats and key bindings on top of the grid view.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the stats panel when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}
	lines := append([]string(nil), helpLines...)
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			parts := make([]string, 0, len(group.Params))
			for _, p := range group.Params {
				parts = append(parts, fmt.Sprintf("%s=%s", p.Label, p.Value))
			}
			lines = append(lines, strings.Join(parts, "  "))
		}
	}
	face := basicfont.Face7x13
	y := lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, color.White)
		y += lineHeight
	}
}
