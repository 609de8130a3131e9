package life

import "strconv"

// Config holds construction parameters for the universe.
type Config struct {
	Width  uint32
	Height uint32
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: defaultWidth, Height: defaultHeight}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = uint32(parsed)
		}
	}
	return c
}

// New builds a universe from the configuration. Non-default dimensions reset
// the seed pattern to all-Dead, matching the resize semantics.
func (c Config) New() *Universe {
	u := New()
	if c.Width != defaultWidth {
		u.SetWidth(c.Width)
	}
	if c.Height != defaultHeight {
		u.SetHeight(c.Height)
	}
	return u
}
