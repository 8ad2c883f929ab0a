package flux

import (
	"strconv"

	"fluxsim/pkg/particle"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Config controls how a World seeds its grid.
//
// Image takes precedence over Scene. With neither set the world starts empty
// at Width x Height. Zero dimensions defer to the scene or image.
type Config struct {
	Width  int
	Height int

	Seed int64

	Scene string
	Image string

	// Brush is the kind painted by interactive drivers.
	Brush particle.Kind
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:  42,
		Scene: "classic",
		Brush: particle.Heavy,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		c.Scene = v
	}
	if v, ok := cfg["image"]; ok {
		c.Image = v
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := particle.ParseKind(v); err == nil && parsed != particle.Empty {
			c.Brush = parsed
		}
	}
	return c
}
