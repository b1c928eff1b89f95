package config

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Region is a fixed capture rectangle in virtual-screen coordinates.
// A zero Width or Height means "not configured".
type Region struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Empty reports whether no usable region is configured.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// String formats r as "x,y,w,h".
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParseRegion parses "x,y,w,h" (spaces allowed; "x" also accepted as the
// separator between width and height, e.g. "0,0,800x600").
func ParseRegion(s string) (Region, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "x", ",")
	parts := strings.Split(norm, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("region %q: want x,y,w,h", s)
	}
	var n [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("region %q: %w", s, err)
		}
		n[i] = v
	}
	if n[2] <= 0 || n[3] <= 0 {
		return Region{}, fmt.Errorf("region %q: width and height must be positive", s)
	}
	return Region{X: n[0], Y: n[1], Width: n[2], Height: n[3]}, nil
}

// Set implements pflag.Value.
func (r *Region) Set(s string) error {
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Region) Type() string { return "x,y,w,h" }
