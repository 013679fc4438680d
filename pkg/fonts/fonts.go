// Package fonts provides the font faces used to annotate rendered layouts.
//
// The Go Regular typeface ships with golang.org/x/image, so rendering needs
// no system fonts. Faces are sized in typographic points and scaled by the
// output DPI, matching how the figure itself is sized.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Parsed once on first access.
var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
		if regularErr != nil {
			regularErr = fmt.Errorf("parse go regular: %w", regularErr)
		}
	})
	return regular, regularErr
}

// Face returns a face of the given point size rendered at dpi.
func Face(points, dpi float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingNone,
	}), nil
}

// Set caches faces by point size for one DPI.
// It is not safe for concurrent use.
type Set struct {
	dpi   float64
	faces map[float64]font.Face
}

// NewSet creates a face cache for dpi.
func NewSet(dpi float64) *Set {
	return &Set{dpi: dpi, faces: make(map[float64]font.Face)}
}

// Face returns the cached face for points, creating it on first use.
func (s *Set) Face(points float64) (font.Face, error) {
	if f, ok := s.faces[points]; ok {
		return f, nil
	}
	f, err := Face(points, s.dpi)
	if err != nil {
		return nil, err
	}
	s.faces[points] = f
	return f, nil
}
