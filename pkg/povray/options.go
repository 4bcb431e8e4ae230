package povray

import (
	"fmt"
	"strings"
)

// ContactSymbol selects how contact forces are drawn.
type ContactSymbol int

const (
	// VectorScaledLength draws an arrow whose length is the force
	// magnitude times the scale factor.
	VectorScaledLength ContactSymbol = iota
	// VectorScaledRadius draws an arrow of fixed length (the max size)
	// whose radius is the force magnitude times the scale factor.
	VectorScaledRadius
	// VectorNoScale draws an arrow of fixed length and radius.
	VectorNoScale
	// SphereScaledRadius draws a sphere whose radius is the force
	// magnitude times the scale factor.
	SphereScaledRadius
	// SphereNoScale draws a sphere of fixed radius.
	SphereNoScale
)

// String returns a human-readable contact symbol name.
func (s ContactSymbol) String() string {
	switch s {
	case VectorScaledLength:
		return "VectorScaledLength"
	case VectorScaledRadius:
		return "VectorScaledRadius"
	case VectorNoScale:
		return "VectorNoScale"
	case SphereScaledRadius:
		return "SphereScaledRadius"
	case SphereNoScale:
		return "SphereNoScale"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseContactSymbol parses a contact symbol name. Matching is
// case-insensitive and ignores underscores, so "vector_scaled_length"
// and "VectorScaledLength" are equivalent.
func ParseContactSymbol(s string) (ContactSymbol, error) {
	key := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	switch key {
	case "vectorscaledlength":
		return VectorScaledLength, nil
	case "vectorscaledradius":
		return VectorScaledRadius, nil
	case "vectornoscale":
		return VectorNoScale, nil
	case "spherescaledradius":
		return SphereScaledRadius, nil
	case "spherenoscale":
		return SphereNoScale, nil
	}
	return 0, fmt.Errorf("%w: unknown contact symbol %q", ErrConfig, s)
}

// SymbolOptions controls one of the coordinate-system overlays.
type SymbolOptions struct {
	Show bool
	// Size is the symbol size in scene units.
	Size float64
}

// ContactOptions controls the contact force overlay.
type ContactOptions struct {
	Show  bool
	Mode  ContactSymbol
	Scale float64
	// Width is the arrow radius for the vector modes.
	Width float64
	// MaxSize clamps the scaled dimension; clamped symbols are drawn
	// white. In VectorScaledRadius mode it is also the arrow length.
	MaxSize float64
	// Colormap maps force magnitude over [ColormapStart, ColormapEnd]
	// to a blue-to-red false color.
	Colormap      bool
	ColormapStart float64
	ColormapEnd   float64
}

// RenderOptions holds the overlay toggles consumed when writing frame
// files. Values are persisted as given; supplying geometrically sane
// sizes and scales is the caller's responsibility.
type RenderOptions struct {
	COGs     SymbolOptions
	Frames   SymbolOptions
	Links    SymbolOptions
	Contacts ContactOptions
	// WireframeThickness is the cage tube radius for wireframe meshes.
	WireframeThickness float64
}

// DefaultRenderOptions returns the default overlay settings: all
// overlays off, with the standard symbol sizes.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		COGs:               SymbolOptions{Size: 0.04},
		Frames:             SymbolOptions{Size: 0.05},
		Links:              SymbolOptions{Size: 0.04},
		WireframeThickness: 0.001,
	}
}

// SetShowCOGs toggles center-of-gravity markers of the given size.
func (o *RenderOptions) SetShowCOGs(show bool, size float64) {
	o.COGs = SymbolOptions{Show: show, Size: size}
}

// SetShowFrames toggles item reference frame markers of the given size.
func (o *RenderOptions) SetShowFrames(show bool, size float64) {
	o.Frames = SymbolOptions{Show: show, Size: size}
}

// SetShowLinks toggles link connection frame markers of the given size.
func (o *RenderOptions) SetShowLinks(show bool, size float64) {
	o.Links = SymbolOptions{Show: show, Size: size}
}

// SetShowContacts toggles contact force symbols.
func (o *RenderOptions) SetShowContacts(show bool, mode ContactSymbol, scale, width, maxSize float64, colormap bool, colormapStart, colormapEnd float64) {
	o.Contacts = ContactOptions{
		Show:          show,
		Mode:          mode,
		Scale:         scale,
		Width:         width,
		MaxSize:       maxSize,
		Colormap:      colormap,
		ColormapStart: colormapStart,
		ColormapEnd:   colormapEnd,
	}
}

// SetWireframeThickness sets the tube radius used by wireframe mesh
// cages.
func (o *RenderOptions) SetWireframeThickness(t float64) {
	o.WireframeThickness = t
}
