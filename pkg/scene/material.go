package scene

import "github.com/KonboiOne/simulator-chrono-project/pkg/geom"

// Material describes the surface appearance of a shape. Materials are
// shared objects deduplicated by identity, like shapes.
type Material struct {
	id uint64

	// Diffuse is the surface color.
	Diffuse geom.Color
	// Opacity ranges from 0 (fully transparent) to 1 (opaque).
	Opacity float64
	// Specular is the highlight intensity; 0 disables highlights.
	Specular float64
	// Roughness controls highlight spread when Specular is set.
	Roughness float64
	// Reflection is the mirror reflection amount; 0 disables it.
	Reflection float64
	// Texture is an optional image file applied as a surface map.
	Texture string
}

// NewMaterial creates an opaque white material.
func NewMaterial() *Material {
	return &Material{
		id:      newObjectID(),
		Diffuse: geom.White,
		Opacity: 1,
	}
}

// ID returns the session-unique identity assigned at construction.
func (m *Material) ID() uint64 {
	return m.id
}
