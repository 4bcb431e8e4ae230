package scene

import "github.com/KonboiOne/simulator-chrono-project/pkg/geom"

// Shape is a piece of visual geometry. Shapes are shared: the same
// shape may appear in many models, and backends use ID to serialize
// each one exactly once.
type Shape interface {
	// ID returns the session-unique identity assigned at construction.
	ID() uint64
	// Materials returns the surface materials attached to the shape,
	// in attach order. The first one is used for plain rendering.
	Materials() []*Material
	// AddMaterial attaches a surface material to the shape.
	AddMaterial(m *Material)
}

// shapeBase carries the identity and material list common to all
// concrete shapes.
type shapeBase struct {
	id        uint64
	materials []*Material
}

func newShapeBase() shapeBase {
	return shapeBase{id: newObjectID()}
}

func (b *shapeBase) ID() uint64 {
	return b.id
}

func (b *shapeBase) Materials() []*Material {
	return b.materials
}

func (b *shapeBase) AddMaterial(m *Material) {
	b.materials = append(b.materials, m)
}

// Sphere is a sphere centered at the shape origin.
type Sphere struct {
	shapeBase
	Radius float64
}

// NewSphere creates a sphere with the given radius.
func NewSphere(radius float64) *Sphere {
	return &Sphere{shapeBase: newShapeBase(), Radius: radius}
}

// Ellipsoid is an axis-aligned ellipsoid centered at the shape origin.
type Ellipsoid struct {
	shapeBase
	// Radii holds the semi-axis lengths along X, Y, Z.
	Radii geom.Vec3
}

// NewEllipsoid creates an ellipsoid with the given semi-axis lengths.
func NewEllipsoid(radii geom.Vec3) *Ellipsoid {
	return &Ellipsoid{shapeBase: newShapeBase(), Radii: radii}
}

// Box is an axis-aligned box centered at the shape origin.
type Box struct {
	shapeBase
	// Lengths holds the full edge lengths along X, Y, Z.
	Lengths geom.Vec3
}

// NewBox creates a box with the given full edge lengths.
func NewBox(lengths geom.Vec3) *Box {
	return &Box{shapeBase: newShapeBase(), Lengths: lengths}
}

// Cylinder is a cylinder along the local Y axis, centered at the shape
// origin.
type Cylinder struct {
	shapeBase
	Radius float64
	Height float64
}

// NewCylinder creates a cylinder with the given radius and height.
func NewCylinder(radius, height float64) *Cylinder {
	return &Cylinder{shapeBase: newShapeBase(), Radius: radius, Height: height}
}

// Cone is a cone along the local Y axis, base at -Height/2 and apex at
// +Height/2.
type Cone struct {
	shapeBase
	Radius float64
	Height float64
}

// NewCone creates a cone with the given base radius and height.
func NewCone(radius, height float64) *Cone {
	return &Cone{shapeBase: newShapeBase(), Radius: radius, Height: height}
}

// Mesh is an indexed triangle mesh in shape-local coordinates.
type Mesh struct {
	shapeBase
	Vertices  []geom.Vec3
	Triangles [][3]int
	// Wireframe selects edge-cage rendering instead of solid faces.
	Wireframe bool
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{shapeBase: newShapeBase()}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v geom.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangle referencing previously added vertices.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, [3]int{a, b, c})
}
