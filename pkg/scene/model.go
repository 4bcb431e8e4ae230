package scene

import "github.com/KonboiOne/simulator-chrono-project/pkg/geom"

// ShapeInstance places a shape inside a model: the frame is the
// shape's placement relative to the owning item.
type ShapeInstance struct {
	Shape Shape
	Frame geom.Frame
}

// Model is the visual representation of an item: an ordered list of
// placed shapes.
type Model struct {
	instances []ShapeInstance
}

// NewModel creates an empty visual model.
func NewModel() *Model {
	return &Model{}
}

// AddShape appends a shape with its item-relative placement.
func (m *Model) AddShape(shape Shape, frame geom.Frame) {
	m.instances = append(m.instances, ShapeInstance{Shape: shape, Frame: frame})
}

// Shapes returns the placed shapes in insertion order. The returned
// slice is the model's own storage and must not be modified.
func (m *Model) Shapes() []ShapeInstance {
	return m.instances
}

// NumShapes returns the number of placed shapes.
func (m *Model) NumShapes() int {
	return len(m.instances)
}
