package scene

import "github.com/KonboiOne/simulator-chrono-project/pkg/geom"

// Item is anything a system can contain and a visualization backend
// can bind: it has an identity, a world placement, and optionally a
// visual model.
type Item interface {
	// ID returns the session-unique identity assigned at construction.
	ID() uint64
	// Name returns the item's name. Names are free-form and need not
	// be unique.
	Name() string
	// Model returns the item's visual model, or nil when the item has
	// no visual representation.
	Model() *Model
	// Frame returns the item's world placement.
	Frame() geom.Frame
}

// itemBase carries the state common to all concrete items.
type itemBase struct {
	id    uint64
	name  string
	frame geom.Frame
	model *Model
}

func newItemBase(name string) itemBase {
	return itemBase{id: newObjectID(), name: name, frame: geom.FrameIdentity()}
}

func (b *itemBase) ID() uint64 {
	return b.id
}

func (b *itemBase) Name() string {
	return b.name
}

func (b *itemBase) Model() *Model {
	return b.model
}

func (b *itemBase) Frame() geom.Frame {
	return b.frame
}

// SetFrame sets the item's world placement.
func (b *itemBase) SetFrame(f geom.Frame) {
	b.frame = f
}

// UseModel attaches a visual model. Passing nil withdraws the visual
// representation.
func (b *itemBase) UseModel(m *Model) {
	b.model = m
}

// Body is a movable simulation item: a rigid body with a world
// placement, an optional visual model, and a mass-center offset.
type Body struct {
	itemBase
	cogOffset geom.Frame
}

// NewBody creates a body with identity placement and no visual model.
func NewBody(name string) *Body {
	return &Body{itemBase: newItemBase(name), cogOffset: geom.FrameIdentity()}
}

// SetPos sets the position part of the body's world placement.
func (b *Body) SetPos(p geom.Vec3) {
	b.frame.Pos = p
}

// SetRot sets the rotation part of the body's world placement.
func (b *Body) SetRot(q geom.Quat) {
	b.frame.Rot = q
}

// AddShape attaches a shape to the body's visual model, creating the
// model on first use.
func (b *Body) AddShape(shape Shape, frame geom.Frame) {
	if b.model == nil {
		b.model = NewModel()
	}
	b.model.AddShape(shape, frame)
}

// SetCOGOffset sets the mass-center frame relative to the body frame.
func (b *Body) SetCOGOffset(f geom.Frame) {
	b.cogOffset = f
}

// COGFrame returns the mass-center frame in world coordinates.
func (b *Body) COGFrame() geom.Frame {
	return b.frame.Mul(b.cogOffset)
}

// Link is a joint-style item connecting bodies. Links expose their
// connection frame and have no visual model unless one is attached.
type Link struct {
	itemBase
}

// NewLink creates a link with identity placement and no visual model.
func NewLink(name string) *Link {
	return &Link{itemBase: newItemBase(name)}
}

// LinkFrame returns the joint connection frame in world coordinates.
func (l *Link) LinkFrame() geom.Frame {
	return l.frame
}
