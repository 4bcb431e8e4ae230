package scene

// Visualizer is the capability set a simulation uses to hand its
// objects to a visualization or export backend. Backends attach a
// system, then bind items to create their internal representations;
// what happens after binding (interactive rendering, file export) is
// backend-specific.
type Visualizer interface {
	// AttachSystem makes sys the source of items for later binds.
	AttachSystem(sys *System)
	// BindAll binds every item of the attached system.
	BindAll() error
	// BindItem binds a single item, typically one created after
	// BindAll ran.
	BindItem(item Item) error
}
