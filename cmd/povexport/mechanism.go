package main

import (
	"math"

	"github.com/KonboiOne/simulator-chrono-project/pkg/geom"
	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

const (
	crankRadius  = 0.3
	rodLength    = 0.9
	pistonRadius = 0.12

	// crankSpeed is the angular velocity of the flywheel in rad/s,
	// one revolution per simulated second.
	crankSpeed = 2 * math.Pi
)

// crankDrive holds the moving parts of the demo slider-crank so the
// frame loop can pose them for a given crank angle.
type crankDrive struct {
	sys      *scene.System
	flywheel *scene.Body
	rod      *scene.Body
	piston   *scene.Body
	wrist    *scene.Link
}

// buildMechanism assembles the demo scene: a flywheel with crank pin,
// connecting rod and piston sliding along the x axis inside a
// wireframe guide cage, all above a ground slab. Shared materials and
// a multi-shape body exercise the asset deduplication paths.
func buildMechanism(sys *scene.System) *crankDrive {
	steel := scene.NewMaterial()
	steel.Diffuse = geom.Color{R: 0.65, G: 0.67, B: 0.7}
	steel.Specular = 0.8
	steel.Roughness = 0.02
	steel.Reflection = 0.08

	rubber := scene.NewMaterial()
	rubber.Diffuse = geom.Color{R: 0.2, G: 0.2, B: 0.22}

	red := scene.NewMaterial()
	red.Diffuse = geom.Color{R: 0.8, G: 0.15, B: 0.1}
	red.Specular = 0.5
	red.Roughness = 0.05

	ground := scene.NewBody("ground")
	slab := scene.NewBox(geom.Vec3{X: 4, Y: 0.2, Z: 2})
	slab.AddMaterial(rubber)
	ground.AddShape(slab, geom.FrameIdentity())
	ground.SetPos(geom.Vec3{Y: -0.8})
	sys.Add(ground)

	// Cylinders extend along their local y axis, so disk and pin are
	// tipped to face the world z axis.
	faceZ := geom.NewFrame(geom.Vec3{}, geom.QuatFromAxisAngle(geom.Vec3{X: 1}, math.Pi/2))

	flywheel := scene.NewBody("flywheel")
	disk := scene.NewCylinder(0.5, 0.08)
	disk.AddMaterial(steel)
	flywheel.AddShape(disk, faceZ)
	pin := scene.NewCylinder(0.05, 0.16)
	pin.AddMaterial(red)
	flywheel.AddShape(pin, geom.NewFrame(geom.Vec3{X: crankRadius, Z: 0.12}, faceZ.Rot))
	flywheel.SetCOGOffset(geom.NewFrame(geom.Vec3{X: 0.02}, geom.QuatIdentity()))
	sys.Add(flywheel)

	rod := scene.NewBody("rod")
	bar := scene.NewBox(geom.Vec3{X: rodLength, Y: 0.07, Z: 0.05})
	bar.AddMaterial(steel)
	rod.AddShape(bar, geom.FrameIdentity())
	sys.Add(rod)

	piston := scene.NewBody("piston")
	plunger := scene.NewCylinder(pistonRadius, 0.3)
	plunger.AddMaterial(steel)
	alongX := geom.QuatFromAxisAngle(geom.Vec3{Z: 1}, -math.Pi/2)
	piston.AddShape(plunger, geom.NewFrame(geom.Vec3{}, alongX))
	sys.Add(piston)

	guide := scene.NewBody("guide")
	guide.AddShape(guideCage(), geom.FrameIdentity())
	guide.SetPos(geom.Vec3{X: rodLength})
	sys.Add(guide)

	pivot := scene.NewLink("crank_pivot")
	pivot.SetFrame(geom.FrameIdentity())
	sys.Add(pivot)
	wrist := scene.NewLink("wrist_pin")
	sys.Add(wrist)

	return &crankDrive{
		sys:      sys,
		flywheel: flywheel,
		rod:      rod,
		piston:   piston,
		wrist:    wrist,
	}
}

// guideCage builds a wireframe box spanning the piston travel.
func guideCage() *scene.Mesh {
	m := scene.NewMesh()
	m.Wireframe = true
	const hx, hy, hz = 0.5, 0.16, 0.16
	var idx [8]int
	for i, s := range [][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	} {
		idx[i] = m.AddVertex(geom.Vec3{X: s[0] * hx, Y: s[1] * hy, Z: s[2] * hz})
	}
	for _, q := range [][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {2, 3, 7, 6},
		{0, 3, 7, 4}, {1, 2, 6, 5},
	} {
		m.AddTriangle(idx[q[0]], idx[q[1]], idx[q[2]])
		m.AddTriangle(idx[q[0]], idx[q[2]], idx[q[3]])
	}
	return m
}

// pose places the moving bodies for crank angle theta and refreshes
// the synthetic contact report on the piston skirt.
func (d *crankDrive) pose(theta float64) {
	d.flywheel.SetRot(geom.QuatFromAxisAngle(geom.Vec3{Z: 1}, theta))

	// Classic slider-crank kinematics in the xy plane.
	pin := geom.Vec3{
		X: crankRadius * math.Cos(theta),
		Y: crankRadius * math.Sin(theta),
	}
	x := pin.X + math.Sqrt(rodLength*rodLength-pin.Y*pin.Y)
	wristPos := geom.Vec3{X: x}

	d.rod.SetPos(pin.Add(wristPos).Scale(0.5))
	d.rod.SetRot(geom.QuatFromAxisAngle(geom.Vec3{Z: 1}, math.Atan2(-pin.Y, x-pin.X)))

	d.piston.SetPos(wristPos)
	d.wrist.SetFrame(geom.NewFrame(wristPos, geom.QuatIdentity()))

	// Skirt loads follow the crank phase so contact glyphs vary in
	// size and color over the animation.
	load := 60 + 45*math.Sin(theta)
	side := 12 * math.Cos(theta)
	d.sys.SetContacts([]scene.Contact{
		{Point: geom.Vec3{X: x, Y: -pistonRadius}, Force: geom.Vec3{X: side, Y: load}},
		{Point: geom.Vec3{X: x, Y: pistonRadius}, Force: geom.Vec3{X: -side, Y: -0.4 * load}},
	})
}
