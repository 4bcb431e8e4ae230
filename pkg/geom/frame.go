package geom

// Frame is a rigid-body placement: a position plus a rotation.
type Frame struct {
	Pos Vec3
	Rot Quat
}

// FrameIdentity returns a frame at the origin with no rotation.
func FrameIdentity() Frame {
	return Frame{Rot: QuatIdentity()}
}

// NewFrame creates a frame from a position and rotation.
func NewFrame(pos Vec3, rot Quat) Frame {
	return Frame{Pos: pos, Rot: rot}
}

// Mul composes two frames: the result places other inside f's coordinates.
// For an item with world frame W and a shape with local frame L, the shape's
// world placement is W.Mul(L).
func (f Frame) Mul(other Frame) Frame {
	return Frame{
		Pos: f.Pos.Add(f.Rot.Rotate(other.Pos)),
		Rot: f.Rot.Mul(other.Rot),
	}
}

// TransformPoint transforms a local point into f's parent coordinates.
func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.Pos.Add(f.Rot.Rotate(p))
}

// Mat34 decomposes the frame into the 12-value layout consumed by POV-Ray's
// matrix keyword: the rotation matrix columns listed as rows, followed by the
// translation.
func (f Frame) Mat34() [12]float64 {
	m := f.Rot.ToMat3()
	return [12]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
		f.Pos.X, f.Pos.Y, f.Pos.Z,
	}
}
