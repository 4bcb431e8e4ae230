package povray

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KonboiOne/simulator-chrono-project/pkg/geom"
	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

func povFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func povTriple(v geom.Vec3) string {
	return povFloat(v.X) + ", " + povFloat(v.Y) + ", " + povFloat(v.Z)
}

func povVec(v geom.Vec3) string {
	return "<" + povTriple(v) + ">"
}

func colorTriple(c geom.Color) string {
	return povFloat(c.R) + ", " + povFloat(c.G) + ", " + povFloat(c.B)
}

// povMatrix renders a frame as the 12-value POV matrix clause: the
// three rotated basis vectors followed by the translation.
func povMatrix(f geom.Frame) string {
	m := f.Mat34()
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = povFloat(v)
	}
	return "matrix <" + strings.Join(parts, ", ") + ">"
}

// shapeDef serializes a shape definition under the given symbol.
// Shapes of unknown kind and meshes without faces yield ok=false and
// are skipped by the caller.
func shapeDef(symbol string, s scene.Shape) (def string, ok bool) {
	switch sh := s.(type) {
	case *scene.Sphere:
		return fmt.Sprintf("#declare %s = sphere { <0, 0, 0>, %s }\n", symbol, povFloat(sh.Radius)), true
	case *scene.Ellipsoid:
		return fmt.Sprintf("#declare %s = sphere { <0, 0, 0>, 1 scale %s }\n", symbol, povVec(sh.Radii)), true
	case *scene.Box:
		h := sh.Lengths.Scale(0.5)
		return fmt.Sprintf("#declare %s = box { %s, %s }\n", symbol, povVec(h.Scale(-1)), povVec(h)), true
	case *scene.Cylinder:
		half := sh.Height / 2
		return fmt.Sprintf("#declare %s = cylinder { <0, %s, 0>, <0, %s, 0>, %s }\n",
			symbol, povFloat(-half), povFloat(half), povFloat(sh.Radius)), true
	case *scene.Cone:
		half := sh.Height / 2
		return fmt.Sprintf("#declare %s = cone { <0, %s, 0>, %s, <0, %s, 0>, 0 }\n",
			symbol, povFloat(-half), povFloat(sh.Radius), povFloat(half)), true
	case *scene.Mesh:
		if sh.Wireframe {
			return meshWireframeDef(symbol, sh)
		}
		return meshSolidDef(symbol, sh)
	}
	return "", false
}

func meshSolidDef(symbol string, m *scene.Mesh) (string, bool) {
	if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#declare %s =\nmesh2 {\nvertex_vectors {\n%d", symbol, len(m.Vertices))
	for _, v := range m.Vertices {
		b.WriteString(",\n")
		b.WriteString(povVec(v))
	}
	fmt.Fprintf(&b, "\n}\nface_indices {\n%d", len(m.Triangles))
	for _, t := range m.Triangles {
		fmt.Fprintf(&b, ",\n<%d, %d, %d>", t[0], t[1], t[2])
	}
	b.WriteString("\n}\n}\n")
	return b.String(), true
}

// meshWireframeDef renders a mesh as a cage of thin cylinders, one per
// distinct triangle edge. The tube radius is the wire_thickness value
// declared by the scene script.
func meshWireframeDef(symbol string, m *scene.Mesh) (string, bool) {
	type edge struct{ a, b int }
	seen := make(map[edge]bool)

	var b strings.Builder
	fmt.Fprintf(&b, "#declare %s =\nunion {\n", symbol)
	edges := 0
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			a, c := t[i], t[(i+1)%3]
			if a == c {
				continue
			}
			if a > c {
				a, c = c, a
			}
			if a < 0 || c >= len(m.Vertices) {
				continue
			}
			e := edge{a, c}
			if seen[e] {
				continue
			}
			seen[e] = true
			va, vc := m.Vertices[a], m.Vertices[c]
			if va == vc {
				continue
			}
			fmt.Fprintf(&b, "cylinder { %s, %s, wire_thickness }\n", povVec(va), povVec(vc))
			edges++
		}
	}
	if edges == 0 {
		return "", false
	}
	b.WriteString("}\n")
	return b.String(), true
}

// materialDef serializes a material definition under the given symbol.
// An image texture replaces the flat pigment; finish parts are emitted
// only when set, so a default material reduces to a plain pigment.
func materialDef(symbol string, m *scene.Material) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#declare %s = texture { ", symbol)
	if m.Texture != "" {
		fmt.Fprintf(&b, "pigment { image_map { %s %q } } ", imageMapType(m.Texture), m.Texture)
	} else {
		fmt.Fprintf(&b, "pigment { color rgbt <%s, %s> } ", colorTriple(m.Diffuse), povFloat(1-m.Opacity))
	}
	if fin := finishParts(m); fin != "" {
		fmt.Fprintf(&b, "finish { %s } ", fin)
	}
	b.WriteString("}\n")
	return b.String()
}

func finishParts(m *scene.Material) string {
	var parts []string
	if m.Specular > 0 {
		parts = append(parts, "specular "+povFloat(m.Specular))
		if m.Roughness > 0 {
			parts = append(parts, "roughness "+povFloat(m.Roughness))
		}
	}
	if m.Reflection > 0 {
		parts = append(parts, "reflection { "+povFloat(m.Reflection)+" }")
	}
	return strings.Join(parts, " ")
}

func imageMapType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".tga":
		return "tga"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "sys"
	default:
		return "png"
	}
}

// objectInstance places a declared shape in the scene with an optional
// declared texture and the instance's world transform.
func objectInstance(shapeSym, matSym string, f geom.Frame) string {
	if matSym == "" {
		return fmt.Sprintf("object { %s %s }\n", shapeSym, povMatrix(f))
	}
	return fmt.Sprintf("object { %s texture { %s } %s }\n", shapeSym, matSym, povMatrix(f))
}

// overlaySymbol places one of the symbol macros declared by the scene
// script at the given frame.
func overlaySymbol(macro string, f geom.Frame, size float64) string {
	return fmt.Sprintf("object { %s(%s) %s }\n", macro, povFloat(size), povMatrix(f))
}

// contactSymbol renders one contact of the current report according to
// the contact overlay options. Contacts whose symbol would degenerate
// (zero force in a vector mode, non-positive sizes) yield ok=false.
func contactSymbol(c scene.Contact, o ContactOptions) (sym string, ok bool) {
	mag := c.Force.Length()
	flagged := false
	clamp := func(size float64) float64 {
		if o.MaxSize > 0 && size > o.MaxSize {
			flagged = true
			return o.MaxSize
		}
		return size
	}

	var dir geom.Vec3
	if mag > 0 {
		dir = c.Force.Scale(1 / mag)
	}

	var shape string
	switch o.Mode {
	case VectorScaledLength:
		length := clamp(mag * o.Scale)
		if mag == 0 || length <= 0 || o.Width <= 0 {
			return "", false
		}
		shape = openCylinder(c.Point, c.Point.Add(dir.Scale(length)), o.Width)
	case VectorScaledRadius:
		radius := clamp(mag * o.Scale)
		if mag == 0 || radius <= 0 || o.MaxSize <= 0 {
			return "", false
		}
		shape = openCylinder(c.Point, c.Point.Add(dir.Scale(o.MaxSize)), radius)
	case VectorNoScale:
		if mag == 0 || o.Scale <= 0 || o.Width <= 0 {
			return "", false
		}
		shape = openCylinder(c.Point, c.Point.Add(dir.Scale(o.Scale)), o.Width)
	case SphereScaledRadius:
		radius := clamp(mag * o.Scale)
		if radius <= 0 {
			return "", false
		}
		shape = openSphere(c.Point, radius)
	case SphereNoScale:
		if o.Scale <= 0 {
			return "", false
		}
		shape = openSphere(c.Point, o.Scale)
	default:
		return "", false
	}

	var col geom.Color
	switch {
	case flagged:
		col = geom.White
	case o.Colormap:
		col = falseColor(mag, o.ColormapStart, o.ColormapEnd)
	default:
		col = geom.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return fmt.Sprintf("%s pigment { color rgb <%s> } }\n", shape, colorTriple(col)), true
}

func openCylinder(p1, p2 geom.Vec3, radius float64) string {
	return fmt.Sprintf("cylinder { %s, %s, %s", povVec(p1), povVec(p2), povFloat(radius))
}

func openSphere(p geom.Vec3, radius float64) string {
	return fmt.Sprintf("sphere { %s, %s", povVec(p), povFloat(radius))
}
