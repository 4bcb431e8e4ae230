package povray

import (
	"strings"
	"testing"

	"github.com/KonboiOne/simulator-chrono-project/pkg/geom"
	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

func TestShapeDef_Primitives(t *testing.T) {
	tests := []struct {
		name  string
		shape scene.Shape
		want  string
	}{
		{"sphere", scene.NewSphere(2), "sphere { <0, 0, 0>, 2 }"},
		{"ellipsoid", scene.NewEllipsoid(geom.Vec3{X: 1, Y: 2, Z: 3}), "sphere { <0, 0, 0>, 1 scale <1, 2, 3> }"},
		{"box", scene.NewBox(geom.Vec3{X: 2, Y: 4, Z: 6}), "box { <-1, -2, -3>, <1, 2, 3> }"},
		{"cylinder", scene.NewCylinder(0.5, 3), "cylinder { <0, -1.5, 0>, <0, 1.5, 0>, 0.5 }"},
		{"cone", scene.NewCone(1, 2), "cone { <0, -1, 0>, 1, <0, 1, 0>, 0 }"},
	}
	for _, tt := range tests {
		def, ok := shapeDef("sym", tt.shape)
		if !ok {
			t.Errorf("%s: no definition produced", tt.name)
			continue
		}
		if !strings.HasPrefix(def, "#declare sym = ") {
			t.Errorf("%s: definition missing declare: %q", tt.name, def)
		}
		if !strings.Contains(def, tt.want) {
			t.Errorf("%s: definition %q missing %q", tt.name, def, tt.want)
		}
	}
}

func TestShapeDef_Mesh(t *testing.T) {
	m := scene.NewMesh()
	a := m.AddVertex(geom.Vec3{})
	b := m.AddVertex(geom.Vec3{X: 1})
	c := m.AddVertex(geom.Vec3{Y: 1})
	m.AddTriangle(a, b, c)

	def, ok := shapeDef("sym", m)
	if !ok {
		t.Fatal("mesh did not produce a definition")
	}
	for _, want := range []string{"mesh2 {", "vertex_vectors {\n3", "face_indices {\n1", "<0, 1, 2>"} {
		if !strings.Contains(def, want) {
			t.Errorf("mesh definition missing %q:\n%s", want, def)
		}
	}
}

func TestShapeDef_WireframeMesh(t *testing.T) {
	m := scene.NewMesh()
	m.Wireframe = true
	v0 := m.AddVertex(geom.Vec3{})
	v1 := m.AddVertex(geom.Vec3{X: 1})
	v2 := m.AddVertex(geom.Vec3{Y: 1})
	v3 := m.AddVertex(geom.Vec3{X: 1, Y: 1})
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v1, v3, v2) // shares the v1-v2 edge

	def, ok := shapeDef("sym", m)
	if !ok {
		t.Fatal("wireframe mesh did not produce a definition")
	}
	if got := strings.Count(def, "cylinder {"); got != 5 {
		t.Errorf("expected 5 distinct edges, got %d:\n%s", got, def)
	}
	if !strings.Contains(def, "wire_thickness") {
		t.Error("wireframe cage does not reference wire_thickness")
	}
}

func TestShapeDef_EmptyMesh(t *testing.T) {
	if _, ok := shapeDef("sym", scene.NewMesh()); ok {
		t.Error("empty mesh should yield no definition")
	}
}

func TestMaterialDef_Flat(t *testing.T) {
	def := materialDef("m_test", scene.NewMaterial())
	if !strings.Contains(def, "pigment { color rgbt <1, 1, 1, 0> }") {
		t.Errorf("default material pigment wrong:\n%s", def)
	}
	if strings.Contains(def, "finish") {
		t.Errorf("default material should have no finish block:\n%s", def)
	}
}

func TestMaterialDef_Finish(t *testing.T) {
	m := scene.NewMaterial()
	m.Diffuse = geom.Color{R: 1, G: 0.5, B: 0}
	m.Opacity = 0.75
	m.Specular = 0.8
	m.Roughness = 0.02
	m.Reflection = 0.1

	def := materialDef("m_test", m)
	for _, want := range []string{
		"rgbt <1, 0.5, 0, 0.25>",
		"specular 0.8",
		"roughness 0.02",
		"reflection { 0.1 }",
	} {
		if !strings.Contains(def, want) {
			t.Errorf("material definition missing %q:\n%s", want, def)
		}
	}
}

func TestMaterialDef_Texture(t *testing.T) {
	m := scene.NewMaterial()
	m.Texture = "textures/crate.jpg"
	def := materialDef("m_test", m)
	if !strings.Contains(def, `image_map { jpeg "textures/crate.jpg" }`) {
		t.Errorf("textured material wrong:\n%s", def)
	}
}

func TestPovMatrix_Translation(t *testing.T) {
	f := geom.NewFrame(geom.Vec3{X: 1, Y: 2, Z: 3}, geom.QuatIdentity())
	got := povMatrix(f)
	want := "matrix <1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 2, 3>"
	if got != want {
		t.Errorf("povMatrix = %q, want %q", got, want)
	}
}

func TestObjectInstance(t *testing.T) {
	f := geom.FrameIdentity()
	with := objectInstance("sh_a", "m_b", f)
	if !strings.Contains(with, "object { sh_a texture { m_b } matrix <") {
		t.Errorf("instance with material wrong: %q", with)
	}
	without := objectInstance("sh_a", "", f)
	if strings.Contains(without, "texture") {
		t.Errorf("instance without material should have no texture clause: %q", without)
	}
}

func TestOverlaySymbol(t *testing.T) {
	got := overlaySymbol("sym_cog", geom.FrameIdentity(), 0.04)
	if !strings.HasPrefix(got, "object { sym_cog(0.04) matrix <") {
		t.Errorf("overlay symbol wrong: %q", got)
	}
}

func TestContactSymbol_VectorScaledLength(t *testing.T) {
	c := scene.Contact{Point: geom.Vec3{X: 1}, Force: geom.Vec3{Y: 2}}
	o := ContactOptions{Mode: VectorScaledLength, Scale: 0.5, Width: 0.1, MaxSize: 10}

	sym, ok := contactSymbol(c, o)
	if !ok {
		t.Fatal("expected a symbol")
	}
	if !strings.HasPrefix(sym, "cylinder { <1, 0, 0>, <1, 1, 0>, 0.1") {
		t.Errorf("cylinder geometry wrong: %q", sym)
	}
	if !strings.Contains(sym, "rgb <0.5, 0.5, 0.5>") {
		t.Errorf("expected plain gray color: %q", sym)
	}
}

func TestContactSymbol_ClampedIsWhite(t *testing.T) {
	c := scene.Contact{Force: geom.Vec3{Y: 100}}
	o := ContactOptions{Mode: VectorScaledLength, Scale: 1, Width: 0.1, MaxSize: 3, Colormap: true, ColormapEnd: 1000}

	sym, ok := contactSymbol(c, o)
	if !ok {
		t.Fatal("expected a symbol")
	}
	if !strings.Contains(sym, "<0, 3, 0>") {
		t.Errorf("length not clamped to max size: %q", sym)
	}
	if !strings.Contains(sym, "rgb <1, 1, 1>") {
		t.Errorf("clamped symbol should be white: %q", sym)
	}
}

func TestContactSymbol_VectorScaledRadius(t *testing.T) {
	c := scene.Contact{Force: geom.Vec3{Z: 2}}
	o := ContactOptions{Mode: VectorScaledRadius, Scale: 0.25, MaxSize: 5}

	sym, ok := contactSymbol(c, o)
	if !ok {
		t.Fatal("expected a symbol")
	}
	// Length is pinned to the max size; the radius carries the force.
	if !strings.HasPrefix(sym, "cylinder { <0, 0, 0>, <0, 0, 5>, 0.5") {
		t.Errorf("scaled radius geometry wrong: %q", sym)
	}
}

func TestContactSymbol_Colormap(t *testing.T) {
	c := scene.Contact{Force: geom.Vec3{X: 1}}
	o := ContactOptions{Mode: SphereScaledRadius, Scale: 1, Colormap: true, ColormapStart: 0, ColormapEnd: 4}

	sym, ok := contactSymbol(c, o)
	if !ok {
		t.Fatal("expected a symbol")
	}
	if !strings.Contains(sym, "rgb <0, 1, 1>") {
		t.Errorf("expected colormap cyan for quarter-range force: %q", sym)
	}
}

func TestContactSymbol_Degenerate(t *testing.T) {
	var zero scene.Contact
	tests := []struct {
		name string
		c    scene.Contact
		o    ContactOptions
	}{
		{"zero force scaled vector", zero, ContactOptions{Mode: VectorScaledLength, Scale: 1, Width: 0.1}},
		{"zero force fixed vector", zero, ContactOptions{Mode: VectorNoScale, Scale: 1, Width: 0.1}},
		{"zero force scaled sphere", zero, ContactOptions{Mode: SphereScaledRadius, Scale: 1}},
		{"zero width", scene.Contact{Force: geom.Vec3{X: 1}}, ContactOptions{Mode: VectorScaledLength, Scale: 1}},
		{"unknown mode", scene.Contact{Force: geom.Vec3{X: 1}}, ContactOptions{Mode: ContactSymbol(99), Scale: 1}},
	}
	for _, tt := range tests {
		if _, ok := contactSymbol(tt.c, tt.o); ok {
			t.Errorf("%s: expected no symbol", tt.name)
		}
	}
}

func TestContactSymbol_SphereNoScaleIgnoresForce(t *testing.T) {
	sym, ok := contactSymbol(scene.Contact{}, ContactOptions{Mode: SphereNoScale, Scale: 0.2})
	if !ok {
		t.Fatal("fixed sphere should render regardless of force")
	}
	if !strings.HasPrefix(sym, "sphere { <0, 0, 0>, 0.2") {
		t.Errorf("fixed sphere geometry wrong: %q", sym)
	}
}
