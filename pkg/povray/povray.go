// Package povray exports simulation scenes as POV-Ray scripts and
// per-frame state files. Each distinct shape and material definition
// is serialized exactly once per session in single-asset-file mode,
// no matter how many frames or object instances reference it.
package povray

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KonboiOne/simulator-chrono-project/pkg/geom"
	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

// framePadding is the digit count of frame numbers in state file names
// and in the script's include expression.
const framePadding = 4

// Stats summarizes what an exporter has written so far.
type Stats struct {
	Items     int   // render list members
	Shapes    int   // distinct shape definitions resolved
	Materials int   // distinct material definitions resolved
	Frames    int   // frame files written
	Files     int   // whole files written, frames included
	Bytes     int64 // total bytes written
}

// Exporter generates POV-Ray output for the items of a system: one
// scene script, a render control .ini, and one state file per
// exported frame. It implements scene.Visualizer.
//
// The exporter is synchronous and single-threaded: one export call at
// a time, one exporter per system. It never creates directories; the
// base path and its anim/ and output/ subdirectories must exist before
// exporting.
type Exporter struct {
	sys     *scene.System
	log     *zap.Logger
	session uuid.UUID

	basePath     string
	templatePath string
	scriptName   string
	dataFilebase string
	picFilebase  string
	picDir       string
	dataDir      string

	width       int
	height      int
	antialias   bool
	aaDepth     int
	aaThreshold float64

	camLocation geom.Vec3
	camAim      geom.Vec3
	camAngle    float64
	camOrtho    bool

	lightLocation geom.Vec3
	lightColor    geom.Color
	lightShadows  bool

	background geom.Color
	ambient    geom.Color

	customScript string
	customData   string

	singleAssetFile bool
	frameNumber     int

	overlay RenderOptions

	list   *renderList
	assets *assetStore

	frames int
	files  int
	bytes  int64
}

var _ scene.Visualizer = (*Exporter)(nil)

// New creates an exporter attached to the given system, with the
// standard defaults: script render_frames.pov, state files
// state0000.pov... under output/, pictures picture0000... under anim/,
// 800x600, antialiasing off, camera at (0, 1.5, -2) aimed at the
// origin, a white shadow-casting light at (2, 3, -1), white
// background, ambient (2, 2, 2), and a single combined assets file.
// The base path has no default and must be set before exporting.
func New(sys *scene.System) *Exporter {
	return &Exporter{
		sys:             sys,
		log:             zap.NewNop(),
		session:         uuid.New(),
		scriptName:      "render_frames.pov",
		dataFilebase:    "state",
		picFilebase:     "picture",
		picDir:          "anim",
		dataDir:         "output",
		width:           800,
		height:          600,
		aaDepth:         3,
		aaThreshold:     0.1,
		camLocation:     geom.Vec3{Y: 1.5, Z: -2},
		camAngle:        30,
		lightLocation:   geom.Vec3{X: 2, Y: 3, Z: -1},
		lightColor:      geom.White,
		lightShadows:    true,
		background:      geom.White,
		ambient:         geom.Color{R: 2, G: 2, B: 2},
		singleAssetFile: true,
		overlay:         DefaultRenderOptions(),
		list:            newRenderList(),
		assets:          newAssetStore(),
	}
}

// SetLogger injects the logger used for warnings and per-frame debug
// output. Passing nil restores the no-op default.
func (e *Exporter) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.log = l
}

// SessionID returns the identity stamped into every generated file of
// this export session.
func (e *Exporter) SessionID() uuid.UUID {
	return e.session
}

// Stats returns counters describing what has been written so far.
func (e *Exporter) Stats() Stats {
	return Stats{
		Items:     e.list.size(),
		Shapes:    len(e.assets.shapes),
		Materials: len(e.assets.materials),
		Frames:    e.frames,
		Files:     e.files,
		Bytes:     e.bytes,
	}
}

// AttachSystem makes sys the source of items for later binds and of
// link frames and contact reports at export time.
func (e *Exporter) AttachSystem(sys *scene.System) {
	e.sys = sys
}

// SetBasePath sets the directory all output is written under. The
// directory and its picture and state subdirectories must already
// exist; the exporter creates no directories. Exporting produces
//
//	<base>/render_frames.pov.ini
//	<base>/render_frames.pov
//	<base>/render_frames.pov.assets
//	<base>/anim/picture0000.png ...   (written by the renderer)
//	<base>/output/state0000.pov ...
func (e *Exporter) SetBasePath(path string) {
	e.basePath = path
}

// SetTemplateFile sets the scene script template. An empty path
// selects the bundled default template.
func (e *Exporter) SetTemplateFile(path string) {
	e.templatePath = path
}

// SetOutputScriptFile sets the scene script filename generated by
// ExportScript.
func (e *Exporter) SetOutputScriptFile(name string) {
	e.scriptName = name
}

// SetOutputDataFilebase sets the name prefix of per-frame state files.
func (e *Exporter) SetOutputDataFilebase(name string) {
	e.dataFilebase = name
}

// SetPictureFilebase sets the name prefix of the pictures the renderer
// writes.
func (e *Exporter) SetPictureFilebase(name string) {
	e.picFilebase = name
}

// SetPictureSize sets the rendered picture size in pixels.
func (e *Exporter) SetPictureSize(width, height int) {
	e.width = width
	e.height = height
}

// SetAntialiasing configures renderer antialiasing, written to the
// render control file.
func (e *Exporter) SetAntialiasing(active bool, depth int, threshold float64) {
	e.antialias = active
	e.aaDepth = depth
	e.aaThreshold = threshold
}

// SetCamera places the default camera.
func (e *Exporter) SetCamera(location, aim geom.Vec3, angle float64, orthographic bool) {
	e.camLocation = location
	e.camAim = aim
	e.camAngle = angle
	e.camOrtho = orthographic
}

// SetLight places the default light source.
func (e *Exporter) SetLight(location geom.Vec3, color geom.Color, castShadows bool) {
	e.lightLocation = location
	e.lightColor = color
	e.lightShadows = castShadows
}

// SetBackground sets the scene background color.
func (e *Exporter) SetBackground(c geom.Color) {
	e.background = c
}

// SetAmbientLight sets the ambient light color.
func (e *Exporter) SetAmbientLight(c geom.Color) {
	e.ambient = c
}

// SetCustomCommands sets a free-form POV text block inserted once into
// the generated scene script.
func (e *Exporter) SetCustomCommands(text string) {
	e.customScript = text
}

// SetCustomDataCommands sets a free-form POV text block written into
// every per-frame state file.
func (e *Exporter) SetCustomDataCommands(text string) {
	e.customData = text
}

// SetFrameNumber overrides the frame number used by the next
// ExportData call.
func (e *Exporter) SetFrameNumber(n int) {
	e.frameNumber = n
}

// SetUseSingleAssetFile selects between one combined assets file for
// the whole session (the default) and re-embedding definitions into
// every state file. Per-frame embedding wastes disk space but allows
// assets whose appearance changes over time.
func (e *Exporter) SetUseSingleAssetFile(use bool) {
	e.singleAssetFile = use
}

// SetShowCOGs toggles center-of-gravity markers for the listed bodies.
func (e *Exporter) SetShowCOGs(show bool, size float64) {
	e.overlay.SetShowCOGs(show, size)
}

// SetShowFrames toggles reference frame markers for the listed items.
func (e *Exporter) SetShowFrames(show bool, size float64) {
	e.overlay.SetShowFrames(show, size)
}

// SetShowLinks toggles connection frame markers for the links of the
// attached system.
func (e *Exporter) SetShowLinks(show bool, size float64) {
	e.overlay.SetShowLinks(show, size)
}

// SetShowContacts toggles contact force symbols fed from the attached
// system's contact report.
func (e *Exporter) SetShowContacts(show bool, mode ContactSymbol, scale, width, maxSize float64, colormap bool, colormapStart, colormapEnd float64) {
	e.overlay.SetShowContacts(show, mode, scale, width, maxSize, colormap, colormapStart, colormapEnd)
}

// SetWireframeThickness sets the tube radius of wireframe mesh cages.
func (e *Exporter) SetWireframeThickness(t float64) {
	e.overlay.SetWireframeThickness(t)
}

// Add puts an item on the render list. Items without a visual model
// and items already listed are silently ignored. Callers should Remove
// items before retiring them from the simulation; an item whose model
// is withdrawn while listed is skipped at export time.
func (e *Exporter) Add(item scene.Item) {
	e.list.add(item)
}

// Remove takes an item off the render list. Removing an absent item is
// a no-op.
func (e *Exporter) Remove(item scene.Item) {
	e.list.remove(item)
}

// AddAll puts every item of the attached system on the render list.
// It is idempotent; items already listed are not duplicated.
func (e *Exporter) AddAll() {
	if e.sys == nil {
		return
	}
	for _, it := range e.sys.Items() {
		e.list.add(it)
	}
}

// RemoveAll clears the render list.
func (e *Exporter) RemoveAll() {
	e.list.removeAll()
}

// BindAll implements scene.Visualizer by adding every system item to
// the render list.
func (e *Exporter) BindAll() error {
	if e.sys == nil {
		return fmt.Errorf("%w: no system attached", ErrState)
	}
	e.AddAll()
	return nil
}

// BindItem implements scene.Visualizer by adding one item to the
// render list.
func (e *Exporter) BindItem(item scene.Item) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", ErrState)
	}
	e.Add(item)
	return nil
}

// ExportScript writes the render control file, the combined assets
// file (in single-asset-file mode), and the scene script generated
// from the template, all under the configured script name.
func (e *Exporter) ExportScript() error {
	return e.ExportScriptFile(e.scriptName)
}

// ExportScriptFile is ExportScript with an explicit script filename.
// The name sticks: later frame exports append new definitions to
// <name>.assets.
func (e *Exporter) ExportScriptFile(name string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.scriptName = name
	e.resolveListAssets()

	ini, err := e.renderINI(name)
	if err != nil {
		return err
	}
	if err := e.writeFile(filepath.Join(e.basePath, name+".ini"), ini); err != nil {
		return err
	}

	if e.singleAssetFile {
		if err := e.writeAssetsFile(name); err != nil {
			return err
		}
	}

	tpl, err := loadTemplate(e.templatePath)
	if err != nil {
		return err
	}
	script, unknown := substituteMarkers(tpl, e.markerTable(name))
	if len(unknown) > 0 {
		e.log.Warn("template markers without substitution left literal", zap.Strings("markers", unknown))
	}
	if err := e.writeFile(filepath.Join(e.basePath, name), []byte(script)); err != nil {
		return err
	}

	e.log.Info("scene script exported",
		zap.String("script", name),
		zap.Int("items", e.list.size()),
		zap.Int("assets", len(e.assets.all())),
		zap.String("session", e.session.String()),
	)
	return nil
}

// ExportData writes the state file for the current frame counter and
// advances the counter. Call once per simulation step, after stepping.
func (e *Exporter) ExportData() error {
	return e.ExportDataFrame(e.frameNumber)
}

// ExportDataFrame writes the state file for an explicit frame number.
// The counter continues after it: the next default export writes frame
// n+1.
func (e *Exporter) ExportDataFrame(n int) error {
	if err := e.ready(); err != nil {
		return err
	}
	name := fmt.Sprintf("%s%0*d.pov", e.dataFilebase, framePadding, n)
	path := filepath.Join(e.basePath, e.dataDir, name)
	if err := e.writeFrame(path, n); err != nil {
		return err
	}
	e.frames++
	e.frameNumber = n + 1
	e.log.Debug("frame state exported", zap.Int("frame", n), zap.String("path", path))
	return nil
}

// ExportDataFile writes the next frame's state to an explicit path
// instead of the derived one. The frame counter still advances.
func (e *Exporter) ExportDataFile(path string) error {
	if err := e.ready(); err != nil {
		return err
	}
	frame := e.frameNumber
	if err := e.writeFrame(path, frame); err != nil {
		return err
	}
	e.frames++
	e.frameNumber = frame + 1
	e.log.Debug("frame state exported", zap.Int("frame", frame), zap.String("path", path))
	return nil
}

func (e *Exporter) ready() error {
	if e.sys == nil {
		return fmt.Errorf("%w: no system attached", ErrState)
	}
	if e.basePath == "" {
		return fmt.Errorf("%w: base path not set", ErrState)
	}
	return nil
}

// resolveListAssets serializes the definitions of every shape and
// material referenced by the render list that has not been seen
// before.
func (e *Exporter) resolveListAssets() {
	for _, it := range e.list.members() {
		model := it.Model()
		if model == nil {
			continue
		}
		for _, inst := range model.Shapes() {
			if _, ok := e.assets.resolveShape(inst.Shape); !ok {
				e.warnShapeSkipped(inst.Shape)
				continue
			}
			for _, m := range inst.Shape.Materials() {
				e.assets.resolveMaterial(m)
			}
		}
	}
}

func (e *Exporter) warnShapeSkipped(s scene.Shape) {
	if e.assets.markSkipped(s.ID()) {
		e.log.Warn("shape yields no definition, skipping",
			zap.Uint64("shape", s.ID()),
			zap.String("kind", fmt.Sprintf("%T", s)),
		)
	}
}

// writeAssetsFile rewrites the combined assets file with every
// resolved definition and marks them flushed.
func (e *Exporter) writeAssetsFile(scriptName string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Shape and material definitions, session %s\n", e.session)
	for _, a := range e.assets.all() {
		b.WriteString(a.def)
	}
	if err := e.writeFile(filepath.Join(e.basePath, scriptName+".assets"), []byte(b.String())); err != nil {
		return err
	}
	e.assets.markAllFlushed()
	return nil
}

// appendNewAssets appends definitions resolved since the last flush to
// the combined assets file.
func (e *Exporter) appendNewAssets(scriptName string) error {
	pending := e.assets.unflushed()
	if len(pending) == 0 {
		return nil
	}
	path := filepath.Join(e.basePath, scriptName+".assets")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	for _, a := range pending {
		n, err := f.WriteString(a.def)
		e.bytes += int64(n)
		if err != nil {
			f.Close()
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		a.flushed = true
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// writeFrame builds one state file in memory and writes it with a
// single call, so a missing output directory leaves no partial file.
func (e *Exporter) writeFrame(path string, frame int) error {
	if e.singleAssetFile {
		e.resolveListAssets()
		if err := e.appendNewAssets(e.scriptName); err != nil {
			return err
		}
	}

	var defs, body strings.Builder
	emitted := make(map[string]bool)
	for _, it := range e.list.members() {
		model := it.Model()
		if model == nil {
			continue
		}
		world := it.Frame()
		for _, inst := range model.Shapes() {
			shapeSym, ok := e.frameShapeSymbol(inst.Shape, &defs, emitted)
			if !ok {
				continue
			}
			matSym := ""
			if mats := inst.Shape.Materials(); len(mats) > 0 {
				matSym = e.frameMaterialSymbol(mats[0], &defs, emitted)
			}
			body.WriteString(objectInstance(shapeSym, matSym, world.Mul(inst.Frame)))
		}
	}
	e.appendOverlays(&body)

	var b strings.Builder
	fmt.Fprintf(&b, "// Frame %0*d state, session %s\n", framePadding, frame, e.session)
	if e.customData != "" {
		b.WriteString(e.customData)
		if !strings.HasSuffix(e.customData, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString(defs.String())
	b.WriteString(body.String())
	return e.writeFile(path, []byte(b.String()))
}

// frameShapeSymbol returns the declare symbol for a shape. In
// per-frame embedding mode the definition is re-serialized into defs
// the first time this file references it.
func (e *Exporter) frameShapeSymbol(s scene.Shape, defs *strings.Builder, emitted map[string]bool) (string, bool) {
	if e.singleAssetFile {
		a, ok := e.assets.resolveShape(s)
		if !ok {
			e.warnShapeSkipped(s)
			return "", false
		}
		return a.symbol, true
	}
	sym := shapeSymbol(s.ID())
	if emitted[sym] {
		return sym, true
	}
	def, ok := shapeDef(sym, s)
	if !ok {
		e.warnShapeSkipped(s)
		return "", false
	}
	emitted[sym] = true
	defs.WriteString(def)
	return sym, true
}

// frameMaterialSymbol is the material counterpart of frameShapeSymbol.
func (e *Exporter) frameMaterialSymbol(m *scene.Material, defs *strings.Builder, emitted map[string]bool) string {
	if e.singleAssetFile {
		return e.assets.resolveMaterial(m).symbol
	}
	sym := materialSymbol(m.ID())
	if !emitted[sym] {
		emitted[sym] = true
		defs.WriteString(materialDef(sym, m))
	}
	return sym
}

// appendOverlays writes the enabled overlay symbols: COG markers and
// reference frames for listed items, connection frames for the
// system's links, and contact symbols from the system's current
// contact report.
func (e *Exporter) appendOverlays(b *strings.Builder) {
	if e.overlay.COGs.Show {
		for _, it := range e.list.members() {
			if body, ok := it.(*scene.Body); ok {
				b.WriteString(overlaySymbol("sym_cog", body.COGFrame(), e.overlay.COGs.Size))
			}
		}
	}
	if e.overlay.Frames.Show {
		for _, it := range e.list.members() {
			b.WriteString(overlaySymbol("sym_frame", it.Frame(), e.overlay.Frames.Size))
		}
	}
	if e.overlay.Links.Show {
		for _, it := range e.sys.Items() {
			if l, ok := it.(*scene.Link); ok {
				b.WriteString(overlaySymbol("sym_frame", l.LinkFrame(), e.overlay.Links.Size))
			}
		}
	}
	if e.overlay.Contacts.Show {
		e.sys.EachContact(func(c scene.Contact) {
			if sym, ok := contactSymbol(c, e.overlay.Contacts); ok {
				b.WriteString(sym)
			}
		})
	}
}

// markerTable builds the substitution table for the scene script
// template.
func (e *Exporter) markerTable(scriptName string) map[string]string {
	assetInclude := ""
	if e.singleAssetFile {
		assetInclude = fmt.Sprintf("#include %q", scriptName+".assets")
	}
	ortho := ""
	if e.camOrtho {
		ortho = "orthographic"
	}
	shadow := ""
	if !e.lightShadows {
		shadow = "shadowless"
	}
	aa := "off"
	if e.antialias {
		aa = "on"
	}
	return map[string]string{
		"picture_width":       strconv.Itoa(e.width),
		"picture_height":      strconv.Itoa(e.height),
		"antialias":           aa,
		"antialias_depth":     strconv.Itoa(e.aaDepth),
		"antialias_threshold": povFloat(e.aaThreshold),
		"camera_location":     povTriple(e.camLocation),
		"camera_aim":          povTriple(e.camAim),
		"camera_angle":        povFloat(e.camAngle),
		"camera_ortho":        ortho,
		"light_location":      povTriple(e.lightLocation),
		"light_color":         colorTriple(e.lightColor),
		"light_shadow":        shadow,
		"background_color":    colorTriple(e.background),
		"ambient_color":       colorTriple(e.ambient),
		"wireframe_thickness": povFloat(e.overlay.WireframeThickness),
		"custom_script":       e.customScript,
		"custom_data":         e.customData,
		"asset_include":       assetInclude,
		"data_path":           e.dataDir + "/" + e.dataFilebase,
		"frame_padding":       strconv.Itoa(framePadding),
	}
}

func (e *Exporter) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	e.files++
	e.bytes += int64(len(data))
	return nil
}
