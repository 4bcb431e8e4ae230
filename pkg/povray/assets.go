package povray

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/twmb/murmur3"

	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

// asset is one deduplicated definition: the POV declare symbol, its
// serialized text, and whether it already reached the combined assets
// file.
type asset struct {
	symbol  string
	def     string
	flushed bool
}

// assetStore caches serialized definitions by object identity for the
// lifetime of an export session. Each distinct shape or material
// identity is serialized at most once; resolutions survive failed
// frame writes.
type assetStore struct {
	shapes    map[uint64]*asset
	materials map[uint64]*asset
	// order records resolution order for stable combined-file output.
	order []*asset
	// skipped remembers identities that produced no definition, so
	// they are reported once rather than on every export.
	skipped map[uint64]bool
}

func newAssetStore() *assetStore {
	return &assetStore{
		shapes:    make(map[uint64]*asset),
		materials: make(map[uint64]*asset),
		skipped:   make(map[uint64]bool),
	}
}

// identityDigest derives the stable hash behind a declare symbol. The
// kind salt keeps shape and material symbols distinct even for equal
// identity values.
func identityDigest(kind string, id uint64) string {
	h := murmur3.New64()
	io.WriteString(h, kind)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	h.Write(buf[:])
	return strconv.FormatUint(h.Sum64(), 16)
}

func shapeSymbol(id uint64) string {
	return "sh_" + identityDigest("shape", id)
}

func materialSymbol(id uint64) string {
	return "m_" + identityDigest("material", id)
}

// resolveShape returns the asset registered for the shape's identity,
// serializing it first if this is the first sight. ok is false for
// shapes that produce no definition.
func (st *assetStore) resolveShape(s scene.Shape) (*asset, bool) {
	if a, ok := st.shapes[s.ID()]; ok {
		return a, true
	}
	if st.skipped[s.ID()] {
		return nil, false
	}
	sym := shapeSymbol(s.ID())
	def, ok := shapeDef(sym, s)
	if !ok {
		return nil, false
	}
	a := &asset{symbol: sym, def: def}
	st.shapes[s.ID()] = a
	st.order = append(st.order, a)
	return a, true
}

// resolveMaterial is the material counterpart of resolveShape.
func (st *assetStore) resolveMaterial(m *scene.Material) *asset {
	if a, ok := st.materials[m.ID()]; ok {
		return a
	}
	sym := materialSymbol(m.ID())
	a := &asset{symbol: sym, def: materialDef(sym, m)}
	st.materials[m.ID()] = a
	st.order = append(st.order, a)
	return a
}

// markSkipped records an identity that yields no definition. It
// returns true the first time, so the caller can warn once.
func (st *assetStore) markSkipped(id uint64) bool {
	if st.skipped[id] {
		return false
	}
	st.skipped[id] = true
	return true
}

// all returns every resolved asset in resolution order.
func (st *assetStore) all() []*asset {
	return st.order
}

// unflushed returns the resolved assets that have not reached the
// combined assets file yet, in resolution order.
func (st *assetStore) unflushed() []*asset {
	var out []*asset
	for _, a := range st.order {
		if !a.flushed {
			out = append(out, a)
		}
	}
	return out
}

// markAllFlushed flags every resolved asset as written to the combined
// assets file.
func (st *assetStore) markAllFlushed() {
	for _, a := range st.order {
		a.flushed = true
	}
}
