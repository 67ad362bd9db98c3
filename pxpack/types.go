package pxpack

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format constants. Every value here is dictated by the PXPACK wire layout
// and is not caller-tunable.
const (
	// NumLayers is the number of tile layer slots in every map.
	NumLayers = 3
	// NumRefMaps is the number of referenced map name slots in the head.
	NumRefMaps = 4

	// Maximum encoded (Shift-JIS) byte lengths of the string fields.
	DescriptionMaxLen = 31
	FilenameMaxLen    = 15
	EntityNameMaxLen  = 15

	MaxVisibility = 32
	MaxScrollType = 9

	// MaxLayerDim bounds tile layer width and height, each stored as a
	// uint16 on the wire.
	MaxLayerDim = 0xFFFF

	// Extension is the file extension of PXPACK map files.
	Extension = ".pxpack"

	numReservedHeadBytes = 5
	entityRecordSize     = 9
)

// headerMagic identifies a PXPACK map file; layerMagic opens each of the
// three tile layer records. Both are raw bytes, not length-prefixed strings.
var (
	headerMagic = []byte("PXPACK121127a**\x00")
	layerMagic  = []byte("pxMAP01\x00")
)

// Map is the in-memory model of one PXPACK map file. It owns exactly one
// Head, three slot-indexed tile layers (the slot order is meaningful), and an
// ordered entity list, plus the filesystem path it loads from and saves to.
type Map struct {
	path string

	head     *Head
	layers   [NumLayers]*TileLayer
	entities []*Entity
}

// Path returns the absolute path of the backing file.
func (m *Map) Path() string { return m.path }

// Name returns the base filename without the map extension.
func (m *Map) Name() string {
	return strings.TrimSuffix(filepath.Base(m.path), Extension)
}

// Head returns the map's head. The head is shared, not copied; edit it
// through its setters.
func (m *Map) Head() *Head { return m.head }

// Layer returns the tile layer at the given slot.
func (m *Map) Layer(slot int) (*TileLayer, error) {
	if slot < 0 || slot >= NumLayers {
		return nil, fmt.Errorf("%w: layer slot %d", ErrIndexOutOfBounds, slot)
	}
	return m.layers[slot], nil
}

// Layers returns the three layer slots in order. The array is a copy; the
// layers themselves are shared so callers can edit them in place.
func (m *Map) Layers() [NumLayers]*TileLayer { return m.layers }

// Entities returns the entity list in file order. The slice is a copy; the
// entities themselves are shared.
func (m *Map) Entities() []*Entity {
	out := make([]*Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// EntityCount returns the number of entities in the map.
func (m *Map) EntityCount() int { return len(m.entities) }

// AddEntity appends e to the entity list.
func (m *Map) AddEntity(e *Entity) error {
	if e == nil {
		return fmt.Errorf("%w: nil entity", ErrFieldConstraint)
	}
	m.entities = append(m.entities, e)
	return nil
}

// RemoveEntity deletes the entity at index i, preserving list order.
func (m *Map) RemoveEntity(i int) error {
	if i < 0 || i >= len(m.entities) {
		return fmt.Errorf("%w: entity %d of %d", ErrIndexOutOfBounds, i, len(m.entities))
	}
	m.entities = append(m.entities[:i], m.entities[i+1:]...)
	return nil
}

func (m *Map) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", m.Name())
	b.WriteString(m.head.String())
	for i, l := range m.layers {
		fmt.Fprintf(&b, "Layer %d:\n%s", i, l)
	}
	for i, e := range m.entities {
		fmt.Fprintf(&b, "Entity %d:\n%s", i, e)
	}
	return b.String()
}
