package pxpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// TileLayer is one of a map's three fixed layer slots. It is either absent
// (no grid at all, the layer's "empty" state) or a rectangular grid of byte
// tile indices stored row-major. A layer is resized in place and is never
// replaced as an object; shrinking either dimension to zero collapses it back
// to absent.
type TileLayer struct {
	width, height int
	tiles         []byte // nil when the layer is absent
}

// NewTileLayer returns an absent layer.
func NewTileLayer() *TileLayer { return &TileLayer{} }

// NewTileLayerFromRows builds a present layer from row-major rows of tile
// values. Zero rows (or zero-width rows) produce an absent layer. Every row
// must have the same length, each dimension must fit in MaxLayerDim, and
// every tile value must be in 0-255.
func NewTileLayerFromRows(rows [][]int) (*TileLayer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &TileLayer{}, nil
	}
	height := len(rows)
	width := len(rows[0])
	if width > MaxLayerDim || height > MaxLayerDim {
		return nil, fmt.Errorf("%w: %dx%d, max %dx%d", ErrDimensionOverflow, width, height, MaxLayerDim, MaxLayerDim)
	}
	tiles := make([]byte, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrArityMismatch, y, len(row), width)
		}
		for x, v := range row {
			if v < 0 || v > 0xFF {
				return nil, fmt.Errorf("%w: tile %d at (%d, %d)", ErrTileValueOutOfRange, v, x, y)
			}
			tiles[y*width+x] = byte(v)
		}
	}
	return &TileLayer{width: width, height: height, tiles: tiles}, nil
}

// Present reports whether the layer holds a grid.
func (l *TileLayer) Present() bool { return l.tiles != nil }

func (l *TileLayer) Width() int  { return l.width }
func (l *TileLayer) Height() int { return l.height }

// Tiles returns a row-major copy of the grid, or nil for an absent layer.
func (l *TileLayer) Tiles() [][]int {
	if l.tiles == nil {
		return nil
	}
	rows := make([][]int, l.height)
	for y := 0; y < l.height; y++ {
		row := make([]int, l.width)
		for x := 0; x < l.width; x++ {
			row[x] = int(l.tiles[y*l.width+x])
		}
		rows[y] = row
	}
	return rows
}

// Tile returns the tile index at (x, y).
func (l *TileLayer) Tile(x, y int) (int, error) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return 0, fmt.Errorf("%w: tile (%d, %d) in %dx%d layer", ErrIndexOutOfBounds, x, y, l.width, l.height)
	}
	return int(l.tiles[y*l.width+x]), nil
}

// SetTile stores a tile index at (x, y). The value must be in 0-255 and the
// coordinates must fall inside the grid.
func (l *TileLayer) SetTile(x, y, tile int) error {
	if tile < 0 || tile > 0xFF {
		return fmt.Errorf("%w: tile %d at (%d, %d), want 0-255", ErrTileValueOutOfRange, tile, x, y)
	}
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return fmt.Errorf("%w: tile (%d, %d) in %dx%d layer", ErrIndexOutOfBounds, x, y, l.width, l.height)
	}
	l.tiles[y*l.width+x] = byte(tile)
	return nil
}

// Resize changes the layer's dimensions in place. Overlapping tiles keep
// their values, anchored at the top-left; anything outside the new bounds is
// discarded. A zero width or height collapses the layer to absent, and
// resizing to the current dimensions leaves the grid untouched.
func (l *TileLayer) Resize(width, height int) error {
	if width < 0 || height < 0 || width > MaxLayerDim || height > MaxLayerDim {
		return fmt.Errorf("%w: %dx%d, want 0-%d each", ErrDimensionOverflow, width, height, MaxLayerDim)
	}
	if width == 0 || height == 0 {
		l.width, l.height, l.tiles = 0, 0, nil
		return nil
	}
	if width == l.width && height == l.height {
		return nil
	}
	tiles := make([]byte, width*height)
	yBound := min(height, l.height)
	xBound := min(width, l.width)
	for y := 0; y < yBound; y++ {
		copy(tiles[y*width:y*width+xBound], l.tiles[y*l.width:y*l.width+xBound])
	}
	l.width, l.height, l.tiles = width, height, tiles
	return nil
}

// parseLayer reads one tile layer record from r. slot only labels the error
// when the layer magic does not match.
func parseLayer(r io.Reader, slot int) (*TileLayer, error) {
	magic := make([]byte, len(layerMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, layerMagic) {
		return nil, fmt.Errorf("%w: layer %d", ErrBadLayerMagic, slot)
	}
	width, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	height, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	if int(width)*int(height) == 0 {
		// Absent layer: nothing follows the dimensions, not even the
		// reserved byte.
		return &TileLayer{}, nil
	}
	if _, err := readByte(r); err != nil { // reserved, always zero
		return nil, err
	}
	tiles := make([]byte, int(width)*int(height))
	if _, err := io.ReadFull(r, tiles); err != nil {
		return nil, err
	}
	return &TileLayer{width: int(width), height: int(height), tiles: tiles}, nil
}

func (l *TileLayer) writeTo(w io.Writer) error {
	if _, err := w.Write(layerMagic); err != nil {
		return err
	}
	if l.tiles == nil {
		if err := writeUint16(w, 0); err != nil {
			return err
		}
		return writeUint16(w, 0)
	}
	if err := writeUint16(w, uint16(l.width)); err != nil {
		return err
	}
	if err := writeUint16(w, uint16(l.height)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	_, err := w.Write(l.tiles)
	return err
}

func (l *TileLayer) String() string {
	if l.tiles == nil {
		return "\t(absent)\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\tWidth: %d\n\tHeight: %d\n", l.width, l.height)
	for y := 0; y < l.height; y++ {
		b.WriteByte('\t')
		for x := 0; x < l.width; x++ {
			fmt.Fprintf(&b, "%02X ", l.tiles[y*l.width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
