package pxpack

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Decode reads one PXPACK map from r.
//
// The decoding process:
//  1. Reads and verifies the fixed header magic
//  2. Parses the head (description, map references, spritesheet, reserved
//     bytes, background color, per-layer settings)
//  3. Parses the three tile layers in slot order
//  4. Reads the uint16 entity count and that many entity records
//
// Every parsed field passes through the same validation as the model's
// setters; any violation or short read aborts the decode and no map is
// returned. A magic mismatch is reported as ErrBadHeaderMagic before any
// further bytes are consumed.
//
// The returned map has no path; use Open for file-backed maps.
func Decode(r io.Reader) (*Map, error) {
	magic := make([]byte, len(headerMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, headerMagic) {
		return nil, ErrBadHeaderMagic
	}

	head, err := parseHead(r)
	if err != nil {
		return nil, err
	}

	m := &Map{head: head}
	for i := range m.layers {
		if m.layers[i], err = parseLayer(r, i); err != nil {
			return nil, err
		}
	}

	count, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		m.entities = make([]*Entity, 0, count)
		for i := 0; i < int(count); i++ {
			e, err := parseEntity(r)
			if err != nil {
				return nil, err
			}
			m.entities = append(m.entities, e)
		}
	}
	return m, nil
}

// Open loads the PXPACK map at path, which must end in Extension.
//
// A missing file is not an error: Open returns a new map bound to path with
// the default head (minimal tileset reference, opaque black background,
// visible layers), three absent tile layers, and no entities. Saving it
// creates the file.
func Open(path string) (*Map, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, fmt.Errorf("%w: path %q does not end in %q", ErrFieldConstraint, path, Extension)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if errors.Is(err, fs.ErrNotExist) {
		m := &Map{path: abs, head: defaultHead()}
		for i := range m.layers {
			m.layers[i] = NewTileLayer()
		}
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	m.path = abs
	return m, nil
}
