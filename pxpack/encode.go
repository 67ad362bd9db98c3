package pxpack

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encode writes m to w in the PXPACK layout: header magic, head, the three
// tile layers in slot order, then the uint16 entity count and every entity
// record in list order. Byte lengths are re-derived from the current field
// values, so an unmodified decoded map re-encodes byte-identically.
//
// The entity count is emitted as uint16(len); the 65535 ceiling is implied by
// the encoding width and not separately enforced.
func Encode(w io.Writer, m *Map) error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrFieldConstraint)
	}
	if _, err := w.Write(headerMagic); err != nil {
		return err
	}
	if err := m.head.writeTo(w); err != nil {
		return err
	}
	for _, l := range m.layers {
		if err := l.writeTo(w); err != nil {
			return err
		}
	}
	if err := writeUint16(w, uint16(len(m.entities))); err != nil {
		return err
	}
	for _, e := range m.entities {
		if err := e.writeTo(w); err != nil {
			return err
		}
	}
	return nil
}

// Save re-serializes the whole map and overwrites its backing file with
// truncate-then-write semantics. The map is encoded to memory first, so an
// encode failure leaves the previous file contents intact.
func (m *Map) Save() error {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return err
	}
	return os.WriteFile(m.path, buf.Bytes(), 0o644)
}

// Rename moves the backing file to base + Extension in the same directory and
// updates the map's stored path. base is validated against the filename
// length constraint before any filesystem mutation.
func (m *Map) Rename(base string) error {
	n, err := encodedLen(base)
	if err != nil {
		return err
	}
	if n > FilenameMaxLen {
		return fmt.Errorf("%w: new name %q is %d bytes, max %d", ErrFieldConstraint, base, n, FilenameMaxLen)
	}
	dst := filepath.Join(filepath.Dir(m.path), base+Extension)
	if err := os.Rename(m.path, dst); err != nil {
		return err
	}
	m.path = dst
	return nil
}
