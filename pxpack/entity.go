package pxpack

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Entity is one placed object record: a flag byte, a type in 0-255, one
// opaque byte, 16-bit x/y coordinates, two opaque data bytes, and a name.
// Entities live in the map's ordered list; their order is the file order and
// carries no other meaning.
type Entity struct {
	flag    byte
	typ     int
	unknown byte
	x, y    int
	data    [2]byte
	name    string
}

// NewEntity validates and assembles an entity. data must hold exactly the two
// opaque bytes of the record.
func NewEntity(flag byte, typ int, unknown byte, x, y int, data []byte, name string) (*Entity, error) {
	if len(data) != 2 {
		return nil, fmt.Errorf("%w: got %d entity data bytes, want 2", ErrArityMismatch, len(data))
	}
	e := &Entity{flag: flag, unknown: unknown}
	if err := e.SetType(typ); err != nil {
		return nil, err
	}
	if err := e.SetCoordinates(x, y); err != nil {
		return nil, err
	}
	copy(e.data[:], data)
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entity) Flag() byte        { return e.flag }
func (e *Entity) Type() int         { return e.typ }
func (e *Entity) UnknownByte() byte { return e.unknown }
func (e *Entity) X() int            { return e.x }
func (e *Entity) Y() int            { return e.y }
func (e *Entity) Data() [2]byte     { return e.data }
func (e *Entity) Name() string      { return e.name }

// SetFlag stores the flag byte; any value is legal.
func (e *Entity) SetFlag(flag byte) { e.flag = flag }

func (e *Entity) SetType(typ int) error {
	if typ < 0 || typ > 0xFF {
		return fmt.Errorf("%w: entity type %d, want 0-255", ErrFieldConstraint, typ)
	}
	e.typ = typ
	return nil
}

// SetUnknownByte stores the opaque byte between type and position.
func (e *Entity) SetUnknownByte(b byte) { e.unknown = b }

func (e *Entity) SetX(x int) error {
	if x < 0 || x > 0xFFFF {
		return fmt.Errorf("%w: entity x %d, want 0-65535", ErrFieldConstraint, x)
	}
	e.x = x
	return nil
}

func (e *Entity) SetY(y int) error {
	if y < 0 || y > 0xFFFF {
		return fmt.Errorf("%w: entity y %d, want 0-65535", ErrFieldConstraint, y)
	}
	e.y = y
	return nil
}

func (e *Entity) SetCoordinates(x, y int) error {
	if err := e.SetX(x); err != nil {
		return err
	}
	return e.SetY(y)
}

// SetDataByte stores one of the two opaque data bytes.
func (e *Entity) SetDataByte(index int, b byte) error {
	if index < 0 || index >= len(e.data) {
		return fmt.Errorf("%w: entity data slot %d, want 0-1", ErrFieldConstraint, index)
	}
	e.data[index] = b
	return nil
}

func (e *Entity) SetName(name string) error {
	if err := validateName(name, kindEntityName); err != nil {
		return err
	}
	e.name = name
	return nil
}

// parseEntity reads the fixed 9-byte record and the trailing name string.
func parseEntity(r io.Reader) (*Entity, error) {
	var rec [entityRecordSize]byte
	if _, err := io.ReadFull(r, rec[:]); err != nil {
		return nil, err
	}
	name, err := readString(r, kindEntityName)
	if err != nil {
		return nil, err
	}
	return NewEntity(rec[0], int(rec[1]), rec[2],
		int(binary.LittleEndian.Uint16(rec[3:5])),
		int(binary.LittleEndian.Uint16(rec[5:7])),
		rec[7:9], name)
}

func (e *Entity) writeTo(w io.Writer) error {
	var rec [entityRecordSize]byte
	rec[0] = e.flag
	rec[1] = byte(e.typ)
	rec[2] = e.unknown
	binary.LittleEndian.PutUint16(rec[3:5], uint16(e.x))
	binary.LittleEndian.PutUint16(rec[5:7], uint16(e.y))
	copy(rec[7:9], e.data[:])
	if _, err := w.Write(rec[:]); err != nil {
		return err
	}
	return writeString(w, e.name, EntityNameMaxLen)
}

func (e *Entity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\tFlag: %02X\n\tType: %d\n\tUnknown Byte: %02X\n", e.flag, e.typ, e.unknown)
	fmt.Fprintf(&b, "\tX: %d\n\tY: %d\n\tData: % 02X\n\tName: %s\n", e.x, e.y, e.data[:], e.name)
	return b.String()
}
