package pxpack

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// stringKind names what a length-prefixed string field is for. The kind picks
// the field's maximum encoded length and whether spaces are tolerated (only
// the description permits them), and labels parse errors.
type stringKind int

const (
	kindDescription stringKind = iota
	kindMapName
	kindSpritesheetName
	kindTilesetName
	kindEntityName
)

func (k stringKind) String() string {
	switch k {
	case kindDescription:
		return "description"
	case kindMapName:
		return "map name"
	case kindSpritesheetName:
		return "spritesheet name"
	case kindTilesetName:
		return "tileset name"
	case kindEntityName:
		return "entity name"
	default:
		return "string"
	}
}

func (k stringKind) maxLen() int {
	if k == kindDescription {
		return DescriptionMaxLen
	}
	return FilenameMaxLen
}

// encodeString converts s to its Shift-JIS wire bytes. Runes outside the
// Shift-JIS repertoire are an error, never silently substituted.
func encodeString(s string) ([]byte, error) {
	b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not representable in Shift-JIS", ErrIllegalCharacter, s)
	}
	return b, nil
}

func decodeString(b []byte) (string, error) {
	s, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: invalid Shift-JIS sequence", ErrIllegalCharacter)
	}
	return string(s), nil
}

// encodedLen returns the Shift-JIS byte length of s, the length every
// string-field constraint in the format is defined against.
func encodedLen(s string) (int, error) {
	b, err := encodeString(s)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// validateName enforces a field mutator's string constraints: encodable,
// within the kind's max encoded length, and space-free unless the kind is the
// free-form description.
func validateName(s string, kind stringKind) error {
	n, err := encodedLen(s)
	if err != nil {
		return err
	}
	if n > kind.maxLen() {
		return fmt.Errorf("%w: %s %q is %d bytes, max %d", ErrFieldConstraint, kind, s, n, kind.maxLen())
	}
	if kind != kindDescription && strings.Contains(s, " ") {
		return fmt.Errorf("%w: %s %q contains a space", ErrFieldConstraint, kind, s)
	}
	return nil
}

// readString reads one length byte and that many Shift-JIS bytes from r.
func readString(r io.Reader, kind stringKind) (string, error) {
	var lenBuf [1]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := int(lenBuf[0])
	if n > kind.maxLen() {
		return "", fmt.Errorf("%w: %s declares %d bytes, max %d", ErrStringTooLong, kind, n, kind.maxLen())
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", err
	}
	s, err := decodeString(raw)
	if err != nil {
		return "", err
	}
	if kind != kindDescription && strings.Contains(s, " ") {
		return "", fmt.Errorf("%w: %s contains a space", ErrIllegalCharacter, kind)
	}
	return s, nil
}

// writeString emits one length byte followed by the Shift-JIS bytes of s.
// The encoded length is re-checked against maxLen before anything is written,
// so a value that somehow bypassed its field's setter cannot produce a
// corrupt record.
func writeString(w io.Writer, s string, maxLen int) error {
	raw, err := encodeString(s)
	if err != nil {
		return err
	}
	if len(raw) > maxLen {
		return fmt.Errorf("%w: %q encodes to %d bytes, max %d", ErrStringTooLong, s, len(raw), maxLen)
	}
	if _, err := w.Write([]byte{byte(len(raw))}); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	_, err = w.Write(raw)
	return err
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
