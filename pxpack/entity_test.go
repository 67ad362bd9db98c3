package pxpack

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestNewEntityValidation(t *testing.T) {
	if _, err := NewEntity(0, 1, 0, 0, 0, []byte{1}, "npc"); !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("data arity: expected ErrArityMismatch, got %v", err)
	}
	if _, err := NewEntity(0, 256, 0, 0, 0, []byte{0, 0}, "npc"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("type: expected ErrFieldConstraint, got %v", err)
	}
	if _, err := NewEntity(0, 1, 0, -1, 0, []byte{0, 0}, "npc"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("x: expected ErrFieldConstraint, got %v", err)
	}
	if _, err := NewEntity(0, 1, 0, 0, 0x10000, []byte{0, 0}, "npc"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("y: expected ErrFieldConstraint, got %v", err)
	}
	if _, err := NewEntity(0, 1, 0, 0, 0, []byte{0, 0}, "np c"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("name space: expected ErrFieldConstraint, got %v", err)
	}
	if _, err := NewEntity(0, 1, 0, 0, 0, []byte{0, 0}, "0123456789abcdef"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("name length: expected ErrFieldConstraint, got %v", err)
	}
}

func TestEntitySetters(t *testing.T) {
	e, err := NewEntity(0, 1, 0, 0, 0, []byte{0, 0}, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetCoordinates(0xFFFF, 0xFFFF); err != nil {
		t.Fatalf("max coordinates rejected: %v", err)
	}
	if err := e.SetDataByte(2, 1); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("data slot: expected ErrFieldConstraint, got %v", err)
	}
	if err := e.SetDataByte(1, 0xAB); err != nil {
		t.Fatal(err)
	}
	if e.Data() != [2]byte{0, 0xAB} {
		t.Fatalf("data: %v", e.Data())
	}
	e.SetFlag(0x7F)
	e.SetUnknownByte(0x11)
	if e.Flag() != 0x7F || e.UnknownByte() != 0x11 {
		t.Fatal("flag/unknown byte setters")
	}
}

func TestEntityWireRoundTrip(t *testing.T) {
	in, err := NewEntity(0x01, 42, 0x05, 300, 40000, []byte{0xDE, 0xAD}, "kani")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := in.writeTo(&buf); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	if buf.Len() != entityRecordSize+1+len("kani") {
		t.Fatalf("wire size %d", buf.Len())
	}
	out, err := parseEntity(&buf)
	if err != nil {
		t.Fatalf("parseEntity: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("entity mismatch:\n%#v\n%#v", in, out)
	}
}

func TestParseEntityNameWithSpace(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, entityRecordSize))
	buf.WriteByte(3)
	buf.WriteString("a b")
	_, err := parseEntity(&buf)
	if !errors.Is(err, ErrIllegalCharacter) {
		t.Fatalf("expected ErrIllegalCharacter, got %v", err)
	}
}
