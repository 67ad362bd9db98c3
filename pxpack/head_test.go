package pxpack

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func validHead(t *testing.T) *Head {
	t.Helper()
	h, err := NewHead("two rooms, one boss",
		[]string{"field1", "field2", "", "boss"},
		"chr00",
		[]byte{0, 1, 2, 3, 4},
		color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF},
		[]string{"mpt00", "mpt01", ""},
		[]byte{2, 2, 0},
		[]byte{0, 1, 9})
	if err != nil {
		t.Fatalf("NewHead: %v", err)
	}
	return h
}

func TestNewHeadArity(t *testing.T) {
	mapNames := []string{"", "", "", ""}
	reserved := []byte{0, 0, 0, 0, 0}
	tilesets := []string{"mpt00", "", ""}
	vis := []byte{2, 2, 2}
	scroll := []byte{0, 0, 0}
	bg := color.NRGBA{A: 0xFF}

	cases := []struct {
		name string
		err  error
	}{
		{"mapNames", func() error {
			_, err := NewHead("", []string{"", ""}, "", reserved, bg, tilesets, vis, scroll)
			return err
		}()},
		{"reserved", func() error {
			_, err := NewHead("", mapNames, "", []byte{0}, bg, tilesets, vis, scroll)
			return err
		}()},
		{"tilesets", func() error {
			_, err := NewHead("", mapNames, "", reserved, bg, []string{"mpt00"}, vis, scroll)
			return err
		}()},
		{"visibility", func() error {
			_, err := NewHead("", mapNames, "", reserved, bg, tilesets, []byte{2}, scroll)
			return err
		}()},
		{"scroll", func() error {
			_, err := NewHead("", mapNames, "", reserved, bg, tilesets, vis, []byte{0, 0, 0, 0})
			return err
		}()},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, ErrArityMismatch) {
			t.Fatalf("%s: expected ErrArityMismatch, got %v", tc.name, tc.err)
		}
	}
}

func TestSetDescriptionBoundary(t *testing.T) {
	h := validHead(t)
	exact := strings.Repeat("d", DescriptionMaxLen)
	if err := h.SetDescription(exact); err != nil {
		t.Fatalf("%d-byte description rejected: %v", DescriptionMaxLen, err)
	}
	if err := h.SetDescription(exact + "d"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("expected ErrFieldConstraint, got %v", err)
	}
	if h.Description() != exact {
		t.Fatal("failed setter mutated the field")
	}
}

func TestSetDescriptionAllowsSpaces(t *testing.T) {
	h := validHead(t)
	if err := h.SetDescription("a map with spaces"); err != nil {
		t.Fatalf("SetDescription: %v", err)
	}
}

func TestSpaceForbiddenOutsideDescription(t *testing.T) {
	h := validHead(t)
	if err := h.SetMapName(0, "no pe"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("map name: expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetSpritesheetName("no pe"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("spritesheet: expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetTilesetName(1, "no pe"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("tileset: expected ErrFieldConstraint, got %v", err)
	}
}

func TestFirstTilesetMandatory(t *testing.T) {
	h := validHead(t)
	if err := h.SetTilesetName(0, ""); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetTilesetName(1, ""); err != nil {
		t.Fatalf("slot 1 empty: %v", err)
	}
	if err := h.SetTilesetName(2, ""); err != nil {
		t.Fatalf("slot 2 empty: %v", err)
	}
}

func TestVisibilityAndScrollBounds(t *testing.T) {
	h := validHead(t)
	if err := h.SetVisibility(0, MaxVisibility); err != nil {
		t.Fatalf("visibility %d rejected: %v", MaxVisibility, err)
	}
	if err := h.SetVisibility(0, MaxVisibility+1); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetScrollType(2, MaxScrollType); err != nil {
		t.Fatalf("scroll %d rejected: %v", MaxScrollType, err)
	}
	if err := h.SetScrollType(2, MaxScrollType+1); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("expected ErrFieldConstraint, got %v", err)
	}
}

func TestHeadSlotRange(t *testing.T) {
	h := validHead(t)
	if err := h.SetMapName(NumRefMaps, "x"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("map name slot: expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetTilesetName(-1, "x"); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("tileset slot: expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetVisibility(NumLayers, 2); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("visibility slot: expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetReservedByte(numReservedHeadBytes, 0); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("reserved slot: expected ErrFieldConstraint, got %v", err)
	}
}

func TestSetBackgroundColorOpacity(t *testing.T) {
	h := validHead(t)
	if err := h.SetBackgroundColor(color.NRGBA{R: 1, G: 2, B: 3, A: 0x80}); !errors.Is(err, ErrFieldConstraint) {
		t.Fatalf("expected ErrFieldConstraint, got %v", err)
	}
	if err := h.SetBackgroundColor(color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}); err != nil {
		t.Fatalf("opaque color rejected: %v", err)
	}
}

func TestHeadGettersReturnCopies(t *testing.T) {
	h := validHead(t)
	names := h.MapNames()
	names[0] = "mutated"
	if h.MapNames()[0] == "mutated" {
		t.Fatal("MapNames leaked internal state")
	}
	reserved := h.Reserved()
	reserved[0] = 0xFF
	if h.Reserved()[0] == 0xFF {
		t.Fatal("Reserved leaked internal state")
	}
}

func TestDefaultHead(t *testing.T) {
	h := defaultHead()
	if h.TilesetNames()[0] != "mpt00" {
		t.Fatalf("default tileset: %q", h.TilesetNames()[0])
	}
	if h.VisibilityTypes() != [NumLayers]byte{2, 2, 2} {
		t.Fatalf("default visibility: %v", h.VisibilityTypes())
	}
	if h.ScrollTypes() != [NumLayers]byte{0, 0, 1} {
		t.Fatalf("default scroll: %v", h.ScrollTypes())
	}
	if got := h.BackgroundColor(); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 0xFF {
		t.Fatalf("default background: %v", got)
	}
}
