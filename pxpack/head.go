package pxpack

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// Head is the fixed-shape metadata block at the front of every map file: the
// description, the four referenced map names, the spritesheet name, five
// reserved bytes, the background color, and the per-layer tileset name,
// visibility byte, and scroll byte.
//
// Fields are mutated only through the setters, which enforce the format's
// constraints at the point of assignment, and the getters return value
// copies, so a Head can never hold an invalid field.
type Head struct {
	description     string
	mapNames        [NumRefMaps]string
	spritesheetName string
	reserved        [numReservedHeadBytes]byte
	bgColor         color.NRGBA
	tilesetNames    [NumLayers]string
	visibility      [NumLayers]byte
	scroll          [NumLayers]byte
}

// NewHead builds a Head from parsed or caller-supplied fields. The slice
// arguments must have exactly NumRefMaps map names, five reserved bytes, and
// NumLayers tileset names, visibility bytes, and scroll bytes; every field
// then passes through its setter, so all per-field constraints apply.
func NewHead(description string, mapNames []string, spritesheetName string, reserved []byte,
	bgColor color.NRGBA, tilesetNames []string, visibility, scroll []byte) (*Head, error) {
	if len(mapNames) != NumRefMaps {
		return nil, fmt.Errorf("%w: got %d map names, want %d", ErrArityMismatch, len(mapNames), NumRefMaps)
	}
	if len(reserved) != numReservedHeadBytes {
		return nil, fmt.Errorf("%w: got %d reserved bytes, want %d", ErrArityMismatch, len(reserved), numReservedHeadBytes)
	}
	if len(tilesetNames) != NumLayers {
		return nil, fmt.Errorf("%w: got %d tileset names, want %d", ErrArityMismatch, len(tilesetNames), NumLayers)
	}
	if len(visibility) != NumLayers {
		return nil, fmt.Errorf("%w: got %d visibility bytes, want %d", ErrArityMismatch, len(visibility), NumLayers)
	}
	if len(scroll) != NumLayers {
		return nil, fmt.Errorf("%w: got %d scroll bytes, want %d", ErrArityMismatch, len(scroll), NumLayers)
	}

	h := &Head{}
	if err := h.SetDescription(description); err != nil {
		return nil, err
	}
	for i, name := range mapNames {
		if err := h.SetMapName(i, name); err != nil {
			return nil, err
		}
	}
	if err := h.SetSpritesheetName(spritesheetName); err != nil {
		return nil, err
	}
	copy(h.reserved[:], reserved)
	if err := h.SetBackgroundColor(bgColor); err != nil {
		return nil, err
	}
	for i, name := range tilesetNames {
		if err := h.SetTilesetName(i, name); err != nil {
			return nil, err
		}
	}
	for i, v := range visibility {
		if err := h.SetVisibility(i, v); err != nil {
			return nil, err
		}
	}
	for i, s := range scroll {
		if err := h.SetScrollType(i, s); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// defaultHead is the head of a freshly created map: opaque black background,
// the minimal required tileset in slot 0, visible layers, and the scroll
// types Kero Blaster's own new maps use.
func defaultHead() *Head {
	h, err := NewHead("", make([]string, NumRefMaps), "", make([]byte, numReservedHeadBytes),
		color.NRGBA{A: 0xFF}, []string{"mpt00", "", ""}, []byte{2, 2, 2}, []byte{0, 0, 1})
	if err != nil {
		panic(err) // the defaults satisfy every field constraint
	}
	return h
}

func (h *Head) Description() string { return h.description }

func (h *Head) MapNames() [NumRefMaps]string { return h.mapNames }

func (h *Head) SpritesheetName() string { return h.spritesheetName }

func (h *Head) Reserved() [numReservedHeadBytes]byte { return h.reserved }

func (h *Head) BackgroundColor() color.NRGBA { return h.bgColor }

func (h *Head) TilesetNames() [NumLayers]string { return h.tilesetNames }

func (h *Head) VisibilityTypes() [NumLayers]byte { return h.visibility }

func (h *Head) ScrollTypes() [NumLayers]byte { return h.scroll }

// SetDescription accepts any content, including spaces, up to
// DescriptionMaxLen encoded bytes.
func (h *Head) SetDescription(description string) error {
	n, err := encodedLen(description)
	if err != nil {
		return err
	}
	if n > DescriptionMaxLen {
		return fmt.Errorf("%w: description is %d bytes, max %d", ErrFieldConstraint, n, DescriptionMaxLen)
	}
	h.description = description
	return nil
}

func (h *Head) SetMapName(index int, name string) error {
	if index < 0 || index >= NumRefMaps {
		return fmt.Errorf("%w: map name slot %d, want 0-%d", ErrFieldConstraint, index, NumRefMaps-1)
	}
	if err := validateName(name, kindMapName); err != nil {
		return err
	}
	h.mapNames[index] = name
	return nil
}

func (h *Head) SetSpritesheetName(name string) error {
	if err := validateName(name, kindSpritesheetName); err != nil {
		return err
	}
	h.spritesheetName = name
	return nil
}

// SetReservedByte stores one of the five opaque head bytes. Their meaning is
// unknown; no value validation applies.
func (h *Head) SetReservedByte(index int, b byte) error {
	if index < 0 || index >= numReservedHeadBytes {
		return fmt.Errorf("%w: reserved byte slot %d, want 0-%d", ErrFieldConstraint, index, numReservedHeadBytes-1)
	}
	h.reserved[index] = b
	return nil
}

// SetBackgroundColor rejects any color that is not fully opaque; the format
// has no alpha channel.
func (h *Head) SetBackgroundColor(c color.NRGBA) error {
	if c.A != 0xFF {
		return fmt.Errorf("%w: background color alpha %d, must be opaque", ErrFieldConstraint, c.A)
	}
	h.bgColor = c
	return nil
}

// SetTilesetName requires a non-empty name for slot 0; only the first tileset
// is mandatory.
func (h *Head) SetTilesetName(index int, name string) error {
	if index < 0 || index >= NumLayers {
		return fmt.Errorf("%w: tileset slot %d, want 0-%d", ErrFieldConstraint, index, NumLayers-1)
	}
	if index == 0 && name == "" {
		return fmt.Errorf("%w: first tileset name must not be empty", ErrFieldConstraint)
	}
	if err := validateName(name, kindTilesetName); err != nil {
		return err
	}
	h.tilesetNames[index] = name
	return nil
}

// SetVisibility stores a layer's visibility byte. 0 is invisible and 2 is
// visible; values above MaxVisibility crash the game.
func (h *Head) SetVisibility(index int, v byte) error {
	if index < 0 || index >= NumLayers {
		return fmt.Errorf("%w: visibility slot %d, want 0-%d", ErrFieldConstraint, index, NumLayers-1)
	}
	if v > MaxVisibility {
		return fmt.Errorf("%w: visibility %d, want 0-%d", ErrFieldConstraint, v, MaxVisibility)
	}
	h.visibility[index] = v
	return nil
}

func (h *Head) SetScrollType(index int, s byte) error {
	if index < 0 || index >= NumLayers {
		return fmt.Errorf("%w: scroll slot %d, want 0-%d", ErrFieldConstraint, index, NumLayers-1)
	}
	if s > MaxScrollType {
		return fmt.Errorf("%w: scroll type %d, want 0-%d", ErrFieldConstraint, s, MaxScrollType)
	}
	h.scroll[index] = s
	return nil
}

// parseHead reads the head fields in wire order and runs them through NewHead
// so a decoded head satisfies the same constraints as a constructed one.
func parseHead(r io.Reader) (*Head, error) {
	description, err := readString(r, kindDescription)
	if err != nil {
		return nil, err
	}

	mapNames := make([]string, NumRefMaps)
	for i := range mapNames {
		if mapNames[i], err = readString(r, kindMapName); err != nil {
			return nil, err
		}
	}

	spritesheetName, err := readString(r, kindSpritesheetName)
	if err != nil {
		return nil, err
	}

	var tail [numReservedHeadBytes + 3]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return nil, err
	}
	reserved := tail[:numReservedHeadBytes]
	bg := color.NRGBA{R: tail[5], G: tail[6], B: tail[7], A: 0xFF}

	tilesetNames := make([]string, NumLayers)
	visibility := make([]byte, NumLayers)
	scroll := make([]byte, NumLayers)
	for i := 0; i < NumLayers; i++ {
		if tilesetNames[i], err = readString(r, kindTilesetName); err != nil {
			return nil, err
		}
		var vs [2]byte
		if _, err := io.ReadFull(r, vs[:]); err != nil {
			return nil, err
		}
		visibility[i] = vs[0]
		scroll[i] = vs[1]
	}

	return NewHead(description, mapNames, spritesheetName, reserved, bg, tilesetNames, visibility, scroll)
}

func (h *Head) writeTo(w io.Writer) error {
	if err := writeString(w, h.description, DescriptionMaxLen); err != nil {
		return err
	}
	for _, name := range h.mapNames {
		if err := writeString(w, name, FilenameMaxLen); err != nil {
			return err
		}
	}
	if err := writeString(w, h.spritesheetName, FilenameMaxLen); err != nil {
		return err
	}
	var tail [numReservedHeadBytes + 3]byte
	copy(tail[:], h.reserved[:])
	tail[5], tail[6], tail[7] = h.bgColor.R, h.bgColor.G, h.bgColor.B
	if _, err := w.Write(tail[:]); err != nil {
		return err
	}
	for i := 0; i < NumLayers; i++ {
		if err := writeString(w, h.tilesetNames[i], FilenameMaxLen); err != nil {
			return err
		}
		if _, err := w.Write([]byte{h.visibility[i], h.scroll[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (h *Head) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Description: %s\n", h.description)
	for i, name := range h.mapNames {
		fmt.Fprintf(&b, "Mapname %d: %s\n", i, name)
	}
	fmt.Fprintf(&b, "Spritesheet Name: %s\n", h.spritesheetName)
	fmt.Fprintf(&b, "Reserved: % 02X\n", h.reserved[:])
	fmt.Fprintf(&b, "Background Color: #%02X%02X%02X\n", h.bgColor.R, h.bgColor.G, h.bgColor.B)
	for i := range h.tilesetNames {
		fmt.Fprintf(&b, "Tileset %d: %s (visibility %d, scroll %d)\n",
			i, h.tilesetNames[i], h.visibility[i], h.scroll[i])
	}
	return b.String()
}
