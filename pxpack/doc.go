// Package pxpack implements the PXPACK map file format used by Kero Blaster,
// Pink Hour, and Pink Heaven.
//
// A PXPACK file stores one game map: a metadata head, three fixed-slot tile
// layers, and a list of placed entities.
//
// # File Format Overview
//
// A PXPACK file consists of, in order:
//   - The fixed header magic "PXPACK121127a**\x00"
//   - The head: a description string, four referenced map names, a
//     spritesheet name, five reserved bytes, a background color (R, G, B),
//     and per-layer tileset name, visibility byte, and scroll byte
//   - Three tile layer records, each opening with the magic "pxMAP01\x00"
//     followed by little-endian uint16 width and height; a present layer
//     (width*height > 0) adds one reserved byte and width*height row-major
//     tile bytes, an absent layer adds nothing
//   - A little-endian uint16 entity count followed by that many entity
//     records (flag, type, one opaque byte, uint16 x, uint16 y, two opaque
//     bytes, then a name string)
//
// Strings are length-prefixed: one length byte followed by that many bytes of
// Shift-JIS text. The description may be up to 31 bytes; every other string
// field is capped at 15 bytes and must not contain a space.
//
// # Basic Usage
//
// To load a map:
//
//	m, err := pxpack.Open("field1.pxpack")
//
// Open on a path with no file behind it is not an error: it returns a fresh
// map with a minimal valid head and three absent layers, ready to be edited
// and saved to that path.
//
// To persist edits:
//
//	err := m.Save()
//
// Decode and Encode expose the same codec over io.Reader/io.Writer for
// callers that manage storage themselves.
//
// # Validation
//
// Every field mutator enforces its format constraint at the point of
// assignment, and decoding enforces the same constraints on every parsed
// field. A violation anywhere aborts the whole decode; partial maps are never
// returned. Failures wrap the sentinel errors in errors.go, so callers can
// test them with errors.Is.
//
// A Map and its head, layers, and entities are not safe for concurrent
// mutation; the caller owns serialization.
package pxpack
