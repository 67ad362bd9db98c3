package pxpack

import "errors"

var (
	ErrBadHeaderMagic      = errors.New("pxpack: bad header magic")
	ErrBadLayerMagic       = errors.New("pxpack: bad layer magic")
	ErrArityMismatch       = errors.New("pxpack: arity mismatch")
	ErrFieldConstraint     = errors.New("pxpack: field constraint violated")
	ErrStringTooLong       = errors.New("pxpack: string too long")
	ErrIllegalCharacter    = errors.New("pxpack: illegal character")
	ErrDimensionOverflow   = errors.New("pxpack: dimension overflow")
	ErrTileValueOutOfRange = errors.New("pxpack: tile value out of range")
	ErrIndexOutOfBounds    = errors.New("pxpack: index out of bounds")
)
