package skeleton

// NewFromBits builds a Skeleton directly from a row-major foreground mask,
// bypassing Thin. Used by tests and by callers that already have a
// one-pixel-wide skeleton in hand.
func NewFromBits(h, w int, bits []bool) *Skeleton {
	cp := make([]bool, h*w)
	copy(cp, bits)

	return &Skeleton{H: h, W: w, bits: cp}
}
