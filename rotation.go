package multicode

// decodeWithRotation runs the Reed-Solomon decoder on codes, falling back
// to a brute-force rotation search if the direct decode fails. Chirality
// repair sometimes nudges a deletion or insertion to the wrong end of a
// run of zero padding; shifting that padding from one end to the other
// before retrying lets the algebraic decoder see the alignment it needed
// all along. Left rotations are tried first, then (independently, from the
// original buffer) right rotations; the first successful decode wins.
func decodeWithRotation(codes *Buffer, sym, expectedLength int) (*Buffer, bool) {
	if msg, err := rsDecode(codes, sym, expectedLength); err == nil {
		return msg, true
	}

	maxRot := codes.Len() / 2

	left := codes.Clone()
	for i := 0; i < maxRot; i++ {
		v := left.PopFront()
		if v != 0 {
			left.PushFront(v)
			break
		}
		left.PushBack(v)
		if msg, err := rsDecode(left, sym, expectedLength); err == nil {
			return msg, true
		}
	}

	right := codes.Clone()
	for i := 0; i < maxRot; i++ {
		v := right.PopBack()
		if v != 0 {
			right.PushBack(v)
			break
		}
		right.PushFront(v)
		if msg, err := rsDecode(right, sym, expectedLength); err == nil {
			return msg, true
		}
	}

	return nil, false
}
