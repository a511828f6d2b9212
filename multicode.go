package multicode

// Encode packs data into nybbles (high nybble first per byte), appends sym
// Reed-Solomon check symbols over GF(2^4), and renders the result as a
// multi-code string. The output always has 2*len(data)+sym data-carrying
// characters, grouped with the fixed separator pattern.
func Encode(data []byte, sym int) string {
	nybbles := bytesToNybbles(data)
	coded := rsEncode(nybbles, sym)
	return renderDisplay(coded)
}

// Decode attempts to recover the original bytes from a human-entered
// multi-code string. originalByteLength and sym must match the values used
// at Encode time. On any unrecoverable input — wrong length after repair,
// too many symbol errors, a residual syndrome after correction, or a
// character that belongs to both wire alphabets — Decode returns nil
// rather than partial or guessed data.
func Decode(s string, originalByteLength, sym int) []byte {
	expected := 2*originalByteLength + sym

	codes, chirality, ok := parseStream(s, expected)
	if !ok {
		return nil
	}

	for i := 0; i < expected; i++ {
		if repairCodesAndChirality(codes, chirality, expected) < 0 {
			break
		}
	}
	if codes.Len() != expected {
		return nil
	}

	msg, ok := decodeWithRotation(codes, sym, expected)
	if !ok {
		return nil
	}

	msg.TrimEnd(msg.Len() - sym)
	return nybblesToBytes(msg)
}

// bytesToNybbles splits each byte into a high nybble followed by a low
// nybble, producing a buffer of length 2*len(data).
func bytesToNybbles(data []byte) *Buffer {
	nb := NewBuffer(0, 2*len(data))
	for _, b := range data {
		nb.PushBack(b >> 4)
		nb.PushBack(b & 0x0F)
	}
	return nb
}

// nybblesToBytes packs pairs of nybbles back into bytes, high nybble first.
// nb must have even length.
func nybblesToBytes(nb *Buffer) []byte {
	out := make([]byte, nb.Len()/2)
	for i := range out {
		out[i] = nb.Get(2*i)<<4 | nb.Get(2*i+1)
	}
	return out
}
