package multicode

import "errors"

// Sentinel errors for Reed-Solomon decode failure. These never escape the
// package's two public entry points (Encode, Decode) — every public-facing
// failure flattens to an empty result, per the codec's binary "worked /
// please re-enter" error model. They exist only so internal callers (the
// rotation fallback) and tests can distinguish failure reasons.
var (
	errTooManyErrors    = errors.New("multicode: too many symbol errors")
	errChienMismatch    = errors.New("multicode: chien search root count mismatch")
	errResidualSyndrome = errors.New("multicode: residual syndrome after correction")
)

// rsEncode appends sym Reed-Solomon check symbols to msg via systematic
// polynomial long division. The returned buffer has length msg.Len()+sym,
// with the first msg.Len() symbols identical to msg.
func rsEncode(msg *Buffer, sym int) *Buffer {
	g := generatorPoly(sym)
	buf := NewBuffer(msg.Len()+g.Len()-1, msg.Len()+g.Len()-1)
	for i := 0; i < msg.Len(); i++ {
		buf.Set(i, msg.Get(i))
	}
	// The division loop treats buf[0:msg.Len()] as the evolving remainder
	// register, so for j==1 it writes back into that range whenever the
	// message has more than one symbol: buf[i+1] is touched by step i as
	// long as i+1 < msg.Len(). Restore the original message afterward so
	// the codeword stays systematic.
	for i := 0; i < msg.Len(); i++ {
		c := buf.Get(i)
		if c == 0 {
			continue
		}
		for j := 1; j < g.Len(); j++ {
			buf.Set(i+j, gfAdd(buf.Get(i+j), gfMul(g.Get(j), c)))
		}
	}
	for i := 0; i < msg.Len(); i++ {
		buf.Set(i, msg.Get(i))
	}
	buf.TrimEnd(msg.Len() + sym)
	return buf
}

// syndromes computes the RS syndrome vector of length sym+1: index 0 is
// always zero, index i+1 is msg evaluated at 2^i.
func syndromes(msg *Buffer, sym int) *Buffer {
	s := NewBuffer(sym+1, sym+1)
	for i := 0; i < sym; i++ {
		s.Set(i+1, evalPoly(msg, gfPow(2, i)))
	}
	return s
}

func syndromesClean(s *Buffer) bool {
	for i := 1; i < s.Len(); i++ {
		if s.Get(i) != 0 {
			return false
		}
	}
	return true
}

// rsDecode recovers msg (expected to be a codeword of expectedLength
// symbols, possibly short by erasures already known to the caller) by
// syndrome computation, Berlekamp-Massey-style error locator construction,
// Chien search, and Forney correction. On success it returns the full
// corrected codeword (data symbols followed by check symbols); on failure
// it returns a nil buffer and a sentinel error.
func rsDecode(msg *Buffer, sym, expectedLength int) (*Buffer, error) {
	erases := expectedLength - msg.Len()

	synd := syndromes(msg, sym)
	if syndromesClean(synd) {
		return msg, nil
	}

	errLoc := NewBufferOne(1)
	oldLoc := NewBufferOne(1)
	syndShift := synd.Len() - sym
	if syndShift < 0 {
		syndShift = 0
	}

	for i := 0; i < sym-erases; i++ {
		kappa := i + syndShift
		delta := synd.at(kappa)
		for j := 1; j < errLoc.Len(); j++ {
			delta ^= gfMul(errLoc.at(errLoc.Len()-(j+1)), synd.at(kappa-j))
		}
		oldLoc.PushBack(0)
		if delta != 0 {
			if oldLoc.Len() > errLoc.Len() {
				newLoc := scalarMulPoly(oldLoc, delta)
				oldLoc = scalarMulPoly(errLoc, gfInverse(delta))
				errLoc = newLoc
			}
			errLoc = addPoly(errLoc, scalarMulPoly(oldLoc, delta))
		}
	}
	errLoc.TrimLeadingZero()

	if errLoc.Len()-1-erases > sym {
		return nil, errTooManyErrors
	}

	errLoc.Reverse()
	var positions []int
	for i := 0; i < msg.Len(); i++ {
		if evalPoly(errLoc, gfPow(2, i)) == 0 {
			positions = append(positions, msg.Len()-1-i)
		}
	}
	if len(positions) != errLoc.Len()-1 {
		return nil, errChienMismatch
	}

	for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
		positions[i], positions[j] = positions[j], positions[i]
	}
	synd.Reverse()

	coeffPos := make([]int, len(positions))
	for k, pos := range positions {
		coeffPos[k] = msg.Len() - 1 - pos
	}

	lambda := NewBufferOne(1)
	for _, c := range coeffPos {
		lambda = mulPoly(lambda, NewBufferPair(gfPow(2, c), 1))
	}

	omega := mulPoly(synd, lambda)
	if omega.Len() > lambda.Len() {
		omega.DropFront(omega.Len() - lambda.Len())
	}

	errPattern := NewBuffer(msg.Len(), msg.Len())
	for k := range positions {
		chi := gfPow(2, coeffPos[k])
		chiInv := gfInverse(chi)
		prime := uint8(1)
		for j := range positions {
			if j == k {
				continue
			}
			prime = gfMul(prime, gfAdd(1, gfMul(chiInv, gfPow(2, coeffPos[j]))))
		}
		y := gfMul(evalPoly(omega, chiInv), chi)
		errPattern.Set(positions[k], gfDiv(y, prime))
	}

	corrected := NewBuffer(msg.Len(), msg.Len())
	for i := 0; i < msg.Len(); i++ {
		corrected.Set(i, gfAdd(msg.Get(i), errPattern.Get(i)))
	}

	if !syndromesClean(syndromes(corrected, sym)) {
		return nil, errResidualSyndrome
	}
	return corrected, nil
}
