package multicode

import "sync"

// primitivePoly is the GF(2^4) reduction polynomial x^4+x+1 (0x13), fixed
// by the wire format: any implementation using a different primitive
// produces incompatible strings.
const primitivePoly = 0x13

// expTable and logTable are the field's log/antilog tables. expTable is
// sized double the field's nonzero-element count (32, not 16) so that
// mul and div can add two log values and index directly, without an
// explicit "% 15". initGF's last pass stores 15 for x=1, so the logs of
// nonzero elements lie in [1,15]: a sum never exceeds 30 and div's
// log(a)+15-log(b) never exceeds 29, both inside the doubled table because
// the antilog sequence has period 15 and expTable[15+k] == expTable[k].
var (
	expTable [32]uint8
	logTable [16]uint8
	gfOnce   sync.Once
)

func initGF() {
	x := uint8(1)
	for i := 0; i < 16; i++ {
		expTable[i] = x
		logTable[x] = uint8(i)
		x <<= 1
		if x&0x10 != 0 {
			x ^= primitivePoly
		}
	}
	for i := 16; i < len(expTable); i++ {
		expTable[i] = expTable[i-15]
	}
}

func gfTables() {
	gfOnce.Do(initGF)
}

// gfAdd is addition (and subtraction) in GF(2^4): plain XOR.
func gfAdd(a, b uint8) uint8 {
	return a ^ b
}

// gfMul multiplies two field elements.
func gfMul(a, b uint8) uint8 {
	gfTables()
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+int(logTable[b])]
}

// gfDiv divides a by b. Returns 0 if either operand is zero.
func gfDiv(a, b uint8) uint8 {
	gfTables()
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+15-int(logTable[b])]
}

// gfPow raises n to the p-th power.
func gfPow(n uint8, p int) uint8 {
	gfTables()
	if p == 0 {
		return 1
	}
	if n == 0 {
		return 0
	}
	e := (int(logTable[n]) * p) % 15
	if e < 0 {
		e += 15
	}
	return expTable[e]
}

// gfInverse returns the multiplicative inverse of n. n must be nonzero.
func gfInverse(n uint8) uint8 {
	gfTables()
	return expTable[15-int(logTable[n])]
}

// addPoly adds (XORs) two polynomials, right-aligning the shorter operand.
func addPoly(p, q *Buffer) *Buffer {
	pl, ql := p.Len(), q.Len()
	n := pl
	if ql > n {
		n = ql
	}
	out := NewBuffer(n, n)
	for i := 0; i < n; i++ {
		var pv, qv uint8
		pi := i - (n - pl)
		if pi >= 0 {
			pv = p.Get(pi)
		}
		qi := i - (n - ql)
		if qi >= 0 {
			qv = q.Get(qi)
		}
		out.Set(i, gfAdd(pv, qv))
	}
	return out
}

// mulPoly multiplies two polynomials, producing a result of length
// |p|+|q|-1.
func mulPoly(p, q *Buffer) *Buffer {
	pl, ql := p.Len(), q.Len()
	if pl == 0 || ql == 0 {
		return NewBuffer(0, 0)
	}
	out := NewBuffer(pl+ql-1, pl+ql-1)
	for i := 0; i < pl; i++ {
		pv := p.Get(i)
		if pv == 0 {
			continue
		}
		for j := 0; j < ql; j++ {
			out.Set(i+j, gfAdd(out.Get(i+j), gfMul(pv, q.Get(j))))
		}
	}
	return out
}

// scalarMulPoly multiplies every coefficient of p by the scalar s.
func scalarMulPoly(p *Buffer, s uint8) *Buffer {
	out := NewBuffer(p.Len(), p.Len())
	for i := 0; i < p.Len(); i++ {
		out.Set(i, gfMul(p.Get(i), s))
	}
	return out
}

// evalPoly evaluates p (highest degree first) at x via Horner's method.
func evalPoly(p *Buffer, x uint8) uint8 {
	if p.Len() == 0 {
		return 0
	}
	y := p.Get(0)
	for i := 1; i < p.Len(); i++ {
		y = gfAdd(gfMul(y, x), p.Get(i))
	}
	return y
}

// generatorPoly builds the Reed-Solomon generator polynomial for sym check
// symbols: the product over i in [0,sym) of (x + 2^i).
func generatorPoly(sym int) *Buffer {
	g := NewBufferOne(1)
	for i := 0; i < sym; i++ {
		g = mulPoly(g, NewBufferPair(1, gfPow(2, i)))
	}
	return g
}
