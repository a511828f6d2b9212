package multicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func elem(t *rapid.T, label string) uint8 {
	return uint8(rapid.IntRange(0, 15).Draw(t, label))
}

func TestFieldLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elem(t, "a")
		b := elem(t, "b")

		assert.Equal(t, gfAdd(a, b), gfAdd(b, a))
		assert.Equal(t, a, gfAdd(a, 0))
		assert.Equal(t, uint8(0), gfAdd(a, a))

		assert.Equal(t, uint8(0), gfMul(a, 0))
		assert.Equal(t, a, gfMul(a, 1))
		assert.Equal(t, gfMul(a, b), gfMul(b, a))

		if a != 0 {
			assert.Equal(t, uint8(1), gfMul(a, gfInverse(a)))
		}
		if b != 0 {
			assert.Equal(t, a, gfDiv(gfMul(a, b), b))
		}

		assert.Equal(t, uint8(1), gfPow(a, 0))
		assert.Equal(t, a, gfPow(a, 1))
	})
}

func TestGFTablesAreConsistent(t *testing.T) {
	gfTables()
	seen := map[uint8]bool{}
	for i := 0; i < 15; i++ {
		v := expTable[i]
		assert.False(t, seen[v], "duplicate antilog entry at %d", i)
		seen[v] = true
	}
	// expTable has period 15: entry 15+k mirrors entry k, for the full
	// doubled range the codec relies on to skip an explicit mod.
	for k := 0; k < 16; k++ {
		assert.Equal(t, expTable[k], expTable[15+k])
	}
}

func poly(vals ...uint8) *Buffer {
	b := NewBuffer(0, len(vals))
	for _, v := range vals {
		b.PushBack(v)
	}
	return b
}

func TestEvalPolyConstant(t *testing.T) {
	assert.Equal(t, uint8(1), evalPoly(poly(1), 7))
}

func TestPolyLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pLen := rapid.IntRange(1, 5).Draw(t, "pLen")
		qLen := rapid.IntRange(1, 5).Draw(t, "qLen")
		p := poly(randCoeffs(t, "p", pLen)...)
		q := poly(randCoeffs(t, "q", qLen)...)
		x := elem(t, "x")

		sum := addPoly(p, q)
		assert.Equal(t, gfAdd(evalPoly(p, x), evalPoly(q, x)), evalPoly(sum, x))

		prod := mulPoly(p, q)
		assert.Equal(t, gfMul(evalPoly(p, x), evalPoly(q, x)), evalPoly(prod, x))
		assert.Equal(t, pLen+qLen-1, prod.Len())
	})
}

func randCoeffs(t *rapid.T, label string, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = elem(t, label)
	}
	return out
}

func TestGeneratorPolyDegree(t *testing.T) {
	for sym := 1; sym <= 10; sym++ {
		g := generatorPoly(sym)
		assert.Equal(t, sym+1, g.Len())
		// every root 2^i for i in [0,sym) must evaluate to zero
		for i := 0; i < sym; i++ {
			assert.Equal(t, uint8(0), evalPoly(g, gfPow(2, i)))
		}
	}
}
