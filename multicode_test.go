package multicode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var helloWorld = []byte{
	0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x2C, 0x20, 0x77,
	0x6F, 0x72, 0x6C, 0x64, 0x21, 0x00,
}

// Scenario 1: plain round trip.
func TestScenarioPlainRoundTrip(t *testing.T) {
	code := Encode(helloWorld, 8)
	got := Decode(code, len(helloWorld), 8)
	require.Equal(t, helloWorld, got)
}

// Scenario 2: lower-casing the whole string is a no-op through decode.
func TestScenarioLowerCase(t *testing.T) {
	code := strings.ToLower(Encode(helloWorld, 8))
	got := Decode(code, len(helloWorld), 8)
	require.Equal(t, helloWorld, got)
}

// Scenario 3: deleting any one character recovers the original bytes.
func TestScenarioSingleDeletion(t *testing.T) {
	code := Encode(helloWorld, 8)
	for i := 0; i < len(code); i++ {
		edited := code[:i] + code[i+1:]
		got := Decode(edited, len(helloWorld), 8)
		assert.Equalf(t, helloWorld, got, "deleting index %d of %q", i, code)
	}
}

// Scenario 4: swapping any two adjacent non-separator characters recovers
// the original bytes.
func TestScenarioAdjacentSwap(t *testing.T) {
	code := Encode(helloWorld, 8)
	for i := 0; i < len(code)-1; i++ {
		if strings.IndexByte(spaces, code[i]) >= 0 || strings.IndexByte(spaces, code[i+1]) >= 0 {
			continue
		}
		b := []byte(code)
		b[i], b[i+1] = b[i+1], b[i]
		got := Decode(string(b), len(helloWorld), 8)
		assert.Equalf(t, helloWorld, got, "swapping index %d/%d of %q", i, i+1, code)
	}
}

// Scenario 5: a single character replaced with the error sentinel still
// decodes, since it only costs one symbol of Reed-Solomon capacity.
func TestScenarioSentinelSubstitution(t *testing.T) {
	code := Encode(helloWorld, 8)
	for i, c := range []byte(code) {
		if strings.IndexByte(spaces, c) >= 0 {
			continue
		}
		b := []byte(code)
		b[i] = '~'
		got := Decode(string(b), len(helloWorld), 8)
		assert.Equalf(t, helloWorld, got, "sentinel at index %d of %q", i, code)
	}
}

// Scenario 6: a string mangled well beyond Reed-Solomon capacity fails
// closed rather than returning wrong data.
func TestScenarioUnrecoverable(t *testing.T) {
	code := []byte(Encode(helloWorld, 8))
	for i := 0; i < len(code) && i < 10; i++ {
		if strings.IndexByte(spaces, code[i]) >= 0 {
			continue
		}
		code[i] = byte('0' + i%10)
	}
	got := Decode(string(code), len(helloWorld), 8)
	assert.Nil(t, got)
}

func TestDecodeRejectsLengthMismatch(t *testing.T) {
	got := Decode("0", len(helloWorld), 8)
	assert.Nil(t, got)
}

// TestEditRobustnessProperty exercises the general claims of single
// deletion, single insertion, and adjacent transposition across random
// payloads rather than the one fixed scenario string.
func TestEditRobustnessProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sym := 8
		data := rapid.SliceOfN(rapid.Byte(), 1, 16).Draw(t, "data")
		code := []byte(Encode(data, sym))

		kind := rapid.IntRange(0, 2).Draw(t, "kind")
		switch kind {
		case 0: // delete
			i := rapid.IntRange(0, len(code)-1).Draw(t, "delI")
			code = append(code[:i], code[i+1:]...)
		case 1: // insert a random valid alphabet character
			i := rapid.IntRange(0, len(code)).Draw(t, "insI")
			set := oddSet[:16]
			if i%2 == 1 {
				set = evenSet[:16]
			}
			ci := rapid.IntRange(0, 15).Draw(t, "insC")
			code = append(code[:i:i], append([]byte{set[ci]}, code[i:]...)...)
		case 2: // adjacent swap
			if len(code) < 2 {
				return
			}
			i := rapid.IntRange(0, len(code)-2).Draw(t, "swapI")
			code[i], code[i+1] = code[i+1], code[i]
		}

		got := Decode(string(code), len(data), sym)
		assert.Equal(t, data, got)
	})
}
