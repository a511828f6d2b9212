package multicode

import "strings"

// oddSet and evenSet are the fixed wire alphabets: positions 0..15 decode
// to field values 0..15, position 16 is the '~' error sentinel used only
// on the encode side when a caller hands encodeDisplay an out-of-range
// value. Any implementation must use these exact tables for wire
// compatibility.
const (
	oddSet  = "01236789bGJNqXYZ~"
	evenSet = "45ACDEFHKMPRsTVW~"
	spaces  = " -._+*#"
)

// encodeDisplay renders field value n at stream position p as a wire
// character: even positions use oddSet, odd positions use evenSet.
func encodeDisplay(n uint8, p int) byte {
	if n > 15 {
		return '~'
	}
	if p%2 == 0 {
		return oddSet[n]
	}
	return evenSet[n]
}

// renderDisplay renders a full coded nybble stream, grouping with a space
// after every 2nd symbol and a hyphen after every 4th.
func renderDisplay(codes *Buffer) string {
	var b strings.Builder
	for i := 0; i < codes.Len(); i++ {
		if i > 0 {
			switch {
			case i%4 == 0:
				b.WriteByte('-')
			case i%2 == 0:
				b.WriteByte(' ')
			}
		}
		b.WriteByte(encodeDisplay(codes.Get(i), i))
	}
	return b.String()
}

// normalizeChar applies the transcription normalization rules to a single
// input character: space characters are reported as such (and carry no
// other meaning); everything else is upper-cased, has the three
// case-restored overrides applied, then has the four confusion-character
// corrections applied. Applying normalizeChar to its own output is a
// no-op, by construction: every branch below maps its input into a set of
// characters none of the other branches touch.
func normalizeChar(c byte) (normalized byte, isSpace bool) {
	if strings.IndexByte(spaces, c) >= 0 {
		return 0, true
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'B':
		c = 'b'
	case 'Q':
		c = 'q'
	case 'S':
		c = 's'
	}
	switch c {
	case 'O':
		c = '0'
	case 'L', 'I':
		c = '1'
	case 'U':
		c = 'V'
	}
	return c, false
}

// decodeAlphabetIndex returns the index of c within the first 16 (valid,
// non-sentinel) characters of set, or -1 if c does not appear there.
func decodeAlphabetIndex(set string, c byte) int {
	return strings.IndexByte(set[:16], c)
}
