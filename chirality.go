package multicode

// parseStream consumes a human-entered string into a (codes, chirality)
// pair. Space characters are dropped. A character that normalizes into
// exactly one alphabet yields a real symbol with known chirality. A
// character in neither alphabet (including the '~' sentinel, which this
// layer never treats as a valid symbol) is compensated by the deficit
// heuristic: while fewer valid symbols than the expected length have been
// read (placeholders are not counted), a zero placeholder is inserted with
// the chirality that position should carry; once that many valid symbols
// have been read, the stray character is simply dropped. A character matching both alphabets can
// only happen if the tables themselves overlap, which is a construction
// bug — parseStream reports that as failure rather than guessing.
func parseStream(s string, expected int) (codes, chirality *Buffer, ok bool) {
	codes = NewBuffer(0, expected)
	chirality = NewBuffer(0, expected)
	validCount := 0

	for i := 0; i < len(s); i++ {
		norm, isSpace := normalizeChar(s[i])
		if isSpace {
			continue
		}
		oddIdx := decodeAlphabetIndex(oddSet, norm)
		evenIdx := decodeAlphabetIndex(evenSet, norm)
		switch {
		case oddIdx >= 0 && evenIdx >= 0:
			return nil, nil, false
		case oddIdx >= 0:
			codes.PushBack(uint8(oddIdx))
			chirality.PushBack(0)
			validCount++
		case evenIdx >= 0:
			codes.PushBack(uint8(evenIdx))
			chirality.PushBack(1)
			validCount++
		default:
			if expected-validCount > 0 {
				pos := codes.Len()
				codes.PushBack(0)
				chirality.PushBack(uint8(pos & 1))
			}
			// else: drop the stray character
		}
	}
	return codes, chirality, true
}

// repairCodesAndChirality runs one step of the chirality repair state
// machine described in the codec's design: it looks at the length of the
// parsed stream against the expected length, and at the first position
// whose chirality disagrees with its position parity, to localize and fix
// a single insertion, deletion, or adjacent transposition. It returns 0 if
// the caller should invoke it again, -1 if there is nothing more it can
// do (either because the stream is already aligned, or because it has
// given up).
//
// The condition guarding the transpose-vs-delete choice in the L<E branch
// intentionally reproduces chi3rd = (firstErr+1)&1 rather than the
// (firstErr+2)&1 that the check chirality[firstErr+2]==(firstErr+2)&1
// would suggest; the two coincide only on some parities, and changing the
// formula changes which inputs recover. It is preserved as-is.
func repairCodesAndChirality(codes, chirality *Buffer, expected int) int {
	l := codes.Len()
	e := expected

	if 3*l < 2*e {
		return -1
	}

	firstErr := -1
	for p := 0; p < l; p++ {
		if chirality.Get(p) != uint8(p&1) {
			firstErr = p
			break
		}
	}

	if l == e {
		if firstErr < 0 || firstErr >= e-1 {
			return -1
		}
		if chirality.Get(firstErr) == chirality.Get(firstErr+1) {
			chirality.Set(firstErr, 1-chirality.Get(firstErr))
			return 0
		}
		codes.Swap(firstErr, firstErr+1)
		chirality.Swap(firstErr, firstErr+1)
		return 0
	}

	if l < e {
		if firstErr < 0 {
			chi := uint8(l & 1)
			endChi := uint8(e & 1)
			diff := e - l
			if diff == 1 && chi == endChi {
				codes.PushFront(0)
				chirality.PushFront(1)
				codes.PushFront(0)
				chirality.PushFront(0)
			} else {
				codes.PushBack(0)
				chirality.PushBack(chi)
			}
			return 0
		}
		if firstErr < l-3 {
			nextWrong := chirality.Get(firstErr+1) != uint8((firstErr+1)&1)
			chi3rd := uint8((firstErr + 1) & 1)
			thirdOK := chirality.Get(firstErr+2) == chi3rd
			if nextWrong && thirdOK {
				codes.Swap(firstErr, firstErr+1)
				chirality.Swap(firstErr, firstErr+1)
				return 0
			}
		}
		codes.InsertAt(firstErr, 0)
		chirality.InsertAt(firstErr, uint8(firstErr&1))
		return 0
	}

	// l > e
	if chirality.Get(l-1) == uint8((1+e)&1) {
		codes.PopBack()
		chirality.PopBack()
		return 0
	}
	if firstErr < 0 {
		codes.PopBack()
		chirality.PopBack()
	} else {
		codes.DeleteAt(firstErr)
		chirality.DeleteAt(firstErr)
	}
	return 0
}
