// Package multicode encodes short binary payloads into a human-transcribable
// string — a "multi-code" — and decodes them back, surviving the mistakes
// people actually make when they copy a code by hand: case changes, the
// classic O/0, L/I/1, U/V glyph confusions, two characters swapped in
// transit, and a single character dropped or accidentally typed twice.
//
// # Overview
//
// Three layers compose to make that possible:
//
//   - A Reed-Solomon codec over GF(2^4) gives the coded stream algebraic
//     error-correcting capacity: floor(sym/2) arbitrarily-corrupted symbols
//     recover cleanly, where sym is the number of check symbols requested
//     at encode time.
//   - A chirality-repair layer renders each symbol from one of two
//     alternating alphabets depending on its position's parity. That
//     parity becomes a cheap, local signal for "a character got inserted
//     or deleted here" or "these two got swapped", fixed up before the
//     Reed-Solomon decoder ever runs.
//   - A rotation fallback retries the decoder after shifting leading or
//     trailing zero padding, for the rare case where chirality repair
//     picks the wrong end of an all-zero run.
//
// # When to use it
//
// Multicode is built for short, hand-entered codes: license keys,
// pairing codes, recovery phrases rendered as a single string — tens of
// bytes, not large payloads. It is not a streaming codec, a general-purpose
// GF(2^n) library, or a source of cryptographic integrity; a corrupted
// code that Reed-Solomon cannot fix simply decodes to nothing — it never
// silently returns the wrong data.
//
// # Basic usage
//
//	code := multicode.Encode([]byte("hello"), 8)
//	got := multicode.Decode(code, 5, 8)
//	// got == []byte("hello"), even if code was lower-cased, had a
//	// character dropped, or had two adjacent characters swapped.
//
// Decode needs the original payload length because the wire format does
// not carry it: callers agree on it out of band, the same way they agree
// on sym.
package multicode
