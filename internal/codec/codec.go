// Package codec implements the text encoding used for tile blobs: base64
// with a lenient decoder. The generator emits canonical standard-alphabet
// base64, but blobs that passed through URL-safe transports or got
// reflowed with whitespace must still decode, so the decoder accepts both
// alphabets, strips whitespace, and tolerates implicitly short final groups.
package codec

import "encoding/base64"

const padByte = '='

// sextets maps an input byte to its 6-bit value, or 0xFF for symbols
// outside the alphabet. '-' and '_' alias '+' and '/'.
var sextets [256]byte

func init() {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := range sextets {
		sextets[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		sextets[alphabet[i]] = byte(i)
	}
	sextets['-'] = 62
	sextets['_'] = 63
}

// Encode produces the canonical blob text for raw bytes.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode turns a blob back into raw bytes. Returns (nil, false) when the
// input is empty or a group starts with an unrecognized symbol. A group
// whose third or fourth symbol is a pad marker, is unrecognized, or is
// missing at end of input contributes fewer than 3 bytes.
func Decode(blob string) ([]byte, bool) {
	stripped := stripSpace(blob)
	if len(stripped) == 0 {
		return nil, false
	}

	out := make([]byte, 0, len(stripped)/4*3+3)
	for i := 0; i < len(stripped); i += 4 {
		group := stripped[i:min(i+4, len(stripped))]
		if len(group) < 2 {
			return nil, false
		}
		v1 := sextets[group[0]]
		v2 := sextets[group[1]]
		if v1 == 0xFF || v2 == 0xFF {
			return nil, false
		}
		out = append(out, v1<<2|v2>>4)

		if len(group) < 3 || group[2] == padByte {
			continue
		}
		v3 := sextets[group[2]]
		if v3 == 0xFF {
			continue
		}
		out = append(out, v2<<4|v3>>2)

		if len(group) < 4 || group[3] == padByte {
			continue
		}
		v4 := sextets[group[3]]
		if v4 == 0xFF {
			continue
		}
		out = append(out, v3<<6|v4)
	}
	return out, true
}

func stripSpace(s string) []byte {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		buf = append(buf, s[i])
	}
	return buf
}
