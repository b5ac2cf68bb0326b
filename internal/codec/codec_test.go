package codec

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	// Cover every pad length, including zero-length groups at each boundary.
	var cases [][]byte
	for n := 0; n <= 9; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i*37 + 11)
		}
		cases = append(cases, b)
	}
	cases = append(cases, []byte{0x00, 0x00, 0x00, 0x00}, []byte{0xFF, 0xFE, 0xFD})

	for _, want := range cases {
		if len(want) == 0 {
			continue // empty input is a decode failure by contract
		}
		got, ok := Decode(Encode(want))
		if !ok {
			t.Fatalf("Decode(Encode(%v)) failed", want)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("round trip mismatch: got %v, want %v", got, want)
		}
	}
}

func TestRoundTripTileBuffer(t *testing.T) {
	// A fully populated tile: 256 little-endian uint32 area IDs.
	raw := make([]byte, 1024)
	for i := 0; i < 256; i++ {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(i*131+7))
	}
	got, ok := Decode(Encode(raw))
	if !ok || !bytes.Equal(got, raw) {
		t.Fatal("tile buffer round trip failed")
	}
}

func TestDecodeURLSafeAlphabet(t *testing.T) {
	// 0xFB 0xEF 0xBE encodes to "++++" in the standard alphabet.
	std := Encode([]byte{0xFB, 0xEF, 0xBE})
	if !strings.Contains(std, "+") {
		t.Fatalf("test vector should contain '+', got %q", std)
	}
	urlSafe := strings.NewReplacer("+", "-", "/", "_").Replace(std)

	want, _ := Decode(std)
	got, ok := Decode(urlSafe)
	if !ok {
		t.Fatal("Decode of URL-safe variant failed")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("URL-safe decode = %v, want %v", got, want)
	}
}

func TestDecodeWhitespace(t *testing.T) {
	want := []byte("hello world")
	enc := Encode(want)
	spaced := enc[:4] + "\n  " + enc[4:8] + "\t" + enc[8:] + "\r\n"
	got, ok := Decode(spaced)
	if !ok {
		t.Fatal("Decode with embedded whitespace failed")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeImplicitShortGroup(t *testing.T) {
	// "YQ==" and "YQ" both decode to "a": the trailing pads may be omitted.
	full, ok := Decode("YQ==")
	if !ok || string(full) != "a" {
		t.Fatalf("Decode(%q) = %q, %v", "YQ==", full, ok)
	}
	short, ok := Decode("YQ")
	if !ok || string(short) != "a" {
		t.Fatalf("Decode(%q) = %q, %v", "YQ", short, ok)
	}

	two, ok := Decode("YWI")
	if !ok || string(two) != "ab" {
		t.Fatalf("Decode(%q) = %q, %v", "YWI", two, ok)
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"only whitespace", " \n\t"},
		{"bad first symbol", "!abc"},
		{"bad second symbol", "a!bc"},
		{"bad symbol in later group", "YWJjZA==!X"},
		{"lone symbol", "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Decode(tt.in); ok {
				t.Errorf("Decode(%q) = %v, want failure", tt.in, got)
			}
		})
	}
}

func TestDecodePadStopsGroup(t *testing.T) {
	got, ok := Decode("YWJjZGU=")
	if !ok {
		t.Fatal("Decode failed")
	}
	if string(got) != "abcde" {
		t.Errorf("got %q, want %q", got, "abcde")
	}
}
