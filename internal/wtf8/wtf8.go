// Package wtf8 handles the surrogate-tolerant superset of UTF-8 used by
// the value model's strings.
package wtf8

import (
	"strings"
	"unicode/utf8"
)

const (
	surrSelf = 0x10000
	surrMin  = 0xD800
	surrHigh = 0xDC00
	surrMax  = 0xDFFF
)

// DecodeRune is like utf8.DecodeRuneInString but also decodes the
// three-byte encodings of UTF-16 surrogate code points, which
// encoding/utf8 rejects.
func DecodeRune(s string) (r rune, size int) {
	r, size = utf8.DecodeRuneInString(s)
	if r != utf8.RuneError || size != 1 {
		return r, size
	}
	if len(s) >= 3 && s[0] == 0xED && s[1] >= 0xA0 && s[1] <= 0xBF && s[2]&0xC0 == 0x80 {
		return 0xD000 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3
	}
	return r, size
}

// AppendRune appends the WTF-8 encoding of r, allowing surrogates.
func AppendRune(dst []byte, r rune) []byte {
	if r >= surrMin && r <= surrMax {
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
	return utf8.AppendRune(dst, r)
}

// ContainsSurrogate reports whether s has any encoded surrogate code unit.
func ContainsSurrogate(s string) bool {
	for i := 0; i < len(s); {
		r, size := DecodeRune(s[i:])
		if r >= surrMin && r <= surrMax {
			return true
		}
		i += size
	}
	return false
}

// ToScalar returns s with every valid high/low surrogate pair combined into
// its supplementary code point and every unpaired surrogate code unit
// replaced one-for-one by U+FFFD.
func ToScalar(s string) string {
	if strings.IndexByte(s, 0xED) < 0 && utf8.ValidString(s) {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := DecodeRune(s[i:])
		i += size
		if r < surrMin || r > surrMax {
			out = utf8.AppendRune(out, r)
			continue
		}
		if r < surrHigh {
			// High surrogate: pairs with an immediately following low one.
			r2, size2 := DecodeRune(s[i:])
			if r2 >= surrHigh && r2 <= surrMax {
				i += size2
				combined := surrSelf + (r-surrMin)<<10 + (r2 - surrHigh)
				out = utf8.AppendRune(out, combined)
				continue
			}
		}
		out = utf8.AppendRune(out, utf8.RuneError)
	}
	return string(out)
}
