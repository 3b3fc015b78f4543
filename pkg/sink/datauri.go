package sink

import "strings"

const dataURIPrefix = "data:text/plain;charset=utf-8,"

// DataURI encodes content as a text/plain data URI, escaping like
// encodeURIComponent so the result can be pasted into a browser
func DataURI(content string) string {
	return dataURIPrefix + EscapeComponent(content)
}

// EscapeComponent percent-encodes the UTF-8 bytes of s, leaving only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) unescaped
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
