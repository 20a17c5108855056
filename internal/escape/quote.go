// Copyright (C) 2025 The JayceON Authors. All Rights Reserved.

// Package escape renders string data in its JSON-escaped form.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes src as a JSON string literal. Quotation marks and
// backslashes are backslash-escaped and the named control escapes are
// applied; all other bytes pass through unchanged, so UTF-8 content is
// preserved as written.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		switch {
		case c == '"' || c == '\\':
			buf = append(buf, '\\', c)
		case c < ' ' && controlEsc[c] != 0:
			buf = append(buf, '\\', controlEsc[c])
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}
