// Copyright (C) 2025 The JayceON Authors. All Rights Reserved.

// Package pretty renders parsed JSON documents in a compact textual
// form for debugging. It is display tooling: the exact output is not a
// serialization contract, and release code should not depend on it.
//
// Strings are re-escaped as they would appear in source, numbers are
// rendered in fixed six-digit decimal form, and object members appear
// in sorted key order.
package pretty

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jayceon/jayceon"
	"github.com/jayceon/jayceon/internal/escape"
	"go4.org/mem"
)

// Print writes the rendering of d to stdout, followed by a newline.
func Print(d *jayceon.Document) { fmt.Println(String(d)) }

// Format writes the rendering of d to w.
func Format(w io.Writer, d *jayceon.Document) error {
	_, err := w.Write(appendObject(nil, d.Root()))
	return err
}

// String renders d to a string.
func String(d *jayceon.Document) string {
	return string(appendObject(nil, d.Root()))
}

func appendValue(buf []byte, v *jayceon.Value) []byte {
	if v.IsNull() {
		return append(buf, "null"...)
	}
	if b, ok := v.Bool(); ok {
		return strconv.AppendBool(buf, b)
	}
	if n, ok := v.Number(); ok {
		return strconv.AppendFloat(buf, n, 'f', 6, 64)
	}
	if s, ok := v.Text(); ok {
		return append(buf, escape.Quote(mem.S(s))...)
	}
	if a, ok := v.Array(); ok {
		return appendArray(buf, a)
	}
	if o, ok := v.Object(); ok {
		return appendObject(buf, o)
	}
	panic(fmt.Sprintf("unknown value kind for %v", v))
}

func appendArray(buf []byte, a *jayceon.Array) []byte {
	buf = append(buf, '[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendValue(buf, a.At(i))
	}
	return append(buf, ']')
}

func appendObject(buf []byte, o *jayceon.Object) []byte {
	buf = append(buf, '{')
	for i := 0; i < o.Len(); i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, v := o.At(i)
		buf = append(buf, escape.Quote(mem.S(key))...)
		buf = append(buf, ':')
		buf = appendValue(buf, v)
	}
	return append(buf, '}')
}
