// Copyright (C) 2025 The JayceON Authors. All Rights Reserved.

// Package jayceon implements an in-memory JSON document parser.
//
// # Parsing
//
// Parse converts a text buffer containing one JSON object into a
// Document. The top level of a document must be an object; arrays and
// bare scalars are not valid documents in this grammar.
//
//	doc, err := jayceon.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// For settings other than the defaults, construct a Parser and
// configure it before calling its Parse method:
//
//	var p jayceon.Parser
//	p.AllowComments(false)
//	doc, err := p.Parse(data)
//
// By default the parser treats C++ style comments (// ... and
// /* ... */) as whitespace and ignores input remaining after the
// closing brace of the root object.
//
// # Accessors
//
// A Document owns a tree of Value nodes reached from its root object.
// Values are inspected through narrowing accessors, each of which
// reports whether the value has the requested type:
//
//	if n, ok := doc.Root().Find("count").Number(); ok {
//	   log.Printf("count is %v", n)
//	}
//
// Object members are kept sorted by key in byte order, so keyed lookup
// is logarithmic and positional access enumerates members in sorted
// key order.
//
// Accessors never modify the tree, and a parsed Document shares no
// storage with the input buffer. The tree may be read concurrently,
// but no mutation after parsing is supported.
//
// # Limitations
//
// Unicode \uXXXX string escapes are not supported and fail the parse.
// Nesting depth is bounded only by the goroutine stack.
package jayceon
