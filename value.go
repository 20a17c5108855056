// Copyright (C) 2025 The JayceON Authors. All Rights Reserved.

package jayceon

import (
	"slices"
	"strings"
)

// kind discriminates the active payload of a Value.
type kind byte

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// A Value is a single JSON datum: null, a Boolean, a number, a string,
// an array, or an object. Exactly one payload is active at a time, and
// the narrowing accessors are the only way to reach it.
//
// All accessors are safe on a nil *Value and report a type mismatch,
// so lookups can be chained without an intermediate nil check:
//
//	b, ok := obj.Find("enabled").Bool()
//
// The zero Value is null.
type Value struct {
	kind kind
	b    bool
	num  float64
	str  string
	arr  Array
	obj  Object
}

// IsNull reports whether v is the null value.
func (v *Value) IsNull() bool { return v != nil && v.kind == kindNull }

// Bool returns the Boolean payload of v. It reports false if v is not
// a Boolean.
func (v *Value) Bool() (bool, bool) {
	if v == nil || v.kind != kindBool {
		return false, false
	}
	return v.b, true
}

// Number returns the numeric payload of v. It reports false if v is
// not a number.
func (v *Value) Number() (float64, bool) {
	if v == nil || v.kind != kindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload of v. It reports false if v is not a
// string.
func (v *Value) Text() (string, bool) {
	if v == nil || v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// Array returns the array payload of v. It reports false if v is not
// an array.
func (v *Value) Array() (*Array, bool) {
	if v == nil || v.kind != kindArray {
		return nil, false
	}
	return &v.arr, true
}

// Object returns the object payload of v. It reports false if v is not
// an object.
func (v *Value) Object() (*Object, bool) {
	if v == nil || v.kind != kindObject {
		return nil, false
	}
	return &v.obj, true
}

// An Array is an ordered sequence of values. Insertion order is
// preserved and is the only order.
type Array struct {
	values []Value
}

// Len reports the number of values in a.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// At returns the value at offset i, or nil if i is out of range.
func (a *Array) At(i int) *Value {
	if a == nil || i < 0 || i >= len(a.values) {
		return nil
	}
	return &a.values[i]
}

// add appends v, growing storage by the fixed increment when full.
func (a *Array) add(v Value, growth int) {
	if len(a.values) == cap(a.values) {
		vs := make([]Value, len(a.values), cap(a.values)+growth)
		copy(vs, a.values)
		a.values = vs
	}
	a.values = append(a.values, v)
}

// A member is a single key-value pair belonging to an Object.
type member struct {
	key   string
	value Value
}

// An Object is a collection of key-value members, stored in sorted
// order by key. Keys are unique; the order is byte-lexicographic.
type Object struct {
	members []member
}

// Len reports the number of members in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Find returns the value of the member of o with the given key, or nil
// if no such member exists.
func (o *Object) Find(key string) *Value {
	if o == nil {
		return nil
	}
	i, ok := o.search(key)
	if !ok {
		return nil
	}
	return &o.members[i].value
}

// At returns the key and value of the member at offset i in sorted key
// order. It returns "", nil if i is out of range.
func (o *Object) At(i int) (string, *Value) {
	if o == nil || i < 0 || i >= len(o.members) {
		return "", nil
	}
	return o.members[i].key, &o.members[i].value
}

// search locates key among the sorted members of o. It returns the
// position of the member with that key, or the position where such a
// member would be inserted.
func (o *Object) search(key string) (int, bool) {
	return slices.BinarySearchFunc(o.members, key, func(m member, key string) int {
		return strings.Compare(m.key, key)
	})
}

// insert places key and v at their sorted position, shifting later
// members right by one slot and growing storage by the fixed increment
// when full. It reports false without modifying o if a member with the
// same key is already present.
func (o *Object) insert(key string, v Value, growth int) bool {
	i, ok := o.search(key)
	if ok {
		return false
	}
	if len(o.members) == cap(o.members) {
		ms := make([]member, len(o.members), cap(o.members)+growth)
		copy(ms, o.members)
		o.members = ms
	}
	o.members = append(o.members, member{})
	copy(o.members[i+1:], o.members[i:])
	o.members[i] = member{key: key, value: v}
	return true
}

// A Document is the result of a successful parse. It owns a tree of
// values rooted at a single object; nothing in the tree is shared with
// any other document or with the input the document was parsed from.
type Document struct {
	root Object
}

// Root returns the root object of the document. It cannot fail.
func (d *Document) Root() *Object { return &d.root }
