/*
File    : go-minic/types/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package types defines the type model of the Mini-C language.
// A TypeSpec describes the declared type of a variable, parameter,
// function return value, or global. The language has three base types
// (int, char, void), a single level of pointer indirection, arrays of
// the base types, and a const qualifier.
package types

// BaseType identifies one of the three fundamental Mini-C types.
// It is defined as a string to allow for easy comparison and debugging.
type BaseType string

// BaseType Constants:
// These constants define all base types in the Mini-C language.
const (
	// IntType is the 4-byte signed integer type
	IntType BaseType = "int"
	// CharType is the 1-byte character type
	CharType BaseType = "char"
	// VoidType is the empty type used for value-less functions
	VoidType BaseType = "void"
)

// TypeSpec describes a complete Mini-C type: a base type plus the
// pointer, array, and const qualifiers.
//
// There is deliberately only one pointer bit: the language does not
// distinguish pointer-to-pointer from pointer, and the parser rejects
// declarations with more than one star.
//
// Fields:
//   - Base: The base type (int, char, or void)
//   - IsPointer: true for pointer types and decayed array parameters
//   - IsArray: true for array declarations (the element count lives on
//     the owning declaration node, not here)
//   - IsConst: true when the declaration carried the const qualifier
type TypeSpec struct {
	Base      BaseType // The underlying base type
	IsPointer bool     // Pointer to Base (or decayed array parameter)
	IsArray   bool     // Array of Base
	IsConst   bool     // const qualifier present
}

// Size returns the number of bytes a value of this type occupies.
// Pointers and arrays used as values (decayed addresses) are 8 bytes,
// int is 4, char is 1, and void is 0.
//
// Example:
//
//	TypeSpec{Base: IntType}.Size()                  -> 4
//	TypeSpec{Base: CharType, IsPointer: true}.Size() -> 8
func (t TypeSpec) Size() int {
	if t.IsPointer || t.IsArray {
		return 8
	}
	return t.BaseSize()
}

// BaseSize returns the size in bytes of the base type alone, ignoring
// pointer and array qualifiers. This is the element size used when
// scaling array indices and laying out array storage.
//
// Example:
//
//	TypeSpec{Base: CharType, IsArray: true}.BaseSize() -> 1
//	TypeSpec{Base: IntType, IsPointer: true}.BaseSize() -> 4
func (t TypeSpec) BaseSize() int {
	switch t.Base {
	case CharType:
		return 1
	case IntType:
		return 4
	}
	// void has no storage
	return 0
}

// String returns the C-like spelling of the type for diagnostics and
// AST printing, e.g. "const char*" or "int[]".
func (t TypeSpec) String() string {
	s := string(t.Base)
	if t.IsConst {
		s = "const " + s
	}
	if t.IsPointer {
		s += "*"
	}
	if t.IsArray {
		s += "[]"
	}
	return s
}
