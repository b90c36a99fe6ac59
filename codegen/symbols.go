/*
File    : go-minic/codegen/symbols.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/parser"
	"github.com/akashmaji946/go-minic/types"
)

// Symbol records one local variable (or spilled parameter) of the
// function currently being generated.
//
// Fields:
//   - Offset: Frame offset relative to %rbp; always negative
//   - Type: The declared type
//   - ArraySize: Element count for array locals, 0 for scalars
type Symbol struct {
	Offset    int            // Frame offset from %rbp (negative)
	Type      types.TypeSpec // Declared type
	ArraySize int64          // Element count for arrays, 0 for scalars
}

// GlobalInfo records one global variable registered by the pre-pass.
//
// Fields:
//   - Type: The declared type
//   - ArraySize: Element count for array globals, 0 for scalars
type GlobalInfo struct {
	Type      types.TypeSpec // Declared type
	ArraySize int64          // Element count for arrays, 0 for scalars
}

// FuncInfo records one function signature registered by the pre-pass,
// from either a prototype or a definition. It makes forward references
// work: bodies can call functions declared later in the file.
type FuncInfo struct {
	Name       string              // Function name
	ReturnType types.TypeSpec      // Declared return type
	Params     []*parser.ParamNode // Declared parameters
}

// enterFunction resets the per-function symbol state: the flat local
// map and the accumulated stack size. Every function body starts with
// a fresh environment containing only its parameters (spilled by the
// caller of this method).
func (cg *CodeGenerator) enterFunction() {
	cg.locals = make(map[string]*Symbol)
	cg.stackSize = 0
}

// allocScalar reserves an 8-byte frame slot for a scalar local or a
// spilled parameter and binds the name in the flat local map. All
// scalars get uniform 8-byte slots regardless of declared size; char
// values are stored with movb at the slot's low byte and read back
// with movsbl.
//
// Re-declaring a name overwrites the previous binding: the function
// scope is deliberately flat and the last writer wins.
//
// Returns the new symbol.
func (cg *CodeGenerator) allocScalar(name string, t types.TypeSpec) *Symbol {
	cg.stackSize += 8
	sym := &Symbol{Offset: -cg.stackSize, Type: t}
	cg.locals[name] = sym
	return sym
}

// allocArray reserves frame storage for an array local: element size
// times element count, with the slot aligned to 16 bytes at allocation
// time. The symbol's offset points at the first element.
//
// Returns the new symbol.
func (cg *CodeGenerator) allocArray(name string, t types.TypeSpec, count int64) *Symbol {
	size := int(int64(t.BaseSize()) * count)
	cg.stackSize += size
	cg.stackSize = alignTo(cg.stackSize, 16)
	sym := &Symbol{Offset: -cg.stackSize, Type: t, ArraySize: count}
	cg.locals[name] = sym
	return sym
}

// frameSize computes the total stack frame size of a function by a
// structural walk over its parameters and body, applying the same
// accounting as allocScalar/allocArray: 8 bytes per scalar (and per
// spilled parameter), element size times count per array with the
// running total aligned to 16 after each array. The result is rounded
// up to 16 so the frame keeps the stack aligned at call sites.
func frameSize(fn *parser.FunctionDeclNode) int {
	size := 8 * len(fn.Params)
	size = frameSizeOfStatement(fn.Body, size)
	return alignTo(size, 16)
}

// frameSizeOfStatement accumulates local storage for one statement,
// recursing into every construct that can hold declarations. The
// traversal order matches the emission order in the statement
// generator, so both walks agree on the total.
func frameSizeOfStatement(stmt parser.StatementNode, size int) int {
	switch s := stmt.(type) {
	case *parser.BlockStatementNode:
		for _, inner := range s.Statements {
			size = frameSizeOfStatement(inner, size)
		}
	case *parser.VarDeclStatementNode:
		if s.IsArrayDecl {
			size += int(int64(s.Type.BaseSize()) * s.ArraySize)
			size = alignTo(size, 16)
		} else {
			size += 8
		}
	case *parser.IfStatementNode:
		size = frameSizeOfStatement(s.Then, size)
		if s.Else != nil {
			size = frameSizeOfStatement(s.Else, size)
		}
	case *parser.WhileStatementNode:
		size = frameSizeOfStatement(s.Body, size)
	case *parser.ForStatementNode:
		if s.Init != nil {
			size = frameSizeOfStatement(s.Init, size)
		}
		size = frameSizeOfStatement(s.Body, size)
	}
	return size
}

// alignTo rounds n up to the next multiple of align.
func alignTo(n, align int) int {
	return (n + align - 1) / align * align
}

// exprType determines the static type of an expression as far as the
// generator needs it: to pick load/store widths and index scaling.
// Unknown identifiers report int here; the expression generator raises
// the undefined-identifier error at the use site.
func (cg *CodeGenerator) exprType(expr parser.ExpressionNode) types.TypeSpec {
	switch e := expr.(type) {
	case *parser.IntegerLiteralExpressionNode:
		return types.TypeSpec{Base: types.IntType}
	case *parser.StringLiteralExpressionNode:
		return types.TypeSpec{Base: types.CharType, IsPointer: true}
	case *parser.IdentifierExpressionNode:
		if sym, ok := cg.locals[e.Name]; ok {
			return sym.Type
		}
		if glob, ok := cg.globals[e.Name]; ok {
			return glob.Type
		}
		return types.TypeSpec{Base: types.IntType}
	case *parser.BinaryExpressionNode:
		return types.TypeSpec{Base: types.IntType}
	case *parser.UnaryExpressionNode:
		if e.Operation.Type == lexer.MUL_OP {
			// Dereference strips the pointer/array qualifier
			inner := cg.exprType(e.Right)
			return types.TypeSpec{Base: inner.Base}
		}
		return types.TypeSpec{Base: types.IntType}
	case *parser.AddressOfExpressionNode:
		inner := cg.exprType(e.Right)
		return types.TypeSpec{Base: inner.Base, IsPointer: true}
	case *parser.IndexExpressionNode:
		inner := cg.exprType(e.Array)
		return types.TypeSpec{Base: inner.Base}
	case *parser.CallExpressionNode:
		if fn, ok := cg.funcs[e.Name]; ok {
			return fn.ReturnType
		}
		return types.TypeSpec{Base: types.IntType}
	case *parser.AssignmentExpressionNode:
		return cg.exprType(e.Target)
	}
	return types.TypeSpec{Base: types.IntType}
}
