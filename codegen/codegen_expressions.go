/*
File    : go-minic/codegen/codegen_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/parser"
	"github.com/akashmaji946/go-minic/types"
)

// genExpression emits code that leaves the expression's result in the
// accumulator: %eax for 32-bit values, %rax for pointers and addresses.
func (cg *CodeGenerator) genExpression(expr parser.ExpressionNode) error {
	switch e := expr.(type) {
	case *parser.IntegerLiteralExpressionNode:
		cg.emit("movl $%d, %%eax", e.Value)
		return nil
	case *parser.StringLiteralExpressionNode:
		label := cg.internString(e.Value)
		cg.emit("leaq %s(%%rip), %%rax", label)
		return nil
	case *parser.IdentifierExpressionNode:
		return cg.genIdentifier(e)
	case *parser.UnaryExpressionNode:
		return cg.genUnary(e)
	case *parser.AddressOfExpressionNode:
		return cg.genAddress(e.Right)
	case *parser.BinaryExpressionNode:
		return cg.genBinary(e)
	case *parser.IndexExpressionNode:
		return cg.genIndexRead(e)
	case *parser.CallExpressionNode:
		return cg.genCall(e)
	case *parser.AssignmentExpressionNode:
		return cg.genAssignment(e)
	}
	return &CodegenError{Message: "unsupported expression"}
}

// genIdentifier loads a named value into the accumulator. The load
// depends on the declared type: arrays decay to their address (leaq),
// pointers load 8 bytes, char loads sign-extend, int loads 4 bytes.
// Globals are addressed %rip-relative.
func (cg *CodeGenerator) genIdentifier(e *parser.IdentifierExpressionNode) error {
	if sym, ok := cg.locals[e.Name]; ok {
		switch {
		case sym.Type.IsArray:
			cg.emit("leaq %d(%%rbp), %%rax", sym.Offset)
		case sym.Type.IsPointer:
			cg.emit("movq %d(%%rbp), %%rax", sym.Offset)
		case sym.Type.Base == types.CharType:
			cg.emit("movsbl %d(%%rbp), %%eax", sym.Offset)
		default:
			cg.emit("movl %d(%%rbp), %%eax", sym.Offset)
		}
		return nil
	}

	if glob, ok := cg.globals[e.Name]; ok {
		switch {
		case glob.Type.IsArray:
			cg.emit("leaq %s(%%rip), %%rax", e.Name)
		case glob.Type.IsPointer:
			cg.emit("movq %s(%%rip), %%rax", e.Name)
		case glob.Type.Base == types.CharType:
			cg.emit("movsbl %s(%%rip), %%eax", e.Name)
		default:
			cg.emit("movl %s(%%rip), %%eax", e.Name)
		}
		return nil
	}

	return &CodegenError{Message: "undefined identifier " + e.Name}
}

// genUnary emits the prefix operators: arithmetic negation, logical
// not, and pointer dereference.
func (cg *CodeGenerator) genUnary(e *parser.UnaryExpressionNode) error {
	switch e.Operation.Type {
	case lexer.MINUS_OP:
		if err := cg.genExpression(e.Right); err != nil {
			return err
		}
		cg.emit("negl %%eax")
		return nil
	case lexer.NOT_OP:
		if err := cg.genExpression(e.Right); err != nil {
			return err
		}
		cg.emit("cmpl $0, %%eax")
		cg.emit("sete %%al")
		cg.emit("movzbl %%al, %%eax")
		return nil
	case lexer.MUL_OP:
		// Dereference: the operand evaluates to an address in %rax
		if err := cg.genExpression(e.Right); err != nil {
			return err
		}
		if cg.exprType(e.Right).Base == types.CharType {
			cg.emit("movsbl (%%rax), %%eax")
		} else {
			cg.emit("movl (%%rax), %%eax")
		}
		return nil
	}
	return &CodegenError{Message: "unsupported unary operator " + e.Operation.Literal}
}

// genAddress leaves the address of an lvalue in %rax. Address-of works
// on identifiers, indexed accesses, and dereferences (where &*p is p).
func (cg *CodeGenerator) genAddress(expr parser.ExpressionNode) error {
	switch e := expr.(type) {
	case *parser.IdentifierExpressionNode:
		if sym, ok := cg.locals[e.Name]; ok {
			cg.emit("leaq %d(%%rbp), %%rax", sym.Offset)
			return nil
		}
		if _, ok := cg.globals[e.Name]; ok {
			cg.emit("leaq %s(%%rip), %%rax", e.Name)
			return nil
		}
		return &CodegenError{Message: "undefined identifier " + e.Name}
	case *parser.IndexExpressionNode:
		return cg.genIndexAddress(e)
	case *parser.UnaryExpressionNode:
		if e.Operation.Type == lexer.MUL_OP {
			return cg.genExpression(e.Right)
		}
	}
	return &CodegenError{Message: "cannot take the address of this expression"}
}

// genIndexAddress leaves the address of a[i] in %rax:
// evaluate the base address, park it, evaluate the index, sign-extend
// it to 64 bits, scale it by the element size, and add the base back.
// The base must be an array, a pointer, or a global array; arrays decay
// via leaq, pointers load their stored address.
func (cg *CodeGenerator) genIndexAddress(e *parser.IndexExpressionNode) error {
	baseType := cg.exprType(e.Array)
	if !baseType.IsArray && !baseType.IsPointer {
		return &CodegenError{Message: "indexed expression is not an array or pointer"}
	}

	if err := cg.genExpression(e.Array); err != nil {
		return err
	}
	cg.emit("pushq %%rax")

	if err := cg.genExpression(e.Index); err != nil {
		return err
	}
	cg.emit("movslq %%eax, %%rax")
	// Scale: char elements need no shift, int elements are 4 bytes
	if baseType.BaseSize() == 4 {
		cg.emit("shlq $2, %%rax")
	}

	cg.emit("popq %%rcx")
	cg.emit("addq %%rcx, %%rax")
	return nil
}

// genIndexRead loads the element at a[i] into the accumulator,
// sign-extending char elements.
func (cg *CodeGenerator) genIndexRead(e *parser.IndexExpressionNode) error {
	if err := cg.genIndexAddress(e); err != nil {
		return err
	}
	if cg.exprType(e.Array).Base == types.CharType {
		cg.emit("movsbl (%%rax), %%eax")
	} else {
		cg.emit("movl (%%rax), %%eax")
	}
	return nil
}

// genBinary emits a binary operation. The logical operators short
// circuit; everything else evaluates the right operand first, parks it
// on the stack, evaluates the left operand, and pops the right side
// into %rcx, leaving left in %eax and right in %ecx.
func (cg *CodeGenerator) genBinary(e *parser.BinaryExpressionNode) error {
	switch e.Operation.Type {
	case lexer.AND_OP:
		return cg.genLogicalAnd(e)
	case lexer.OR_OP:
		return cg.genLogicalOr(e)
	}

	if err := cg.genExpression(e.Right); err != nil {
		return err
	}
	cg.emit("pushq %%rax")
	if err := cg.genExpression(e.Left); err != nil {
		return err
	}
	cg.emit("popq %%rcx")

	switch e.Operation.Type {
	case lexer.PLUS_OP:
		cg.emit("addl %%ecx, %%eax")
	case lexer.MINUS_OP:
		cg.emit("subl %%ecx, %%eax")
	case lexer.MUL_OP:
		cg.emit("imull %%ecx, %%eax")
	case lexer.DIV_OP:
		cg.emit("cltd")
		cg.emit("idivl %%ecx")
	case lexer.MOD_OP:
		cg.emit("cltd")
		cg.emit("idivl %%ecx")
		cg.emit("movl %%edx, %%eax")
	case lexer.LT_OP:
		cg.genCompare("setl")
	case lexer.GT_OP:
		cg.genCompare("setg")
	case lexer.LE_OP:
		cg.genCompare("setle")
	case lexer.GE_OP:
		cg.genCompare("setge")
	case lexer.EQ_OP:
		cg.genCompare("sete")
	case lexer.NE_OP:
		cg.genCompare("setne")
	default:
		return &CodegenError{Message: "unsupported binary operator " + e.Operation.Literal}
	}
	return nil
}

// genCompare emits the relational tail: with left in %eax and right in
// %ecx, cmpl %ecx, %eax computes left - right, so the condition codes
// reflect left OP right. The boolean lands in %eax as 0 or 1.
func (cg *CodeGenerator) genCompare(setInstr string) {
	cg.emit("cmpl %%ecx, %%eax")
	cg.emit("%s %%al", setInstr)
	cg.emit("movzbl %%al, %%eax")
}

// genLogicalAnd emits short-circuit &&: the right operand is not
// evaluated when the left one is zero. The result is the boolean 0 or
// 1, not the short-circuited operand.
func (cg *CodeGenerator) genLogicalAnd(e *parser.BinaryExpressionNode) error {
	falseLabel := cg.newLabel("false")
	endLabel := cg.newLabel("end")

	if err := cg.genExpression(e.Left); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")
	cg.emit("je %s", falseLabel)

	if err := cg.genExpression(e.Right); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")
	cg.emit("je %s", falseLabel)

	cg.emit("movl $1, %%eax")
	cg.emit("jmp %s", endLabel)
	cg.emitLabel(falseLabel)
	cg.emit("movl $0, %%eax")
	cg.emitLabel(endLabel)
	return nil
}

// genLogicalOr emits short-circuit ||: the right operand is not
// evaluated when the left one is non-zero.
func (cg *CodeGenerator) genLogicalOr(e *parser.BinaryExpressionNode) error {
	trueLabel := cg.newLabel("true")
	endLabel := cg.newLabel("end")

	if err := cg.genExpression(e.Left); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")
	cg.emit("jne %s", trueLabel)

	if err := cg.genExpression(e.Right); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")
	cg.emit("jne %s", trueLabel)

	cg.emit("movl $0, %%eax")
	cg.emit("jmp %s", endLabel)
	cg.emitLabel(trueLabel)
	cg.emit("movl $1, %%eax")
	cg.emitLabel(endLabel)
	return nil
}

// genCall emits a function call. Arguments are evaluated right to left
// and pushed; they are then popped into the argument registers left to
// right, which keeps the stack balanced and therefore 16-byte-aligned
// at the call. %eax is zeroed before the call because the System V ABI
// requires %al to hold the vector-register count for variadic callees
// such as printf.
func (cg *CodeGenerator) genCall(e *parser.CallExpressionNode) error {
	if len(e.Arguments) > len(argRegisters) {
		return &CodegenError{Message: "call to " + e.Name + " passes more than six arguments"}
	}

	for i := len(e.Arguments) - 1; i >= 0; i-- {
		if err := cg.genExpression(e.Arguments[i]); err != nil {
			return err
		}
		cg.emit("pushq %%rax")
	}
	for i := 0; i < len(e.Arguments); i++ {
		cg.emit("popq %s", argRegisters[i])
	}

	cg.emit("movl $0, %%eax")
	cg.emit("call %s", e.Name)
	return nil
}

// genAssignment emits an assignment. Three lvalue forms are supported:
// a named variable, an indexed element, and a dereferenced pointer.
// The assigned value stays in the accumulator afterwards, which is what
// makes chains like a = b = 1 work.
func (cg *CodeGenerator) genAssignment(e *parser.AssignmentExpressionNode) error {
	switch target := e.Target.(type) {
	case *parser.IdentifierExpressionNode:
		return cg.genAssignToIdent(target, e.Value)
	case *parser.IndexExpressionNode:
		return cg.genAssignThroughAddress(e.Value, func() error { return cg.genIndexAddress(target) },
			cg.exprType(target.Array).Base)
	case *parser.UnaryExpressionNode:
		if target.Operation.Type == lexer.MUL_OP {
			return cg.genAssignThroughAddress(e.Value, func() error { return cg.genExpression(target.Right) },
				cg.exprType(target.Right).Base)
		}
	}
	return &CodegenError{Message: "invalid lvalue in assignment"}
}

// genAssignToIdent stores the accumulator into a named variable with
// the width its declared type asks for. Arrays are not assignable.
func (cg *CodeGenerator) genAssignToIdent(target *parser.IdentifierExpressionNode, value parser.ExpressionNode) error {
	if err := cg.genExpression(value); err != nil {
		return err
	}

	if sym, ok := cg.locals[target.Name]; ok {
		if sym.Type.IsArray {
			return &CodegenError{Message: "cannot assign to array " + target.Name}
		}
		cg.storeToSlot(sym)
		return nil
	}

	if glob, ok := cg.globals[target.Name]; ok {
		switch {
		case glob.Type.IsArray:
			return &CodegenError{Message: "cannot assign to array " + target.Name}
		case glob.Type.IsPointer:
			cg.emit("movq %%rax, %s(%%rip)", target.Name)
		case glob.Type.Base == types.CharType:
			cg.emit("movb %%al, %s(%%rip)", target.Name)
		default:
			cg.emit("movl %%eax, %s(%%rip)", target.Name)
		}
		return nil
	}

	return &CodegenError{Message: "undefined identifier " + target.Name}
}

// genAssignThroughAddress stores through a computed address: the value
// is evaluated and parked, the target address lands in %rcx, the value
// is popped back, and the store width follows the element base type.
func (cg *CodeGenerator) genAssignThroughAddress(value parser.ExpressionNode, genAddr func() error, base types.BaseType) error {
	if err := cg.genExpression(value); err != nil {
		return err
	}
	cg.emit("pushq %%rax")

	if err := genAddr(); err != nil {
		return err
	}
	cg.emit("movq %%rax, %%rcx")
	cg.emit("popq %%rax")

	if base == types.CharType {
		cg.emit("movb %%al, (%%rcx)")
	} else {
		cg.emit("movl %%eax, (%%rcx)")
	}
	return nil
}
