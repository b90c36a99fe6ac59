/*
File    : go-minic/codegen/codegen_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"github.com/akashmaji946/go-minic/parser"
	"github.com/akashmaji946/go-minic/types"
)

// genStatement dispatches AST statement nodes to their code generation
// methods. This is the main router for statement-level emission.
func (cg *CodeGenerator) genStatement(stmt parser.StatementNode) error {
	switch s := stmt.(type) {
	case *parser.BlockStatementNode:
		for _, inner := range s.Statements {
			if err := cg.genStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *parser.ExpressionStatementNode:
		if s.Expr == nil {
			return nil
		}
		return cg.genExpression(s.Expr)
	case *parser.VarDeclStatementNode:
		return cg.genVarDecl(s)
	case *parser.IfStatementNode:
		return cg.genIf(s)
	case *parser.WhileStatementNode:
		return cg.genWhile(s)
	case *parser.ForStatementNode:
		return cg.genFor(s)
	case *parser.ReturnStatementNode:
		return cg.genReturn(s)
	}
	return &CodegenError{Message: "unsupported statement"}
}

// genVarDecl allocates frame storage for a local declaration and binds
// the name in the flat function scope. Offsets are assigned in the
// order declarations are visited; re-declaring a name rebinds it.
// A scalar initializer compiles like an assignment to the fresh slot.
func (cg *CodeGenerator) genVarDecl(decl *parser.VarDeclStatementNode) error {
	if decl.IsArrayDecl {
		if decl.Initializer != nil {
			return &CodegenError{Message: "array " + decl.Name + " cannot have an initializer"}
		}
		cg.allocArray(decl.Name, decl.Type, decl.ArraySize)
		return nil
	}

	sym := cg.allocScalar(decl.Name, decl.Type)
	if decl.Initializer == nil {
		return nil
	}

	if err := cg.genExpression(decl.Initializer); err != nil {
		return err
	}
	cg.storeToSlot(sym)
	return nil
}

// storeToSlot stores the accumulator into a local's frame slot with the
// width the declared type asks for: movb for char, movq for pointers,
// movl for int.
func (cg *CodeGenerator) storeToSlot(sym *Symbol) {
	switch {
	case sym.Type.IsPointer:
		cg.emit("movq %%rax, %d(%%rbp)", sym.Offset)
	case sym.Type.Base == types.CharType:
		cg.emit("movb %%al, %d(%%rbp)", sym.Offset)
	default:
		cg.emit("movl %%eax, %d(%%rbp)", sym.Offset)
	}
}

// genIf emits a conditional:
//
//	<cond>; cmpl $0, %eax; je <else-or-end>
//	<then>; jmp <end>
//	<else-label>: <else>
//	<end-label>:
//
// The else label and the jump over the else branch appear only when an
// else branch exists.
func (cg *CodeGenerator) genIf(stmt *parser.IfStatementNode) error {
	endLabel := cg.newLabel("end")

	if err := cg.genExpression(stmt.Condition); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")

	if stmt.Else == nil {
		cg.emit("je %s", endLabel)
		if err := cg.genStatement(stmt.Then); err != nil {
			return err
		}
	} else {
		elseLabel := cg.newLabel("else")
		cg.emit("je %s", elseLabel)
		if err := cg.genStatement(stmt.Then); err != nil {
			return err
		}
		cg.emit("jmp %s", endLabel)
		cg.emitLabel(elseLabel)
		if err := cg.genStatement(stmt.Else); err != nil {
			return err
		}
	}

	cg.emitLabel(endLabel)
	return nil
}

// genWhile emits a while loop:
//
//	<begin-label>: <cond>; cmpl $0, %eax; je <end-label>
//	<body>; jmp <begin-label>
//	<end-label>:
func (cg *CodeGenerator) genWhile(stmt *parser.WhileStatementNode) error {
	beginLabel := cg.newLabel("begin")
	endLabel := cg.newLabel("end")

	cg.emitLabel(beginLabel)
	if err := cg.genExpression(stmt.Condition); err != nil {
		return err
	}
	cg.emit("cmpl $0, %%eax")
	cg.emit("je %s", endLabel)

	if err := cg.genStatement(stmt.Body); err != nil {
		return err
	}
	cg.emit("jmp %s", beginLabel)
	cg.emitLabel(endLabel)
	return nil
}

// genFor emits a C-style for loop. A missing condition is treated as
// always true, so "for (;;)" is an infinite loop only exitable by a
// return in the body.
//
//	<init>
//	<begin-label>: <cond>; cmpl $0, %eax; je <end-label>
//	<body>; <update>; jmp <begin-label>
//	<end-label>:
func (cg *CodeGenerator) genFor(stmt *parser.ForStatementNode) error {
	beginLabel := cg.newLabel("begin")
	endLabel := cg.newLabel("end")

	if stmt.Init != nil {
		if err := cg.genStatement(stmt.Init); err != nil {
			return err
		}
	}

	cg.emitLabel(beginLabel)
	if stmt.Condition != nil {
		if err := cg.genExpression(stmt.Condition); err != nil {
			return err
		}
		cg.emit("cmpl $0, %%eax")
		cg.emit("je %s", endLabel)
	}

	if err := cg.genStatement(stmt.Body); err != nil {
		return err
	}
	if stmt.Update != nil {
		if err := cg.genExpression(stmt.Update); err != nil {
			return err
		}
	}
	cg.emit("jmp %s", beginLabel)
	cg.emitLabel(endLabel)
	return nil
}

// genReturn emits a return: the value (zero when absent) lands in the
// accumulator, then leave unwinds the frame.
func (cg *CodeGenerator) genReturn(stmt *parser.ReturnStatementNode) error {
	if stmt.Value != nil {
		if err := cg.genExpression(stmt.Value); err != nil {
			return err
		}
	} else {
		cg.emit("movl $0, %%eax")
	}
	cg.emit("leave")
	cg.emit("ret")
	return nil
}
