/*
File    : go-minic/main/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-minic/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that renders the AST as an indented tree.
// It implements parser.NodeVisitor; each Visit method prints one line
// for its node and recurses into the children with a deeper indent.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent indents the buffer by the current indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line prints one indented line for a node
func (p *PrintingVisitor) line(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// nested visits a child node one indent level deeper
func (p *PrintingVisitor) nested(node parser.Node) {
	p.Indent += INDENT_SIZE
	node.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node and all declarations below it
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.line("Program")
	for _, decl := range node.Declarations {
		p.nested(decl)
	}
}

// VisitFunctionProtoNode visits a function prototype
func (p *PrintingVisitor) VisitFunctionProtoNode(node parser.FunctionProtoNode) {
	p.line("FunctionProto [%s]", node.Literal())
}

// VisitFunctionDeclNode visits a function definition
func (p *PrintingVisitor) VisitFunctionDeclNode(node parser.FunctionDeclNode) {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Literal()
	}
	p.line("FunctionDecl %s %s(%s)", node.ReturnType.String(), node.Name, params)
	p.nested(node.Body)
}

// VisitGlobalVarDeclNode visits a global variable declaration
func (p *PrintingVisitor) VisitGlobalVarDeclNode(node parser.GlobalVarDeclNode) {
	p.line("GlobalVarDecl [%s]", node.Literal())
	if node.Initializer != nil {
		p.nested(node.Initializer)
	}
}

// VisitBlockStatementNode visits a block and the statements it holds
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.line("Block")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

// VisitExpressionStatementNode visits an expression statement
func (p *PrintingVisitor) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	if node.Expr == nil {
		p.line("ExprStmt (empty)")
		return
	}
	p.line("ExprStmt")
	p.nested(node.Expr)
}

// VisitIfStatementNode visits a conditional and its branches
func (p *PrintingVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	p.line("If")
	p.nested(node.Condition)
	p.nested(node.Then)
	if node.Else != nil {
		p.line("Else")
		p.nested(node.Else)
	}
}

// VisitForStatementNode visits a for loop and its clauses
func (p *PrintingVisitor) VisitForStatementNode(node parser.ForStatementNode) {
	p.line("For")
	if node.Init != nil {
		p.nested(node.Init)
	}
	if node.Condition != nil {
		p.nested(node.Condition)
	}
	if node.Update != nil {
		p.nested(node.Update)
	}
	p.nested(node.Body)
}

// VisitWhileStatementNode visits a while loop
func (p *PrintingVisitor) VisitWhileStatementNode(node parser.WhileStatementNode) {
	p.line("While")
	p.nested(node.Condition)
	p.nested(node.Body)
}

// VisitReturnStatementNode visits a return statement
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.line("Return")
	if node.Value != nil {
		p.nested(node.Value)
	}
}

// VisitVarDeclStatementNode visits a local variable declaration
func (p *PrintingVisitor) VisitVarDeclStatementNode(node parser.VarDeclStatementNode) {
	p.line("VarDecl [%s]", node.Literal())
	if node.Initializer != nil {
		p.nested(node.Initializer)
	}
}

// VisitIntegerLiteralExpressionNode visits an integer literal
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.line("Integer (%d)", node.Value)
}

// VisitStringLiteralExpressionNode visits a string literal
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.line("String (%q)", node.Value)
}

// VisitIdentifierExpressionNode visits an identifier
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.line("Identifier (%s)", node.Name)
}

// VisitBinaryExpressionNode visits a binary expression and its operands
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.line("Binary [%s]", node.Operation.Literal)
	p.nested(node.Left)
	p.nested(node.Right)
}

// VisitUnaryExpressionNode visits a unary expression and its operand
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.line("Unary [%s]", node.Operation.Literal)
	p.nested(node.Right)
}

// VisitAddressOfExpressionNode visits an address-of expression
func (p *PrintingVisitor) VisitAddressOfExpressionNode(node parser.AddressOfExpressionNode) {
	p.line("AddressOf")
	p.nested(node.Right)
}

// VisitIndexExpressionNode visits an index expression
func (p *PrintingVisitor) VisitIndexExpressionNode(node parser.IndexExpressionNode) {
	p.line("Index")
	p.nested(node.Array)
	p.nested(node.Index)
}

// VisitCallExpressionNode visits a call expression and its arguments
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.line("Call [%s]", node.Name)
	for _, arg := range node.Arguments {
		p.nested(arg)
	}
}

// VisitAssignmentExpressionNode visits an assignment expression
func (p *PrintingVisitor) VisitAssignmentExpressionNode(node parser.AssignmentExpressionNode) {
	p.line("Assign")
	p.nested(node.Target)
	p.nested(node.Value)
}

// String returns the string representation of the visitor
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
