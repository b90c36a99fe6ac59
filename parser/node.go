/*
File    : go-minic/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/types"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or analysis
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Declaration visitors - handle top-level declarations
	VisitFunctionProtoNode(node FunctionProtoNode) // Function prototypes: int f(int x);
	VisitFunctionDeclNode(node FunctionDeclNode)   // Function definitions: int f(int x) { ... }
	VisitGlobalVarDeclNode(node GlobalVarDeclNode) // Global variables: int g; int a[10];

	// Statement visitors - handle executable constructs
	VisitBlockStatementNode(node BlockStatementNode)           // Code blocks: { stmt1; stmt2; }
	VisitExpressionStatementNode(node ExpressionStatementNode) // Expression statements: f(x);
	VisitIfStatementNode(node IfStatementNode)                 // Conditionals: if (cond) { ... } else { ... }
	VisitForStatementNode(node ForStatementNode)               // For loops: for (init; cond; update) { ... }
	VisitWhileStatementNode(node WhileStatementNode)           // While loops: while (cond) { ... }
	VisitReturnStatementNode(node ReturnStatementNode)         // Return statements: return expr;
	VisitVarDeclStatementNode(node VarDeclStatementNode)       // Local declarations: int x; char buf[16];

	// Expression visitors - handle values and computations
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 'A'
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello"
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)         // Identifiers: x, myVar
	VisitBinaryExpressionNode(node BinaryExpressionNode)                 // Binary operations: +, -, *, /, %, <, ==, &&, ...
	VisitUnaryExpressionNode(node UnaryExpressionNode)                   // Unary operations: -, !, * (dereference)
	VisitAddressOfExpressionNode(node AddressOfExpressionNode)           // Address-of: &x, &a[i]
	VisitIndexExpressionNode(node IndexExpressionNode)                   // Array indexing: a[i]
	VisitCallExpressionNode(node CallExpressionNode)                     // Function calls: f(a, b)
	VisitAssignmentExpressionNode(node AssignmentExpressionNode)         // Assignments: x = v, a[i] = v, *p = v
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// DeclarationNode: base interface for all top-level declaration nodes.
// Declarations, statements, and expressions are three disjoint sets.
type DeclarationNode interface {
	Node
	Declaration()
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Declarations: the top-level declarations of the translation unit, in source order
type RootNode struct {
	Declarations []DeclarationNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, decl := range root.Declarations {
		sb.WriteString(decl.Literal())
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// ParamNode: a single function parameter (type, name).
// An array parameter `T name[]` decays: its type carries IsPointer.
type ParamNode struct {
	Type types.TypeSpec // Declared (possibly decayed) parameter type
	Name string         // Parameter name
}

// ParamNode.Literal(): string representation like "int x"
func (node *ParamNode) Literal() string {
	return node.Type.String() + " " + node.Name
}

// FunctionProtoNode: a function prototype with no body.
// Example: int binary_search(int arr[], int n, int key);
type FunctionProtoNode struct {
	Token      lexer.Token    // The name token, for position info
	ReturnType types.TypeSpec // Declared return type
	Name       string         // Function name
	Params     []*ParamNode   // Parameter list, in source order
}

// FunctionProtoNode.Literal(): string representation of the prototype
func (node *FunctionProtoNode) Literal() string {
	return signatureLiteral(node.ReturnType, node.Name, node.Params) + ";"
}

// FunctionProtoNode.Accept(): accepts a visitor
func (node *FunctionProtoNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionProtoNode(*node)
}

// FunctionProtoNode.Declaration(): marker method
func (node *FunctionProtoNode) Declaration() {

}

// FunctionDeclNode: a function definition with a body.
// Example: int main() { return 0; }
type FunctionDeclNode struct {
	Token      lexer.Token         // The name token, for position info
	ReturnType types.TypeSpec      // Declared return type
	Name       string              // Function name
	Params     []*ParamNode        // Parameter list, in source order
	Body       *BlockStatementNode // Function body, never nil
}

// FunctionDeclNode.Literal(): string representation of the definition
func (node *FunctionDeclNode) Literal() string {
	return signatureLiteral(node.ReturnType, node.Name, node.Params) + " " + node.Body.Literal()
}

// FunctionDeclNode.Accept(): accepts a visitor
func (node *FunctionDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionDeclNode(*node)
}

// FunctionDeclNode.Declaration(): marker method
func (node *FunctionDeclNode) Declaration() {

}

// GlobalVarDeclNode: a global variable or array declaration.
// Example: int side; int nums[5];
type GlobalVarDeclNode struct {
	Token       lexer.Token    // The name token, for position info
	Type        types.TypeSpec // Declared type
	Name        string         // Variable name
	IsArrayDecl bool           // true when declared with [N]
	ArraySize   int64          // Element count for array declarations
	Initializer ExpressionNode // Optional initializer, nil when absent
}

// GlobalVarDeclNode.Literal(): string representation of the declaration
func (node *GlobalVarDeclNode) Literal() string {
	return varDeclLiteral(node.Type, node.Name, node.IsArrayDecl, node.ArraySize, node.Initializer)
}

// GlobalVarDeclNode.Accept(): accepts a visitor
func (node *GlobalVarDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitGlobalVarDeclNode(*node)
}

// GlobalVarDeclNode.Declaration(): marker method
func (node *GlobalVarDeclNode) Declaration() {

}

// BlockStatementNode: a brace-delimited sequence of statements.
// Example: { int x; x = 1; }
type BlockStatementNode struct {
	Token      lexer.Token // The '{' token, for position info
	Statements []StatementNode
}

// BlockStatementNode.Literal(): string representation of the block
func (node *BlockStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

// BlockStatementNode.Statement(): marker method
func (node *BlockStatementNode) Statement() {

}

// ExpressionStatementNode: an expression evaluated for its side effect,
// or a bare ';' (Expr is nil in that case).
// Example: puts("hi");
type ExpressionStatementNode struct {
	Token lexer.Token    // First token of the statement, for position info
	Expr  ExpressionNode // The expression, or nil for a null statement
}

// ExpressionStatementNode.Literal(): string representation of the statement
func (node *ExpressionStatementNode) Literal() string {
	if node.Expr == nil {
		return ";"
	}
	return node.Expr.Literal() + ";"
}

// ExpressionStatementNode.Accept(): accepts a visitor
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

// ExpressionStatementNode.Statement(): marker method
func (node *ExpressionStatementNode) Statement() {

}

// IfStatementNode: a conditional with an optional else branch.
// Example: if (x > 5) return 1; else return 2;
type IfStatementNode struct {
	Token     lexer.Token    // The 'if' token, for position info
	Condition ExpressionNode // Controlling condition
	Then      StatementNode  // Taken when the condition is non-zero
	Else      StatementNode  // Optional, nil when absent
}

// IfStatementNode.Literal(): string representation of the conditional
func (node *IfStatementNode) Literal() string {
	s := "if (" + node.Condition.Literal() + ") " + node.Then.Literal()
	if node.Else != nil {
		s += " else " + node.Else.Literal()
	}
	return s
}

// IfStatementNode.Accept(): accepts a visitor
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(*node)
}

// IfStatementNode.Statement(): marker method
func (node *IfStatementNode) Statement() {

}

// ForStatementNode: a C-style for loop. All three clauses are optional;
// a missing condition means the loop runs until a return.
// Example: for (i = 0; i < n; i = i + 1) { ... }
type ForStatementNode struct {
	Token     lexer.Token    // The 'for' token, for position info
	Init      StatementNode  // Declaration or expression statement, nil when absent
	Condition ExpressionNode // Loop condition, nil when absent (always true)
	Update    ExpressionNode // Update expression, nil when absent
	Body      StatementNode  // Loop body
}

// ForStatementNode.Literal(): string representation of the loop
func (node *ForStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("for (")
	if node.Init != nil {
		sb.WriteString(node.Init.Literal())
	} else {
		sb.WriteString(";")
	}
	sb.WriteString(" ")
	if node.Condition != nil {
		sb.WriteString(node.Condition.Literal())
	}
	sb.WriteString("; ")
	if node.Update != nil {
		sb.WriteString(node.Update.Literal())
	}
	sb.WriteString(") ")
	sb.WriteString(node.Body.Literal())
	return sb.String()
}

// ForStatementNode.Accept(): accepts a visitor
func (node *ForStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitForStatementNode(*node)
}

// ForStatementNode.Statement(): marker method
func (node *ForStatementNode) Statement() {

}

// WhileStatementNode: a while loop.
// Example: while (i < n) { ... }
type WhileStatementNode struct {
	Token     lexer.Token    // The 'while' token, for position info
	Condition ExpressionNode // Controlling condition
	Body      StatementNode  // Loop body
}

// WhileStatementNode.Literal(): string representation of the loop
func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

// WhileStatementNode.Accept(): accepts a visitor
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(*node)
}

// WhileStatementNode.Statement(): marker method
func (node *WhileStatementNode) Statement() {

}

// ReturnStatementNode: a return with an optional value.
// Example: return x + 1; or return;
type ReturnStatementNode struct {
	Token lexer.Token    // The 'return' token, for position info
	Value ExpressionNode // Returned expression, nil when absent
}

// ReturnStatementNode.Literal(): string representation of the statement
func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

// ReturnStatementNode.Statement(): marker method
func (node *ReturnStatementNode) Statement() {

}

// VarDeclStatementNode: a local variable or array declaration.
// Locals share one flat scope per function.
// Example: int x; char buf[16]; int y = 5;
type VarDeclStatementNode struct {
	Token       lexer.Token    // The name token, for position info
	Type        types.TypeSpec // Declared type
	Name        string         // Variable name
	IsArrayDecl bool           // true when declared with [N]
	ArraySize   int64          // Element count for array declarations
	Initializer ExpressionNode // Optional initializer, nil when absent
}

// VarDeclStatementNode.Literal(): string representation of the declaration
func (node *VarDeclStatementNode) Literal() string {
	return varDeclLiteral(node.Type, node.Name, node.IsArrayDecl, node.ArraySize, node.Initializer)
}

// VarDeclStatementNode.Accept(): accepts a visitor
func (node *VarDeclStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarDeclStatementNode(*node)
}

// VarDeclStatementNode.Statement(): marker method
func (node *VarDeclStatementNode) Statement() {

}

// There can be many types of ExpressionNodes
// IntegerLiteralExpressionNode: represents an integer number literal.
// Character literals arrive here too, already decoded to their byte value.
// Example: 42, 0, 'A'
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal value
	Value int64       // The decoded integer value
}

// IntegerLiteralExpressionNode.Literal(): string representation of the node
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Accept(): accepts a visitor
func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

// IntegerLiteralExpressionNode.Expression(): marker method
func (node *IntegerLiteralExpressionNode) Expression() {

}

// StringLiteralExpressionNode: represents a string literal.
// The Value holds the decoded bytes; the code generator pools them
// under a unique .str<N> label in the read-only data section.
// Example: "hello"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token
	Value string      // The decoded string bytes
}

// StringLiteralExpressionNode.Literal(): string representation of the node
func (node *StringLiteralExpressionNode) Literal() string {
	return "\"" + node.Value + "\""
}

// StringLiteralExpressionNode.Accept(): accepts a visitor
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(*node)
}

// StringLiteralExpressionNode.Expression(): marker method
func (node *StringLiteralExpressionNode) Expression() {

}

// IdentifierExpressionNode: represents a variable or function name in
// expression position.
// Example: x, nums, main
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Accept(): accepts a visitor
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

// IdentifierExpressionNode.Expression(): marker method
func (node *IdentifierExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary operation expression with two operands
// Example: 2 + 3, x * y, a < b, p && q
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+, -, *, /, %, <, ==, &&, ...)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

// BinaryExpressionNode.Expression(): marker method
func (node *BinaryExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a unary operation with one operand.
// The operator is '-' (negation), '!' (logical not), or '*' (dereference).
// Example: -x, !done, *p
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Right.Literal() + ")"
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

// UnaryExpressionNode.Expression(): marker method
func (node *UnaryExpressionNode) Expression() {

}

// AddressOfExpressionNode: represents the address-of operator.
// Example: &x, &a[i]
type AddressOfExpressionNode struct {
	Token lexer.Token    // The '&' token
	Right ExpressionNode // The operand whose address is taken
}

// AddressOfExpressionNode.Literal(): string representation of the node
func (node *AddressOfExpressionNode) Literal() string {
	return "(&" + node.Right.Literal() + ")"
}

// AddressOfExpressionNode.Accept(): accepts a visitor
func (node *AddressOfExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAddressOfExpressionNode(*node)
}

// AddressOfExpressionNode.Expression(): marker method
func (node *AddressOfExpressionNode) Expression() {

}

// IndexExpressionNode: represents an array/pointer indexing expression.
// The Array operand must evaluate to an address; the code generator
// enforces this by inspection at the use site.
// Example: a[i], p[0]
type IndexExpressionNode struct {
	Token lexer.Token    // The '[' token
	Array ExpressionNode // The indexed array or pointer expression
	Index ExpressionNode // The index expression
}

// IndexExpressionNode.Literal(): string representation of the node
func (node *IndexExpressionNode) Literal() string {
	return node.Array.Literal() + "[" + node.Index.Literal() + "]"
}

// IndexExpressionNode.Accept(): accepts a visitor
func (node *IndexExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIndexExpressionNode(*node)
}

// IndexExpressionNode.Expression(): marker method
func (node *IndexExpressionNode) Expression() {

}

// CallExpressionNode: represents a function call. The callee is always a
// bare identifier; calling anything else is a parse error.
// Example: puts("hi"), binary_search(nums, 5, 3)
type CallExpressionNode struct {
	Token     lexer.Token      // The callee identifier token
	Name      string           // The callee name
	Arguments []ExpressionNode // Argument expressions, in source order
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Name + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

// CallExpressionNode.Expression(): marker method
func (node *CallExpressionNode) Expression() {

}

// AssignmentExpressionNode: represents an assignment. Any expression is
// accepted as the target at parse time; lvalue checking is deferred to
// code generation, which accepts identifiers, indexed accesses, and
// dereferences.
// Example: x = 10, a[i] = v, *p = v, a = b = 1
type AssignmentExpressionNode struct {
	Token  lexer.Token    // The '=' token
	Target ExpressionNode // The assignment target (checked during codegen)
	Value  ExpressionNode // The assigned value
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return "(" + node.Target.Literal() + " = " + node.Value.Literal() + ")"
}

// AssignmentExpressionNode.Accept(): accepts a visitor
func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(*node)
}

// AssignmentExpressionNode.Expression(): marker method
func (node *AssignmentExpressionNode) Expression() {

}

// signatureLiteral renders a function signature like "int f(int x, char* s)".
func signatureLiteral(ret types.TypeSpec, name string, params []*ParamNode) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.Literal())
	}
	return ret.String() + " " + name + "(" + strings.Join(parts, ", ") + ")"
}

// varDeclLiteral renders a variable declaration like "int a[5];" or "int x = 1;".
// The array suffix is printed after the name, C-style, so the type
// spelling drops its own array marker.
func varDeclLiteral(t types.TypeSpec, name string, isArray bool, size int64, init ExpressionNode) string {
	base := types.TypeSpec{Base: t.Base, IsPointer: t.IsPointer, IsConst: t.IsConst}
	s := base.String() + " " + name
	if isArray {
		s += "[" + strconv.FormatInt(size, 10) + "]"
	}
	if init != nil {
		s += " = " + init.Literal()
	}
	return s + ";"
}
