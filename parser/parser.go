/*
File    : go-minic/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Mini-C language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax
Tree (AST). It handles:
- Top-level declarations (function prototypes, function definitions, globals)
- Statements (blocks, conditionals, loops, returns, local declarations)
- Expressions (assignment, short-circuit boolean, comparison, arithmetic,
  unary, indexing, calls)
- Operator precedence and associativity (following C)

Key Features:
- LL(1) grammar with a single token of lookahead (CurrToken/NextToken)
- Explicit precedence cascade: assignment -> logical-or -> logical-and ->
  equality -> comparison -> additive -> multiplicative -> unary -> postfix
- Fail-fast error policy: the first error aborts the parse
- Declaration disambiguation by the token after the identifier
  ('(' means function, anything else means global variable)

Each parse method is entered with CurrToken on the first token of its
construct and returns with CurrToken on the last token; the caller advances.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-minic/lexer"
)

// ParseError describes a syntactic failure: an unexpected token, an
// unexpected end of file, or a malformed declaration or expression.
// It carries the source position of the offending token.
//
// Fields:
//   - Line: Line number of the offending token (1-indexed)
//   - Column: Column number of the offending token (1-indexed)
//   - Message: Human-readable description of the failure
type ParseError struct {
	Line    int    // Line number in source (1-indexed)
	Column  int    // Column number in source (1-indexed)
	Message string // Description of the syntactic failure
}

// Error formats the syntactic failure with its source position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] PARSER ERROR: %s", e.Line, e.Column, e.Message)
}

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Mini-C source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// The first error encountered, lexical or syntactic.
	// The parse aborts as soon as this is non-empty (fail-fast);
	// the slice shape keeps the familiar HasErrors/GetErrors API.
	Errors []error
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Mini-C source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex:    lex,
		Errors: make([]error, 0),
	}

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()

	return par
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// A lexical error surfaced by the lexer is recorded once and aborts
// the parse like any other error.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
	if par.Lex.Err != nil && len(par.Errors) == 0 {
		par.Errors = append(par.Errors, par.Lex.Err)
	}
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a semicolon next,
// and if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it records an error.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		got := string(par.NextToken.Type)
		if par.NextToken.Type == lexer.EOF_TYPE {
			got = "unexpected EOF"
		}
		par.errorAt(par.NextToken, fmt.Sprintf("expected %s, got %s", expected, got))
		return false
	}
	return true
}

// errorAt records a ParseError at the position of the given token.
// Only the first error is kept; the parse is fail-fast.
//
// Parameters:
//
//	tok - The token whose position the error refers to
//	msg - The error message
func (par *Parser) errorAt(tok lexer.Token, msg string) {
	if len(par.Errors) > 0 {
		return
	}
	par.Errors = append(par.Errors, &ParseError{Line: tok.Line, Column: tok.Column, Message: msg})
}

// HasErrors returns true if a lexical or syntactic error occurred.
// This should be checked after parsing to determine if the parse was successful.
//
// Returns:
//
//	true if there is an error, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the errors collected during parsing.
// Because the parser is fail-fast, this contains at most one error,
// either a *lexer.LexError or a *ParseError.
//
// Returns:
//
//	A slice of errors
func (par *Parser) GetErrors() []error {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses top-level declarations until reaching the end of the
// file (EOF), building up a RootNode that represents the translation unit.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed declarations, or a
//	partial tree if an error aborted the parse (check HasErrors)
//
// Example:
//
//	par := NewParser("int main() { return 0; }")
//	root := par.Parse()
//	if par.HasErrors() { ... }
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all declarations
	root := &RootNode{}
	root.Declarations = make([]DeclarationNode, 0)

	// Parse declarations until we reach the end of file or an error
	for par.CurrToken.Type != lexer.EOF_TYPE && !par.HasErrors() {
		decl := par.parseDeclaration()
		if decl != nil {
			root.Declarations = append(root.Declarations, decl)
		}
		par.advance()
	}

	return root
}
