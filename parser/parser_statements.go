/*
File    : go-minic/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-minic/lexer"
)

// parseStatement parses one statement, dispatching on the first token:
// 'if', 'for', 'while', 'return', and '{' start their respective forms;
// a type keyword starts a local declaration; a bare ';' is a null
// expression statement; anything else is an expression statement.
//
// On entry CurrToken is the first token of the statement; on return
// CurrToken is its last token (usually ';' or '}').
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.SEMICOLON_DELIM:
		// A bare ';' is a null expression statement
		return &ExpressionStatementNode{Token: par.CurrToken}
	default:
		if lexer.TYPE_KEYWORDS[par.CurrToken.Type] {
			return par.parseVarDeclStatement()
		}
		return par.parseExpressionStatement()
	}
}

// parseBlockStatement parses a brace-delimited statement sequence.
//
// On entry CurrToken is '{'; on return CurrToken is '}'.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{
		Token:      par.CurrToken,
		Statements: make([]StatementNode, 0),
	}

	for par.NextToken.Type != lexer.RIGHT_BRACE && !par.HasErrors() {
		if par.NextToken.Type == lexer.EOF_TYPE {
			par.errorAt(par.NextToken, "unexpected EOF, missing '}'")
			return nil
		}
		par.advance() // onto the first token of the inner statement
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}

	if !par.expectAdvance(lexer.RIGHT_BRACE) {
		return nil
	}
	return block
}

// parseExpressionStatement parses an expression followed by ';'.
//
// On entry CurrToken is the first token of the expression; on return
// CurrToken is the ';'.
func (par *Parser) parseExpressionStatement() StatementNode {
	first := par.CurrToken
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ExpressionStatementNode{Token: first, Expr: expr}
}

// parseIfStatement parses a conditional:
//
//	'if' '(' Expr ')' Statement ('else' Statement)?
//
// On entry CurrToken is 'if'; on return CurrToken is the last token of
// the taken branch.
func (par *Parser) parseIfStatement() StatementNode {
	ifToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance() // onto the first token of the condition
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance() // onto the first token of the then-branch
	then := par.parseStatement()
	if then == nil {
		return nil
	}

	stmt := &IfStatementNode{Token: ifToken, Condition: cond, Then: then}

	// Optional else branch
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // onto 'else'
		par.advance() // onto the first token of the else-branch
		stmt.Else = par.parseStatement()
		if stmt.Else == nil {
			return nil
		}
	}

	return stmt
}

// parseWhileStatement parses a while loop:
//
//	'while' '(' Expr ')' Statement
//
// On entry CurrToken is 'while'; on return CurrToken is the last token
// of the body.
func (par *Parser) parseWhileStatement() StatementNode {
	whileToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance() // onto the first token of the condition
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance() // onto the first token of the body
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileStatementNode{Token: whileToken, Condition: cond, Body: body}
}

// parseForStatement parses a C-style for loop:
//
//	'for' '(' (VarDecl | ExprStmt | ';') Expr? ';' Expr? ')' Statement
//
// The init clause accepts either a declaration or an expression; both are
// recognized by the same type-keyword lookahead used for statements. The
// init declaration lives in the enclosing function's flat symbol scope.
//
// On entry CurrToken is 'for'; on return CurrToken is the last token of
// the body.
func (par *Parser) parseForStatement() StatementNode {
	forToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	stmt := &ForStatementNode{Token: forToken}

	// Init clause: declaration, expression statement, or empty
	par.advance() // onto the first token of the init clause (or ';')
	switch {
	case par.CurrToken.Type == lexer.SEMICOLON_DELIM:
		// empty init
	case lexer.TYPE_KEYWORDS[par.CurrToken.Type]:
		stmt.Init = par.parseVarDeclStatement()
		if stmt.Init == nil {
			return nil
		}
	default:
		stmt.Init = par.parseExpressionStatement()
		if stmt.Init == nil {
			return nil
		}
	}

	// Condition clause: empty means always true
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // onto ';'
	} else {
		par.advance() // onto the first token of the condition
		stmt.Condition = par.parseExpression()
		if stmt.Condition == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
			return nil
		}
	}

	// Update clause: may be empty
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance() // onto ')'
	} else {
		par.advance() // onto the first token of the update
		stmt.Update = par.parseExpression()
		if stmt.Update == nil {
			return nil
		}
		if !par.expectAdvance(lexer.RIGHT_PAREN) {
			return nil
		}
	}

	par.advance() // onto the first token of the body
	stmt.Body = par.parseStatement()
	if stmt.Body == nil {
		return nil
	}

	return stmt
}

// parseReturnStatement parses a return with an optional value:
//
//	'return' Expr? ';'
//
// On entry CurrToken is 'return'; on return CurrToken is ';'.
func (par *Parser) parseReturnStatement() StatementNode {
	returnToken := par.CurrToken

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // onto ';'
		return &ReturnStatementNode{Token: returnToken}
	}

	par.advance() // onto the first token of the value
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ReturnStatementNode{Token: returnToken, Value: value}
}

// parseVarDeclStatement parses a local variable declaration:
//
//	TypeSpec Ident ('[' Number ']')? ('=' Expr)? ';'
//
// On entry CurrToken is the first token of the type; on return CurrToken
// is ';'.
func (par *Parser) parseVarDeclStatement() StatementNode {
	typeSpec, ok := par.parseTypeSpec()
	if !ok {
		return nil
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	decl := &VarDeclStatementNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}

	// Optional array size
	if par.NextToken.Type == lexer.LEFT_BRACKET {
		size, ok := par.parseArraySuffix()
		if !ok {
			return nil
		}
		typeSpec.IsArray = true
		decl.IsArrayDecl = true
		decl.ArraySize = size
	}
	decl.Type = typeSpec

	// Optional initializer
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // onto '='
		par.advance() // onto the first token of the initializer
		decl.Initializer = par.parseExpression()
		if decl.Initializer == nil {
			return nil
		}
	}

	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return decl
}
