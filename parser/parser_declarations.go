/*
File    : go-minic/parser/parser_declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/types"
)

// parseDeclaration parses one top-level declaration.
// The grammar is:
//
//	Declaration := TypeSpec Ident ( FunctionTail | GlobalVarTail )
//
// The declaration is disambiguated by looking at the token after the
// identifier: '(' means function, anything else means global variable.
//
// On entry CurrToken is the first token of the type; on return CurrToken
// is the last token of the declaration (';' or '}').
func (par *Parser) parseDeclaration() DeclarationNode {
	typeSpec, ok := par.parseTypeSpec()
	if !ok {
		return nil
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	nameToken := par.CurrToken

	// '(' after the identifier means a function; anything else a global
	if par.NextToken.Type == lexer.LEFT_PAREN {
		return par.parseFunctionTail(typeSpec, nameToken)
	}
	return par.parseGlobalVarTail(typeSpec, nameToken)
}

// parseTypeSpec parses a type specifier:
//
//	TypeSpec := 'const'? ('int' | 'char' | 'void') '*'*
//
// The language has a single pointer bit; a second star is rejected
// rather than silently discarded.
//
// On entry CurrToken is the first token of the type; on return CurrToken
// is the last token of the type (the base keyword or the star).
//
// Returns the parsed TypeSpec and whether parsing succeeded.
func (par *Parser) parseTypeSpec() (types.TypeSpec, bool) {
	var spec types.TypeSpec

	// Optional const qualifier
	if par.CurrToken.Type == lexer.CONST_KEY {
		spec.IsConst = true
		par.advance()
	}

	// Base type keyword
	switch par.CurrToken.Type {
	case lexer.INT_KEY:
		spec.Base = types.IntType
	case lexer.CHAR_KEY:
		spec.Base = types.CharType
	case lexer.VOID_KEY:
		spec.Base = types.VoidType
	default:
		par.errorAt(par.CurrToken, "expected type name, got "+string(par.CurrToken.Type))
		return spec, false
	}

	// Pointer stars; only a single level of indirection exists
	for par.NextToken.Type == lexer.MUL_OP {
		if spec.IsPointer {
			par.errorAt(par.NextToken, "pointer-to-pointer types are not supported")
			return spec, false
		}
		spec.IsPointer = true
		par.advance()
	}

	return spec, true
}

// parseFunctionTail parses the remainder of a function declaration after
// the name:
//
//	FunctionTail := '(' Params ')' ( ';' | Block )
//
// A trailing ';' makes a prototype; a block makes a definition.
//
// On entry CurrToken is the function name; on return CurrToken is the
// closing ';' or '}'.
func (par *Parser) parseFunctionTail(ret types.TypeSpec, nameToken lexer.Token) DeclarationNode {
	par.advance() // onto '('

	params := par.parseParams()
	if par.HasErrors() {
		return nil
	}

	// ';' ends a prototype; '{' begins a definition body
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
		return &FunctionProtoNode{
			Token:      nameToken,
			ReturnType: ret,
			Name:       nameToken.Literal,
			Params:     params,
		}
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &FunctionDeclNode{
		Token:      nameToken,
		ReturnType: ret,
		Name:       nameToken.Literal,
		Params:     params,
		Body:       body,
	}
}

// parseParams parses a parenthesized parameter list.
//
//	Params := /empty/ | Param (',' Param)*
//	Param  := TypeSpec Ident ('[' ']')?
//
// An array suffix on a parameter decays it to a pointer.
//
// On entry CurrToken is '('; on return CurrToken is ')'.
func (par *Parser) parseParams() []*ParamNode {
	params := make([]*ParamNode, 0)

	// Empty parameter list
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	for {
		par.advance() // onto the first token of the parameter type

		paramType, ok := par.parseTypeSpec()
		if !ok {
			return nil
		}
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		paramName := par.CurrToken.Literal

		// Array parameter suffix: T name[] decays to a pointer
		if par.NextToken.Type == lexer.LEFT_BRACKET {
			par.advance()
			if !par.expectAdvance(lexer.RIGHT_BRACKET) {
				return nil
			}
			paramType.IsPointer = true
		}

		params = append(params, &ParamNode{Type: paramType, Name: paramName})

		if par.NextToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance() // onto ','
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return params
}

// parseGlobalVarTail parses the remainder of a global variable
// declaration after the name:
//
//	GlobalVarTail := ('[' Number ']')? ('=' Expr)? ';'
//
// On entry CurrToken is the variable name; on return CurrToken is ';'.
func (par *Parser) parseGlobalVarTail(typeSpec types.TypeSpec, nameToken lexer.Token) DeclarationNode {
	decl := &GlobalVarDeclNode{
		Token: nameToken,
		Name:  nameToken.Literal,
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

// parseArraySuffix parses a '[' Number ']' array size suffix.
// A 0-length array is accepted syntactically.
//
// On entry NextToken is '['; on return CurrToken is ']'.
//
// Returns the element count and whether parsing succeeded.
func (par *Parser) parseArraySuffix() (int64, bool) {
	par.advance() // onto '['
	if !par.expectAdvance(lexer.INT_LIT) {
		return 0, false
	}
	size, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.errorAt(par.CurrToken, "invalid array size "+par.CurrToken.Literal)
		return 0, false
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return 0, false
	}
	return size, true
}
