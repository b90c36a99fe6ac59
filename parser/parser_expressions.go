/*
File    : go-minic/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-minic/lexer"
)

// The expression grammar, lowest to highest precedence, all
// left-associative except assignment (right-associative) and unary:
//
//	assignment     := logical_or ( '=' assignment )?
//	logical_or     := logical_and ( '||' logical_and )*
//	logical_and    := equality    ( '&&' equality   )*
//	equality       := comparison  ( ('==' | '!=') comparison )*
//	comparison     := additive    ( ('<'|'>'|'<='|'>=') additive )*
//	additive       := multiplicative ( ('+'|'-') multiplicative )*
//	multiplicative := unary ( ('*'|'/'|'%') unary )*
//	unary          := ('-' | '!' | '&' | '*') unary | postfix
//	postfix        := primary ( '[' expr ']' | '(' args? ')' )*
//	primary        := Number | String | Ident | '(' expr ')'
//
// Every method is entered with CurrToken on the first token of its
// production and returns with CurrToken on the last token.

// parseExpression parses a full expression (assignment level).
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseAssignment()
}

// parseAssignment parses a right-associative assignment chain.
// Any expression is accepted as the target; lvalue checking is deferred
// to code generation.
//
// Example: a = b = 1 parses as a = (b = 1)
func (par *Parser) parseAssignment() ExpressionNode {
	left := par.parseLogicalOr()
	if left == nil {
		return nil
	}

	if par.NextToken.Type != lexer.ASSIGN_OP {
		return left
	}

	par.advance() // onto '='
	assignToken := par.CurrToken
	par.advance() // onto the first token of the value

	// Right-recursion gives right-associativity
	value := par.parseAssignment()
	if value == nil {
		return nil
	}

	return &AssignmentExpressionNode{Token: assignToken, Target: left, Value: value}
}

// parseLogicalOr parses a chain of short-circuit '||' operators.
func (par *Parser) parseLogicalOr() ExpressionNode {
	return par.parseBinaryLevel(par.parseLogicalAnd, lexer.OR_OP)
}

// parseLogicalAnd parses a chain of short-circuit '&&' operators.
func (par *Parser) parseLogicalAnd() ExpressionNode {
	return par.parseBinaryLevel(par.parseEquality, lexer.AND_OP)
}

// parseEquality parses a chain of '==' and '!=' comparisons.
func (par *Parser) parseEquality() ExpressionNode {
	return par.parseBinaryLevel(par.parseComparison, lexer.EQ_OP, lexer.NE_OP)
}

// parseComparison parses a chain of relational comparisons.
func (par *Parser) parseComparison() ExpressionNode {
	return par.parseBinaryLevel(par.parseAdditive, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP)
}

// parseAdditive parses a chain of '+' and '-' operators.
func (par *Parser) parseAdditive() ExpressionNode {
	return par.parseBinaryLevel(par.parseMultiplicative, lexer.PLUS_OP, lexer.MINUS_OP)
}

// parseMultiplicative parses a chain of '*', '/', and '%' operators.
func (par *Parser) parseMultiplicative() ExpressionNode {
	return par.parseBinaryLevel(par.parseUnary, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP)
}

// parseBinaryLevel parses one left-associative precedence level: a chain
// of operands produced by the next-higher-precedence parser, joined by
// any of the given operator tokens.
//
// Parameters:
//
//	next - The parser for the next-higher precedence level
//	ops  - The operator token types that live on this level
func (par *Parser) parseBinaryLevel(next func() ExpressionNode, ops ...lexer.TokenType) ExpressionNode {
	left := next()
	if left == nil {
		return nil
	}

	for {
		matched := false
		for _, op := range ops {
			if par.NextToken.Type == op {
				matched = true
				break
			}
		}
		if !matched {
			return left
		}

		par.advance() // onto the operator
		opToken := par.CurrToken
		par.advance() // onto the first token of the right operand

		right := next()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Operation: opToken, Left: left, Right: right}
	}
}

// parseUnary parses a prefix operator chain: negation '-', logical not
// '!', address-of '&', and dereference '*'. Unary operators are
// right-associative.
//
// Example: -x, !done, &a[i], *p, !!v
func (par *Parser) parseUnary() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.MINUS_OP, lexer.NOT_OP, lexer.MUL_OP:
		opToken := par.CurrToken
		par.advance() // onto the operand
		operand := par.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryExpressionNode{Operation: opToken, Right: operand}
	case lexer.AMP_OP:
		ampToken := par.CurrToken
		par.advance() // onto the operand
		operand := par.parseUnary()
		if operand == nil {
			return nil
		}
		return &AddressOfExpressionNode{Token: ampToken, Right: operand}
	}
	return par.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of
// postfix operators: indexing '[expr]' and calls '(args)'. A call is
// only valid when the callee is a bare identifier.
//
// Example: a[i], f(x)[0], nums[i+1]
func (par *Parser) parsePostfix() ExpressionNode {
	expr := par.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch par.NextToken.Type {
		case lexer.LEFT_BRACKET:
			par.advance() // onto '['
			bracketToken := par.CurrToken
			par.advance() // onto the first token of the index
			index := par.parseExpression()
			if index == nil {
				return nil
			}
			if !par.expectAdvance(lexer.RIGHT_BRACKET) {
				return nil
			}
			expr = &IndexExpressionNode{Token: bracketToken, Array: expr, Index: index}
		case lexer.LEFT_PAREN:
			// Only a bare identifier may be called
			ident, ok := expr.(*IdentifierExpressionNode)
			if !ok {
				par.errorAt(par.NextToken, "expected function name")
				return nil
			}
			par.advance() // onto '('
			args := par.parseCallArguments()
			if par.HasErrors() {
				return nil
			}
			expr = &CallExpressionNode{Token: ident.Token, Name: ident.Name, Arguments: args}
		default:
			return expr
		}
	}
}

// parseCallArguments parses a parenthesized argument list.
//
// On entry CurrToken is '('; on return CurrToken is ')'.
func (par *Parser) parseCallArguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)

	// Empty argument list
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args
	}

	for {
		par.advance() // onto the first token of the argument
		arg := par.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		if par.NextToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance() // onto ','
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return args
}

// parsePrimary parses the atoms of the expression grammar: integer
// literals, string literals, identifiers, and parenthesized expressions.
func (par *Parser) parsePrimary() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.INT_LIT:
		value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
		if err != nil {
			par.errorAt(par.CurrToken, "invalid integer literal "+par.CurrToken.Literal)
			return nil
		}
		return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
	case lexer.STRING_LIT:
		return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
	case lexer.IDENTIFIER_ID:
		return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
	case lexer.LEFT_PAREN:
		par.advance() // onto the first token of the inner expression
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		if !par.expectAdvance(lexer.RIGHT_PAREN) {
			return nil
		}
		return expr
	case lexer.EOF_TYPE:
		par.errorAt(par.CurrToken, "unexpected EOF")
		return nil
	default:
		par.errorAt(par.CurrToken, "unexpected token "+string(par.CurrToken.Type))
		return nil
	}
}
