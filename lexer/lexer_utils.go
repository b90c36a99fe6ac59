/*
File: go-minic/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"strings"
)

// isWhitespace checks if the given byte is a whitespace character.
// Mini-C treats space, tab, carriage return, and newline as whitespace.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is a decimal digit (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter, false otherwise
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isIdentChar checks if the given byte can continue an identifier:
// a letter, a digit, or an underscore.
func isIdentChar(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_'
}

// escapeChar converts an escape sequence character to its actual byte value.
// This is used when processing escape sequences in string and character literals.
//
// Supported escape sequences:
//   - \n: newline
//   - \t: tab
//   - \r: carriage return
//   - \0: null character
//   - \\: backslash
//   - \": double quote
//   - \': single quote
//
// Any other escaped character is taken verbatim.
//
// Parameters:
//   - c: The character following the backslash
//
// Returns:
//   - byte: The decoded byte value
func escapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	}
	// Unknown escapes pass through verbatim
	return c
}

// readNumber reads and tokenizes an integer literal from the source.
// It consumes a greedy run of decimal digits.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token with the digits as its literal
//
// Example:
//
//	Source: "1234 + 5"
//	Returns: Token{Type: INT_LIT, Literal: "1234"}
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	var builder strings.Builder
	for isNumeric(lex.Current) {
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	return NewTokenWithMetadata(INT_LIT, builder.String(), line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// It consumes a greedy run of letters, digits, and underscores, then checks
// whether the lexeme is a reserved keyword.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A keyword token on exact match, otherwise an IDENTIFIER_ID token
//
// Example:
//
//	Source: "while_loop"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "while_loop"}
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	var builder strings.Builder
	for isIdentChar(lex.Current) {
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	ident := builder.String()
	return NewTokenWithMetadata(lookupIdent(ident), ident, line, column)
}

// readStringLiteral reads and tokenizes a string literal from the source.
// It handles escape sequences like \n, \t, \\, \", etc. and accumulates
// the decoded bytes. String literals must be enclosed in double quotes (").
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A STRING_LIT token with the decoded string content, or an
//     INVALID token if the literal is not terminated (the error is
//     recorded in lex.Err)
//
// Example:
//
//	Source: "hello\nworld"
//	Returns: Token{Type: STRING_LIT, Literal: "hello\nworld"}
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote
	for lex.Current != '"' {
		// Check for unterminated string
		if lex.Current == 0 {
			return lex.fail("string literal not terminated")
		}

		// Handle escape sequences
		if lex.Current == '\\' {
			lex.Advance() // Consume the backslash
			if lex.Current == 0 {
				return lex.fail("string literal not terminated")
			}
			builder.WriteByte(escapeChar(lex.Current))
			lex.Advance()
			continue
		}

		// Regular character - add to string
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), line, column)
}

// readCharLiteral reads and tokenizes a character literal from the source.
// A character literal holds exactly one byte (escape sequences count as one)
// and is emitted as an integer-literal token whose value is the byte's
// code point, so 'A' and 65 are the same token downstream.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token with the byte value, or an INVALID token if
//     the literal is empty or not terminated (the error is recorded in lex.Err)
//
// Example:
//
//	Source: 'A'
//	Returns: Token{Type: INT_LIT, Literal: "65"}
func readCharLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	if lex.Current == 0 || lex.Current == '\'' {
		return lex.fail("char literal not terminated")
	}

	var value byte
	if lex.Current == '\\' {
		lex.Advance() // Consume the backslash
		if lex.Current == 0 {
			return lex.fail("char literal not terminated")
		}
		value = escapeChar(lex.Current)
	} else {
		value = lex.Current
	}
	lex.Advance()

	// Require the closing quote
	if lex.Current != '\'' {
		return lex.fail("char literal not terminated")
	}
	lex.Advance() // Consume closing quote

	return NewTokenWithMetadata(INT_LIT, strconv.Itoa(int(value)), line, column)
}
