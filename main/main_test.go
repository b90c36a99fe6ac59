/*
File    : go-minic/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"testing"

	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProgram is a program exercising every construct the printer
// and the round-trip test care about.
const sampleProgram = `
int side;
int nums[5];
int puts(char *s);

int add(int a, int b) {
	return a + b;
}

int main() {
	int i;
	int s = 0;
	for (i = 1; i <= 10; i = i + 1) {
		s = s + i;
	}
	while (s > 100) {
		s = s - 1;
	}
	if (s == 55 && side == 0) {
		puts("fifty five");
	} else {
		side = -1;
	}
	nums[0] = *&s;
	return add(s, nums[0]);
}
`

// TestRoundTrip_TokensSurviveParsing verifies that parsing followed by
// the structural print yields a tree whose terminal leaves re-lex to
// the original non-whitespace, non-comment token sequence, modulo the
// parentheses the print adds to show grouping.
func TestRoundTrip_TokensSurviveParsing(t *testing.T) {
	par := parser.NewParser(sampleProgram)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	printed := root.Literal()

	lexOriginal := lexer.NewLexer(sampleProgram)
	originalTokens, err := lexOriginal.ConsumeTokens()
	require.NoError(t, err)

	lexPrinted := lexer.NewLexer(printed)
	printedTokens, err := lexPrinted.ConsumeTokens()
	require.NoError(t, err)

	// Strip the grouping parentheses the structural print introduces;
	// what remains must be the original terminals in order
	filtered := make([]lexer.Token, 0, len(printedTokens))
	for _, tok := range printedTokens {
		if tok.Type == lexer.LEFT_PAREN || tok.Type == lexer.RIGHT_PAREN {
			continue
		}
		filtered = append(filtered, tok)
	}
	originalFiltered := make([]lexer.Token, 0, len(originalTokens))
	for _, tok := range originalTokens {
		if tok.Type == lexer.LEFT_PAREN || tok.Type == lexer.RIGHT_PAREN {
			continue
		}
		originalFiltered = append(originalFiltered, tok)
	}

	require.Equal(t, len(originalFiltered), len(filtered))
	for i := range originalFiltered {
		assert.Equal(t, originalFiltered[i].Type, filtered[i].Type, "terminal %d", i)
		assert.Equal(t, originalFiltered[i].Literal, filtered[i].Literal, "terminal %d", i)
	}
}

// TestPrintingVisitor renders the sample program and checks that every
// node kind shows up with its payload
func TestPrintingVisitor(t *testing.T) {
	par := parser.NewParser(sampleProgram)
	root := par.Parse()
	require.False(t, par.HasErrors())

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	out := visitor.String()

	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "GlobalVarDecl [int side;]")
	assert.Contains(t, out, "GlobalVarDecl [int nums[5];]")
	assert.Contains(t, out, "FunctionProto [int puts(char* s);]")
	assert.Contains(t, out, "FunctionDecl int add(int a, int b)")
	assert.Contains(t, out, "FunctionDecl int main()")
	assert.Contains(t, out, "Block")
	assert.Contains(t, out, "VarDecl [int i;]")
	assert.Contains(t, out, "VarDecl [int s = 0;]")
	assert.Contains(t, out, "For")
	assert.Contains(t, out, "While")
	assert.Contains(t, out, "If")
	assert.Contains(t, out, "Else")
	assert.Contains(t, out, "Return")
	assert.Contains(t, out, "Assign")
	assert.Contains(t, out, "Binary [&&]")
	assert.Contains(t, out, "Binary [==]")
	assert.Contains(t, out, "Unary [-]")
	assert.Contains(t, out, "Unary [*]")
	assert.Contains(t, out, "AddressOf")
	assert.Contains(t, out, "Index")
	assert.Contains(t, out, "Call [puts]")
	assert.Contains(t, out, "Call [add]")
	assert.Contains(t, out, `String ("fifty five")`)
	assert.Contains(t, out, "Integer (55)")
	assert.Contains(t, out, "Identifier (side)")
}

// TestPrintingVisitor_Indentation verifies that children are indented
// below their parents
func TestPrintingVisitor_Indentation(t *testing.T) {
	par := parser.NewParser(`int main() { return 1 + 2; }`)
	root := par.Parse()
	require.False(t, par.HasErrors())

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	out := visitor.String()

	assert.Contains(t, out, "Program\n    FunctionDecl int main()\n        Block\n            Return\n                Binary [+]\n")
	assert.Contains(t, out, "                    Integer (1)\n")
	assert.Contains(t, out, "                    Integer (2)\n")
}
