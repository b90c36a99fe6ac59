/*
File    : go-minic/codegen/codegen_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"strings"
	"testing"

	"github.com/akashmaji946/go-minic/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileOK is a test helper that compiles a program and fails the
// test on any error.
func compileOK(t *testing.T, src string) string {
	t.Helper()
	assembly, err := Compile(src)
	require.NoError(t, err, "source: %s", src)
	return assembly
}

// TestGenerate_EmptyMain verifies the module layout and the
// prologue/fallback shape of the smallest valid program
func TestGenerate_EmptyMain(t *testing.T) {
	assembly := compileOK(t, `int main() { return 0; }`)

	// module header
	assert.Contains(t, assembly, `.section .note.GNU-stack,"",@progbits`)
	assert.Contains(t, assembly, ".section .text")
	assert.Contains(t, assembly, ".globl main")

	// prologue; no locals means no subq
	assert.Contains(t, assembly, "main:\n    pushq %rbp\n    movq %rsp, %rbp\n")
	assert.NotContains(t, assembly, "subq")

	// the explicit return and the fallback tail
	assert.Equal(t, 2, strings.Count(assembly, "    movl $0, %eax\n    leave\n    ret\n"))

	// nothing to pool, nothing global
	assert.NotContains(t, assembly, ".rodata")
	assert.NotContains(t, assembly, ".bss")
}

// TestGenerate_EmptyBody verifies that an empty function body compiles
// to a prologue, the zero-return tail, and nothing else
func TestGenerate_EmptyBody(t *testing.T) {
	assembly := compileOK(t, `int main() { }`)
	assert.Contains(t, assembly, "main:\n    pushq %rbp\n    movq %rsp, %rbp\n    movl $0, %eax\n    leave\n    ret\n")
}

// TestGenerate_IfElse verifies conditional lowering and scalar local
// slots (scenario: x = 7; if (x > 5) return 1; else return 2;)
func TestGenerate_IfElse(t *testing.T) {
	assembly := compileOK(t, `int main() { int x; x = 7; if (x > 5) return 1; else return 2; }`)

	// one scalar local: an 8-byte slot in a 16-byte frame
	assert.Contains(t, assembly, "subq $16, %rsp")
	assert.Contains(t, assembly, "movl $7, %eax")
	assert.Contains(t, assembly, "movl %eax, -8(%rbp)")
	assert.Contains(t, assembly, "movl -8(%rbp), %eax")

	// the comparison leaves a boolean via setg
	assert.Contains(t, assembly, "cmpl %ecx, %eax\n    setg %al\n    movzbl %al, %eax")

	// branch shape: test, je to else, then-branch jumps to end
	assert.Contains(t, assembly, "cmpl $0, %eax\n    je .Lelse1")
	assert.Contains(t, assembly, "jmp .Lend0")
	assert.Contains(t, assembly, ".Lelse1:")
	assert.Contains(t, assembly, ".Lend0:")
}

// TestGenerate_ForLoop verifies for-loop lowering
// (scenario: s = 0; for (i=1; i<=10; i=i+1) s = s + i;)
func TestGenerate_ForLoop(t *testing.T) {
	assembly := compileOK(t, `int main() { int i; int s; s = 0; for (i=1; i<=10; i=i+1) s = s + i; return s; }`)

	// two scalar locals: 16 bytes
	assert.Contains(t, assembly, "subq $16, %rsp")

	// loop shape: condition at the top, update before the back edge
	assert.Contains(t, assembly, ".Lbegin0:")
	assert.Contains(t, assembly, "je .Lend1")
	assert.Contains(t, assembly, "jmp .Lbegin0")
	assert.Contains(t, assembly, ".Lend1:")
	assert.Contains(t, assembly, "setle %al")

	// binary ops go right-to-push, left-to-eval, pop into %rcx
	assert.Contains(t, assembly, "pushq %rax")
	assert.Contains(t, assembly, "popq %rcx")
	assert.Contains(t, assembly, "addl %ecx, %eax")
}

// TestGenerate_WhileLoop verifies while-loop lowering
func TestGenerate_WhileLoop(t *testing.T) {
	assembly := compileOK(t, `int main() { int i; i = 0; while (i < 3) i = i + 1; return i; }`)

	assert.Contains(t, assembly, ".Lbegin0:")
	assert.Contains(t, assembly, "cmpl $0, %eax\n    je .Lend1")
	assert.Contains(t, assembly, "jmp .Lbegin0")
	assert.Contains(t, assembly, "setl %al")
}

// TestGenerate_ArraysAndPointers verifies array allocation, index
// scaling, address-of, and dereference
// (scenario: int a[3]; a[1]=2; int *p; p = &a[1]; return *p;)
func TestGenerate_ArraysAndPointers(t *testing.T) {
	assembly := compileOK(t, `int main() { int a[3]; a[0]=1; a[1]=2; a[2]=3; int *p; p = &a[1]; return *p; }`)

	// a: 12 bytes aligned to 16 -> offset -16; p: 8-byte slot at -24;
	// frame rounds to 32
	assert.Contains(t, assembly, "subq $32, %rsp")

	// the array name decays to its address
	assert.Contains(t, assembly, "leaq -16(%rbp), %rax")

	// index scaling for 4-byte elements: sign-extend then shift
	assert.Contains(t, assembly, "movslq %eax, %rax\n    shlq $2, %rax")
	assert.Contains(t, assembly, "addq %rcx, %rax")

	// element stores go through the computed address
	assert.Contains(t, assembly, "movq %rax, %rcx\n    popq %rax\n    movl %eax, (%rcx)")

	// the pointer local is stored and reloaded with movq
	assert.Contains(t, assembly, "movq %rax, -24(%rbp)")
	assert.Contains(t, assembly, "movq -24(%rbp), %rax")

	// dereference loads through %rax
	assert.Contains(t, assembly, "movl (%rax), %eax")
}

// TestGenerate_ShortCircuit verifies && lowering with two branch
// targets and the global side variable
// (scenario: side=0; if (0 && f()) return 9; return side;)
func TestGenerate_ShortCircuit(t *testing.T) {
	assembly := compileOK(t, `
	int side;
	int f() { side = 1; return 1; }
	int main() { side = 0; if (0 && f()) return 9; return side; }
	`)

	// the left operand tests straight to the false label
	assert.Contains(t, assembly, "je .Lfalse1")
	assert.Contains(t, assembly, ".Lfalse1:\n    movl $0, %eax\n.Lend2:")
	assert.Contains(t, assembly, "movl $1, %eax\n    jmp .Lend2")

	// the global is stored and loaded %rip-relative
	assert.Contains(t, assembly, "movl %eax, side(%rip)")
	assert.Contains(t, assembly, "movl side(%rip), %eax")

	// and reserved in .bss
	assert.Contains(t, assembly, ".section .bss")
	assert.Contains(t, assembly, ".comm side, 4, 4")
}

// TestGenerate_LogicalOr verifies || lowering with early-true targets
func TestGenerate_LogicalOr(t *testing.T) {
	assembly := compileOK(t, `int main() { int a; a = 1; if (a || a) return 1; return 0; }`)

	assert.Contains(t, assembly, "jne .Ltrue1")
	assert.Contains(t, assembly, "movl $0, %eax\n    jmp .Lend2")
	assert.Contains(t, assembly, ".Ltrue1:\n    movl $1, %eax\n.Lend2:")
}

// TestGenerate_StringsAndCalls verifies the string pool, the variadic
// %al rule, and argument register popping
func TestGenerate_StringsAndCalls(t *testing.T) {
	assembly := compileOK(t, `
	int puts(char *s);
	int main() { puts("sorted numbers"); puts(""); return 0; }
	`)

	// literals pooled under fresh labels in source order
	assert.Contains(t, assembly, "leaq .str0(%rip), %rax")
	assert.Contains(t, assembly, "leaq .str1(%rip), %rax")
	assert.Contains(t, assembly, ".section .rodata\n.str0:\n    .string \"sorted numbers\"\n.str1:\n    .string \"\"\n")

	// one argument: push, pop into %rdi, zero %eax, call
	assert.Contains(t, assembly, "pushq %rax\n    popq %rdi\n    movl $0, %eax\n    call puts")
}

// TestGenerate_CallArgumentOrder verifies that arguments are evaluated
// right to left and popped left to right into the argument registers
func TestGenerate_CallArgumentOrder(t *testing.T) {
	assembly := compileOK(t, `
	int add3(int a, int b, int c);
	int main() { return add3(1, 2, 3); }
	`)

	// the rightmost argument is evaluated (and pushed) first
	first := strings.Index(assembly, "movl $3, %eax")
	second := strings.Index(assembly, "movl $2, %eax")
	third := strings.Index(assembly, "movl $1, %eax")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	// pops fill %rdi, %rsi, %rdx in order
	assert.Contains(t, assembly, "popq %rdi\n    popq %rsi\n    popq %rdx\n    movl $0, %eax\n    call add3")
}

// TestGenerate_ParameterSpill verifies that register parameters are
// spilled to fresh 8-byte slots on entry
func TestGenerate_ParameterSpill(t *testing.T) {
	assembly := compileOK(t, `
	int add(int a, int b) { return a + b; }
	int main() { return add(1, 2); }
	`)

	assert.Contains(t, assembly, "add:\n    pushq %rbp\n    movq %rsp, %rbp\n    subq $16, %rsp\n    movq %rdi, -8(%rbp)\n    movq %rsi, -16(%rbp)")
	assert.Contains(t, assembly, "movl -8(%rbp), %eax")
}

// TestGenerate_ArrayParamDecay verifies that a decayed array parameter
// indexes like a pointer: movq load of the base, no leaq
func TestGenerate_ArrayParamDecay(t *testing.T) {
	assembly := compileOK(t, `
	int first(int arr[]) { return arr[0]; }
	`)

	// the spilled parameter holds an address; indexing reloads it
	assert.Contains(t, assembly, "movq %rdi, -8(%rbp)")
	assert.Contains(t, assembly, "movq -8(%rbp), %rax")
	assert.Contains(t, assembly, "movl (%rax), %eax")
}

// TestGenerate_CharHandling verifies the char width rules: movb
// stores, movsbl loads, unscaled indexing
func TestGenerate_CharHandling(t *testing.T) {
	assembly := compileOK(t, `
	int main() {
		char c;
		char buf[8];
		c = 'A';
		buf[1] = c;
		return buf[1];
	}
	`)

	// char scalar: 8-byte slot, movb store, movsbl load
	assert.Contains(t, assembly, "movb %al, -8(%rbp)")
	assert.Contains(t, assembly, "movsbl -8(%rbp), %eax")

	// char array: no shlq scaling, byte store, sign-extending load
	assert.NotContains(t, assembly, "shlq")
	assert.Contains(t, assembly, "movb %al, (%rcx)")
	assert.Contains(t, assembly, "movsbl (%rax), %eax")
}

// TestGenerate_Arithmetic verifies the division and remainder lowering
func TestGenerate_Arithmetic(t *testing.T) {
	assembly := compileOK(t, `int main() { return 7 / 2 + 7 % 2 - -1 * 2; }`)

	assert.Contains(t, assembly, "cltd\n    idivl %ecx")
	assert.Contains(t, assembly, "idivl %ecx\n    movl %edx, %eax")
	assert.Contains(t, assembly, "negl %eax")
	assert.Contains(t, assembly, "imull %ecx, %eax")
	assert.Contains(t, assembly, "subl %ecx, %eax")
}

// TestGenerate_LogicalNot verifies the ! lowering
func TestGenerate_LogicalNot(t *testing.T) {
	assembly := compileOK(t, `int main() { return !5; }`)
	assert.Contains(t, assembly, "cmpl $0, %eax\n    sete %al\n    movzbl %al, %eax")
}

// TestGenerate_AssignmentChain verifies that assignment leaves its
// value in the accumulator so chains store twice
func TestGenerate_AssignmentChain(t *testing.T) {
	assembly := compileOK(t, `int main() { int a; int b; a = b = 1; return a; }`)

	assert.Contains(t, assembly, "movl $1, %eax")
	assert.Contains(t, assembly, "movl %eax, -16(%rbp)")
	assert.Contains(t, assembly, "movl %eax, -8(%rbp)")
}

// TestGenerate_PointerStore verifies assignment through a dereference
func TestGenerate_PointerStore(t *testing.T) {
	assembly := compileOK(t, `int main() { int x; int *p; p = &x; *p = 42; return x; }`)

	assert.Contains(t, assembly, "leaq -8(%rbp), %rax")
	assert.Contains(t, assembly, "movq %rax, %rcx\n    popq %rax\n    movl %eax, (%rcx)")
}

// TestGenerate_FunctionLabels verifies one .text label per definition
// and none per prototype
func TestGenerate_FunctionLabels(t *testing.T) {
	assembly := compileOK(t, `
	int helper(int x);
	int helper2(int x) { return x; }
	int main() { return helper2(1); }
	`)

	assert.NotContains(t, assembly, "helper:\n")
	assert.Equal(t, 1, strings.Count(assembly, "helper2:\n"))
	assert.Equal(t, 1, strings.Count(assembly, "main:\n"))
	// the defined function is called by name
	assert.Contains(t, assembly, "call helper2")
}

// TestGenerate_ForwardReference verifies that the pre-pass makes
// forward references work without prototypes
func TestGenerate_ForwardReference(t *testing.T) {
	assembly := compileOK(t, `
	int main() { return late(); }
	int late() { return 7; }
	`)
	assert.Contains(t, assembly, "call late")
	assert.Contains(t, assembly, "late:\n")
}

// TestGenerate_GlobalStorage verifies the .comm size and alignment
// rules: size = type_size * max(1, arraySize), align = min(size, 16)
func TestGenerate_GlobalStorage(t *testing.T) {
	assembly := compileOK(t, `
	int g;
	char c;
	char *p;
	int nums[5];
	int zero[0];
	int main() { return 0; }
	`)

	assert.Contains(t, assembly, ".comm g, 4, 4")
	assert.Contains(t, assembly, ".comm c, 1, 1")
	assert.Contains(t, assembly, ".comm p, 8, 8")
	assert.Contains(t, assembly, ".comm nums, 20, 16")
	assert.Contains(t, assembly, ".comm zero, 4, 4")
}

// TestGenerate_GlobalArrayAccess verifies %rip-relative addressing of
// global arrays
func TestGenerate_GlobalArrayAccess(t *testing.T) {
	assembly := compileOK(t, `
	int nums[5];
	int main() { nums[2] = 9; return nums[2]; }
	`)
	assert.Contains(t, assembly, "leaq nums(%rip), %rax")
}

// TestGenerate_StringEscapes verifies escape re-emission in .rodata
func TestGenerate_StringEscapes(t *testing.T) {
	assembly := compileOK(t, `
	int puts(char *s);
	int main() { puts("a\"b\\c\nd\te"); return 0; }
	`)
	assert.Contains(t, assembly, `.string "a\"b\\c\nd\te"`)
}

// TestGenerate_FlatScopeRebinding verifies the flat-scope policy:
// re-declaring a name rebinds it to a fresh slot, last writer wins
func TestGenerate_FlatScopeRebinding(t *testing.T) {
	assembly := compileOK(t, `
	int main() {
		int x;
		x = 1;
		if (x) { int x; x = 2; }
		return x;
	}
	`)

	// two slots are allocated and the inner declaration wins the name
	assert.Contains(t, assembly, "subq $16, %rsp")
	assert.Contains(t, assembly, "movl %eax, -8(%rbp)")
	assert.Contains(t, assembly, "movl %eax, -16(%rbp)")
	// the final read sees the rebound slot
	assert.Contains(t, assembly, "movl -16(%rbp), %eax\n    leave\n    ret")
}

// represents a test case for codegen failures
// Source: the program
// ExpectedMessage: substring expected in the error
type TestCodegenFailure struct {
	Source          string
	ExpectedMessage string
}

// TestGenerate_Errors verifies the semantic failure cases
func TestGenerate_Errors(t *testing.T) {

	tests := []TestCodegenFailure{
		{Source: `int main() { return missing; }`, ExpectedMessage: "undefined identifier missing"},
		{Source: `int main() { missing = 1; return 0; }`, ExpectedMessage: "undefined identifier missing"},
		{Source: `int main() { 1 = 2; }`, ExpectedMessage: "invalid lvalue"},
		{Source: `int main() { int a[2]; a = 1; }`, ExpectedMessage: "cannot assign to array a"},
		{Source: `int main() { int x; return x[0]; }`, ExpectedMessage: "not an array or pointer"},
		{Source: `int main() { return &5; }`, ExpectedMessage: "cannot take the address"},
		{Source: `int big(int a, int b, int c, int d, int e, int f, int g) { return 0; }`, ExpectedMessage: "more than six parameters"},
		{Source: `int main() { return f(1,2,3,4,5,6,7); }`, ExpectedMessage: "more than six arguments"},
		{Source: `int g = 5; int main() { return g; }`, ExpectedMessage: "globals are zero-initialized"},
		{Source: `int main() { int a[2] = 5; }`, ExpectedMessage: "cannot have an initializer"},
	}

	for _, test := range tests {
		_, err := Compile(test.Source)
		require.Error(t, err, "source %q should not compile", test.Source)
		assert.Contains(t, err.Error(), test.ExpectedMessage, "source %q", test.Source)
		assert.Contains(t, err.Error(), "CODEGEN ERROR", "source %q", test.Source)
	}
}

// TestGenerate_ScalarInitializer verifies that declaration
// initializers store into the fresh slot
func TestGenerate_ScalarInitializer(t *testing.T) {
	assembly := compileOK(t, `int main() { int y = 5; return y; }`)
	assert.Contains(t, assembly, "movl $5, %eax\n    movl %eax, -8(%rbp)")
}

// TestGenerate_IndependentInstances verifies that two generators share
// no state: labels and string counters both start fresh
func TestGenerate_IndependentInstances(t *testing.T) {
	src := `
	int puts(char *s);
	int main() { if (1) puts("x"); return 0; }
	`
	first := compileOK(t, src)
	second := compileOK(t, src)
	assert.Equal(t, first, second)
	assert.Contains(t, second, ".str0")
	assert.Contains(t, second, ".Lend0")
}

// TestGenerate_BubbleSortProgram compiles the sort-and-search program
// shape end to end and checks the structural invariants hold
func TestGenerate_BubbleSortProgram(t *testing.T) {
	assembly := compileOK(t, `
	int puts(char *s);
	void int_to_string(int value, char buffer[]);

	int nums[5];

	void bubble_sort(int arr[], int n) {
		int i;
		int j;
		for (i = 0; i < n - 1; i = i + 1) {
			for (j = 0; j < n - 1 - i; j = j + 1) {
				if (arr[j] > arr[j + 1]) {
					int tmp;
					tmp = arr[j];
					arr[j] = arr[j + 1];
					arr[j + 1] = tmp;
				}
			}
		}
	}

	int binary_search(int arr[], int n, int key) {
		int lo;
		int hi;
		lo = 0;
		hi = n - 1;
		while (lo <= hi) {
			int mid;
			mid = (lo + hi) / 2;
			if (arr[mid] == key) return mid;
			if (arr[mid] < key) lo = mid + 1;
			else hi = mid - 1;
		}
		return -1;
	}

	int main() {
		int i;
		char buffer[32];
		nums[0] = 5; nums[1] = 2; nums[2] = 9; nums[3] = 1; nums[4] = 3;
		bubble_sort(nums, 5);
		puts("sorted numbers");
		for (i = 0; i < 5; i = i + 1) {
			int_to_string(nums[i], buffer);
			puts(buffer);
		}
		puts("");
		puts("search result");
		int_to_string(binary_search(nums, 5, 3), buffer);
		puts(buffer);
		return 0;
	}
	`)

	// one label per definition, none for the prototypes
	for _, label := range []string{"bubble_sort:\n", "binary_search:\n", "main:\n"} {
		assert.Equal(t, 1, strings.Count(assembly, label), label)
	}
	assert.NotContains(t, assembly, "\nputs:")
	assert.NotContains(t, assembly, "\nint_to_string:")

	// every call site names a Call node's callee
	assert.Contains(t, assembly, "call bubble_sort")
	assert.Contains(t, assembly, "call binary_search")
	assert.Contains(t, assembly, "call puts")
	assert.Contains(t, assembly, "call int_to_string")

	// the global array lands in .bss
	assert.Contains(t, assembly, ".comm nums, 20, 16")

	// the literals land in .rodata in pool order
	assert.Contains(t, assembly, `.string "sorted numbers"`)
	assert.Contains(t, assembly, `.string "search result"`)
}

// TestCodeGenerator_PrePass verifies registration directly: the
// pre-pass sees every signature and global before any body
func TestCodeGenerator_PrePass(t *testing.T) {
	par := parser.NewParser(`
	int g;
	int f(int a, int b);
	int main() { return 0; }
	`)
	root := par.Parse()
	require.False(t, par.HasErrors())

	cg := NewCodeGenerator()
	require.NoError(t, cg.registerDeclarations(root))

	require.Contains(t, cg.globals, "g")
	require.Contains(t, cg.funcs, "f")
	require.Contains(t, cg.funcs, "main")
	assert.Len(t, cg.funcs["f"].Params, 2)
}
