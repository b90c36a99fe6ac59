/*
File    : go-minic/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-minic compiler.
It provides two modes of operation:
1. File Mode: Compile a Mini-C source file to x86-64 assembly on stdout
2. REPL Mode (no arguments): Interactive explorer that shows the
   assembly, tokens, or AST for typed-in snippets

The compiler uses a lexer-parser-codegen pipeline: the source file is
tokenized, parsed into an AST, and lowered in a single pass to GNU
(AT&T) assembly that an external assembler and linker (e.g. gcc) turn
into a native executable.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-minic/codegen"
	"github.com/akashmaji946/go-minic/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the go-minic compiler
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the compiler's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "minic >>> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `             _       _
  _ __ ___  (_)____  (_) _____
 | '_ ' _ \ | |  _ \ | |/ ____|
 | | | | | || | | | || | |____
 |_| |_| |_||_|_| |_||_|\_____|  Mini-C -> x86-64
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for compiler output
// These colors are used to provide visual feedback:
// - redColor: Error messages and critical failures
// - yellowColor: Usage hints
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the go-minic compiler.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-minic              - Start the interactive explorer (REPL)
//	go-minic <filename>   - Compile the file, assembly on stdout
//	go-minic --help       - Display help information
//	go-minic --version    - Display version information
//
// On a compile error the message goes to standard error and the
// process exits with a non-zero status; no partial assembly is written.
func main() {
	// Check if a flag argument is provided
	if len(os.Args) > 1 {
		arg := os.Args[1]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// File mode: read and compile a file
		compileFile(arg)
	} else {
		// REPL mode: start the interactive explorer
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdout)
	}
}

// showHelp displays the help information for the go-minic compiler
func showHelp() {
	cyanColor.Println("go-minic - A Mini-C to x86-64 Compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-minic                  Start the interactive explorer")
	yellowColor.Println("  go-minic <path-to-file>   Compile a Mini-C file (.c)")
	yellowColor.Println("  go-minic --help           Display this help message")
	yellowColor.Println("  go-minic --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("The generated assembly is written to standard output and can")
	cyanColor.Println("be assembled and linked with a C toolchain:")
	yellowColor.Println("  go-minic prog.c > prog.s && gcc prog.s -o prog")
	cyanColor.Println("")
	cyanColor.Println("EXPLORER COMMANDS:")
	yellowColor.Println("  /tokens                   Show the token stream of the last snippet")
	yellowColor.Println("  /ast                      Show the AST of the last snippet")
	yellowColor.Println("  /exit                     Exit the explorer")
}

// showVersion displays the version information for the go-minic compiler
func showVersion() {
	cyanColor.Println("go-minic - A Mini-C to x86-64 Compiler")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// compileFile reads and compiles a Mini-C source file.
// It handles the complete compilation pipeline:
// 1. Read the file from disk
// 2. Run lexer, parser, and code generator
// 3. Write the assembly to standard output
//
// Parameters:
//
//	fileName - Path to the Mini-C source file to compile
//
// Error Handling:
//   - File read errors: Displays error message and exits with code 1
//   - Compile errors: Displays the error on stderr and exits with code 1
func compileFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		// Display file read error in red and exit
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	// Run the pipeline: source text in, assembly text out
	assembly, err := codegen.Compile(string(fileContent))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	fmt.Print(assembly)
}
