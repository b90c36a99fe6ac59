/*
File    : go-minic/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive explorer for the go-minic
compiler. The explorer provides an environment where users can:
- Enter Mini-C code snippet by snippet (a blank line ends a snippet)
- See the generated x86-64 assembly immediately
- Inspect the token stream and AST of the last snippet
- Navigate input history using arrow keys

The explorer uses the readline library for enhanced line editing
capabilities and runs the same lexer-parser-codegen pipeline as the
file mode of the compiler.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-minic/codegen"
	"github.com/akashmaji946/go-minic/lexer"
	"github.com/akashmaji946/go-minic/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for explorer output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Generated assembly and results
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive explorer instance.
// It encapsulates all the configuration needed to run a session.
type Repl struct {
	Banner  string // Logo displayed at startup
	Version string // Version string of the compiler
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "minic >>> ")
}

// NewRepl creates and initializes a new explorer instance.
// This constructor sets up all the visual elements and configuration
// needed for the interactive session.
//
// Parameters:
//
//	banner  - Logo to display at startup
//	version - Version string of the compiler
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the explorer starts to provide users
// with the logo, version information, and basic usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print usage instructions in cyan
	cyanColor.Fprintln(writer, "Type a Mini-C snippet; a blank line compiles it.")
	cyanColor.Fprintln(writer, "Commands: /tokens /ast /help /exit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the explorer loop: it reads lines with readline,
// accumulates them into a snippet until a blank line, compiles the
// snippet, and prints the generated assembly. Slash commands inspect
// the last snippet or end the session.
//
// Parameters:
//
//	writer - The io.Writer for all output (typically os.Stdout)
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] could not initialize readline: %v\n", err)
		return
	}
	defer rl.Close()

	var buffer []string    // lines of the snippet being typed
	var lastSnippet string // the most recently compiled snippet

	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-D or Ctrl-C ends the session
			return
		}

		trimmed := strings.TrimSpace(line)

		// Slash commands operate outside the snippet buffer
		if strings.HasPrefix(trimmed, "/") && len(buffer) == 0 {
			if r.runCommand(trimmed, lastSnippet, writer) {
				return
			}
			continue
		}

		// A blank line ends the snippet and compiles it
		if trimmed == "" {
			if len(buffer) == 0 {
				continue
			}
			lastSnippet = strings.Join(buffer, "\n")
			buffer = buffer[:0]
			r.compileSnippet(lastSnippet, writer)
			continue
		}

		buffer = append(buffer, line)
	}
}

// runCommand executes one slash command. It returns true when the
// session should end.
func (r *Repl) runCommand(cmd string, lastSnippet string, writer io.Writer) bool {
	switch cmd {
	case "/exit":
		cyanColor.Fprintln(writer, "bye!")
		return true
	case "/help":
		cyanColor.Fprintln(writer, "Type a Mini-C snippet; a blank line compiles it.")
		cyanColor.Fprintln(writer, "/tokens  show the token stream of the last snippet")
		cyanColor.Fprintln(writer, "/ast     show the parse of the last snippet")
		cyanColor.Fprintln(writer, "/exit    leave the explorer")
	case "/tokens":
		if lastSnippet == "" {
			redColor.Fprintln(writer, "[REPL ERROR] no snippet compiled yet")
			return false
		}
		lex := lexer.NewLexer(lastSnippet)
		tokens, err := lex.ConsumeTokens()
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return false
		}
		for _, tok := range tokens {
			yellowColor.Fprintf(writer, "%-16s %q\n", string(tok.Type), tok.Literal)
		}
	case "/ast":
		if lastSnippet == "" {
			redColor.Fprintln(writer, "[REPL ERROR] no snippet compiled yet")
			return false
		}
		par := parser.NewParser(lastSnippet)
		root := par.Parse()
		if par.HasErrors() {
			redColor.Fprintf(writer, "%s\n", par.GetErrors()[0])
			return false
		}
		yellowColor.Fprintln(writer, root.Literal())
	default:
		redColor.Fprintf(writer, "[REPL ERROR] unknown command %s\n", cmd)
	}
	return false
}

// compileSnippet runs the full pipeline on one snippet and prints the
// generated assembly, or the error that aborted compilation.
func (r *Repl) compileSnippet(src string, writer io.Writer) {
	assembly, err := codegen.Compile(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprint(writer, assembly)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}
