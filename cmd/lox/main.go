/*
File    : lox-go/cmd/lox/main.go
*/

// Command lox is the entry point for the Lox interpreter. It provides
// three modes of operation:
//  1. REPL mode (default): interactive read-eval-print loop
//  2. File mode: execute a single Lox source file
//  3. Serve mode: a TCP server handing each connection its own REPL
//
// File and REPL execution are routed through scanner/parser/interp, and
// exit codes follow the table below (0 / 65 EX_DATAERR / 70 EX_SOFTWARE /
// 22 EINVAL).
package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/akashmaji946/lox-go/config"
	"github.com/akashmaji946/lox-go/interp"
	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/repl"
	"github.com/akashmaji946/lox-go/report"
	"github.com/akashmaji946/lox-go/scanner"
	"github.com/fatih/color"
)

const (
	exitOK       = 0
	exitDataErr  = 65 // EX_DATAERR: parse/resolution error
	exitSoftware = 70 // EX_SOFTWARE: runtime error
	exitUsage    = 22 // EINVAL: bad CLI usage
)

var (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	banner  = `
 ██       ▄▄▄     ▄▄▄  ▄▄▄
 ██      ██  ██   ▀██▀██▀
 ██      ██  ██    ████
 ██▄▄▄▄▄  ▀██▀     ▀██▀
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		runRepl()
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(exitOK)
	case "--version", "-v":
		showVersion()
		os.Exit(exitOK)
	case "serve":
		if len(args) != 2 {
			redColor.Fprintf(os.Stderr, "usage: lox serve <port>\n")
			os.Exit(exitUsage)
		}
		runServer(args[1])
		return
	}

	if len(args) > 1 {
		redColor.Fprintf(os.Stderr, "usage: lox [path]\n")
		os.Exit(exitUsage)
	}

	os.Exit(runFile(args[0]))
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  lox                  Start interactive REPL mode")
	fmt.Println("  lox <path>           Execute a Lox source file")
	fmt.Println("  lox serve <port>     Start a REPL server on the given port")
	fmt.Println("  lox --help           Display this help message")
	fmt.Println("  lox --version        Display version information")
}

func showVersion() {
	fmt.Printf("lox %s (license %s, %s)\n", version, license, author)
}

// runFile reads and executes a Lox source file, returning the process
// exit code: 0 success, 65 on any parse error (the run never reaches
// evaluation), 70 on any runtime error.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitDataErr
	}

	rep := report.New(os.Stdout)
	toks := scanner.New(string(source), rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if rep.HadParseError {
		return exitDataErr
	}

	in := interp.New(os.Stdout, rep)
	in.Interpret(stmts)
	if rep.HadRuntimeError {
		return exitSoftware
	}
	return exitOK
}

// runRepl loads .loxrc.yaml (if present) and starts an interactive
// session against stdin/stdout.
func runRepl() {
	cfg := loadConfig()
	r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt, expandHome(cfg.HistoryFile))
	diagOut := os.Stdout
	if cfg.DiagnosticsToStderr {
		diagOut = os.Stderr
	}
	r.Start(os.Stdin, os.Stdout, diagOut)
}

// runServer starts a TCP listener on port, giving each connection its own
// REPL instance, one goroutine per connection.
func runServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "failed to listen on port %s: %v\n", port, err)
		os.Exit(exitSoftware)
	}
	defer listener.Close()
	cyanColor.Printf("lox REPL server listening on :%s\n", port)

	cfg := loadConfig()
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

func handleConn(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt, "")
	r.Start(conn, conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}

func loadConfig() config.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(filepath.Join(home, ".loxrc.yaml"))
	if err != nil {
		redColor.Fprintf(os.Stderr, "warning: failed to parse .loxrc.yaml: %v\n", err)
		return config.Default()
	}
	return cfg
}

// expandHome resolves a leading "~" in a path (as config.DefaultHistoryFile
// uses) to the user's home directory, since readline takes a literal path.
func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
