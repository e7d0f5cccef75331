// cmd/mcc/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"mcc/internal/driver"
)

// commandAliases mirrors the teacher's single-letter alias map ahead of the
// command switch (cmd/sentra/main.go), giving six of this compiler's
// sub-commands a single-letter alias.
var commandAliases = map[string]string{
	"b": "build",
	"a": "ast",
	"s": "symtab",
	"i": "ir",
	"g": "cfg",
	"l": "llvm",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 1
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}
	rest := args[1:]

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return 0
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flags := driver.RegisterCommon(fs)
	if err := fs.Parse(rest); err != nil {
		return 1
	}
	if flags.Help {
		fs.Usage()
		return 0
	}
	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	out, err := dispatch(cmd, paths, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if writeErr := writeResult(flags.Output, out); writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		return 1
	}
	return 0
}

func dispatch(cmd string, paths []string, flags *driver.CommonFlags) (string, error) {
	switch cmd {
	case "build":
		res, err := driver.Build(paths, flags)
		if err != nil {
			return "", err
		}
		return res.Asm, nil
	case "ast":
		return driver.DumpAST(paths, flags)
	case "symtab":
		return driver.DumpSymtab(paths, flags, false)
	case "symtab-dot":
		return driver.DumpSymtab(paths, flags, true)
	case "ir":
		return driver.DumpIR(paths, flags)
	case "cfg":
		return driver.DumpCFG(paths, flags)
	case "llvm":
		return driver.DumpLLVM(paths, flags)
	case "serve":
		return "", runServe(flags)
	default:
		showUsage()
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

func writeResult(path, text string) error {
	if path == "" {
		_, err := fmt.Print(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func showUsage() {
	fmt.Fprintln(os.Stderr, `usage: mcc <command> [flags] <files...>

commands:
  build (b)        compile to AT&T-syntax x86 assembly
  ast (a)          dump the AST as DOT
  symtab (s)       dump the symbol table as indented text
  symtab-dot       dump the symbol table as DOT
  ir (i)           dump the generated IR as a table
  cfg (g)          dump the control-flow graph as DOT
  llvm (l)         dump the generated IR as LLVM textual IR
  serve            run the compile daemon over a WebSocket (-o sets the listen address)

flags:
  -h, --help       show this message
  -o, --output     output path (default: stdout)
  -f, --function   limit the dump to a single function
  -q, --quiet      suppress non-fatal warnings
  --debug          prepend a build-ID-stamped debug summary
  --cache          build-cache DSN for the build command (sqlite://, mysql://, postgres://, sqlserver://)`)
}
