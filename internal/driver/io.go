package driver

import (
	"io"
	"os"

	"mcc/internal/diag"
)

// source is one input file's name and already-read text.
type source struct {
	name string
	text string
}

func readSource(path string) (source, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return source{}, diag.Wrap(err, "cannot read stdin")
		}
		return source{name: "<stdin>", text: string(b)}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return source{}, diag.Wrap(err, "cannot read "+path)
	}
	return source{name: path, text: string(b)}, nil
}

// writeOutput writes text to path, or to stdout when path is empty,
// matching the -o/--output default of §6.
func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		if err != nil {
			return diag.Wrap(err, "cannot write to stdout")
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return diag.Wrap(err, "cannot write "+path)
	}
	return nil
}
