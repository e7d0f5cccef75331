package semantic

import (
	"fmt"

	"mcc/internal/ast"
)

// errorAt formats a diagnostic in the fixed file:line:col: message shape
// every check in this package reports in.
func errorAt(loc ast.SourceLocation, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", loc.String(), fmt.Sprintf(format, args...))
}
