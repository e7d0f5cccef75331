// Package driver orchestrates the front end and back end into the
// end-to-end build described in spec §5/§6: read input, parse (possibly
// several files concurrently), canonicalize, run semantic checks, lower to
// IR, annotate stack frames, emit assembly, and the diagnostic sub-drivers
// that stop early to print an intermediate representation instead.
package driver

import "flag"

// CommonFlags is the single flag set shared by every sub-driver, matching
// mc_cl_parser's role in the original across mcc.c, mc_ir.c,
// mc_symbol_table.c, and mc_ast_to_dot.c.
type CommonFlags struct {
	Help     bool
	Output   string
	Function string
	Quiet    bool
	Debug    bool
	Cache    string
}

// RegisterCommon adds the shared flags to fs and returns the struct they
// populate once fs.Parse has run.
func RegisterCommon(fs *flag.FlagSet) *CommonFlags {
	f := &CommonFlags{}
	fs.BoolVar(&f.Help, "h", false, "show usage and exit")
	fs.BoolVar(&f.Help, "help", false, "show usage and exit")
	fs.StringVar(&f.Output, "o", "", "output path (default: stdout)")
	fs.StringVar(&f.Output, "output", "", "output path (default: stdout)")
	fs.StringVar(&f.Function, "f", "", "limit the dump to a single function")
	fs.StringVar(&f.Function, "function", "", "limit the dump to a single function")
	fs.BoolVar(&f.Quiet, "q", false, "suppress non-fatal warnings")
	fs.BoolVar(&f.Quiet, "quiet", false, "suppress non-fatal warnings")
	fs.BoolVar(&f.Debug, "debug", false, "print a build-ID-stamped debug summary before the requested output")
	fs.StringVar(&f.Cache, "cache", "", "build-cache DSN (sqlite://, mysql://, postgres://, sqlserver://); empty disables caching")
	return f
}
