package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config    string
	baseURL   string
	highlight string
	template  string
	outputDir string
	workers   int
	verbose   bool
	version   bool

	// set tracks which flags were given explicitly, so flag values can
	// override config file values without clobbering them with defaults.
	set map[string]bool
}

// parseFlags parses args into flags and positional input paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	flags := &cliFlags{}
	fs.StringVarP(&flags.config, "config", "c", "", "config file (YAML); a bare name resolves to <name>.yaml")
	fs.StringVarP(&flags.baseURL, "base-url", "b", "", "base URL prefixed to relative links and media")
	fs.StringVar(&flags.highlight, "highlight", "", "chroma style for fenced code (empty = plain <pre><code>)")
	fs.StringVarP(&flags.template, "template", "t", "", "HTML page template file with a '#### BODY ####' placeholder")
	fs.StringVarP(&flags.outputDir, "output", "o", "", "output directory (default: next to each input)")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "number of parallel conversions (0 = auto)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	flags.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	return flags, fs.Args(), nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(fs.Output(), `usage: md2html [flags] <input.md> [input2.md ...]

Converts markdown files to HTML pages. Each input file produces a
sibling .html file, or one inside --output when given.

Flags:
`)
	fs.PrintDefaults()
}
