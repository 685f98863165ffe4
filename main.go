package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

type Options struct {
	DryRun    bool
	Recursive bool
	Quiet     bool
	ShowLocks bool
	Logfile   string
}

const usage = `Usage: qclean [root] [--dry-run] [--recursive] [--quiet] [--exclude "a*,b"] [--logfile <file>] [--show-locks]

Delete plain 'qN.tex' files from 'questions' folders, preserving 'qN_xm.tex' and 'qN_soln.tex'.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := Options{}
	cfg := DefaultConfig()
	var excludeList string

	fs := pflag.NewFlagSet("qclean", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Preview deletions without removing files")
	fs.BoolVar(&opts.Recursive, "recursive", false, "Process nested subfolders as well")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Reduce output verbosity")
	fs.BoolVar(&opts.ShowLocks, "show-locks", false, "Report processes holding files that could not be deleted")
	fs.StringVar(&excludeList, "exclude", "", "Extra directory name patterns to ignore (comma separated)")
	fs.StringVar(&opts.Logfile, "logfile", "", "Append actions to this log file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if excludeList != "" {
		for _, p := range strings.Split(excludeList, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Excludes = append(cfg.Excludes, p)
			}
		}
	}

	root := "."
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		root = rest[0]
	default:
		fs.Usage()
		return 2
	}

	resolved, err := ResolveRoot(root)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Kritik sistem dizinlerinden korun!
	if opts.Recursive && IsDangerousPath(resolved) {
		fmt.Fprintf(stderr, "Refusing recursive scan of system directory: %s\n", resolved)
		return 2
	}

	log, err := OpenActionLog(opts.Logfile)
	if err != nil {
		// log olmadan devam
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	defer log.Close()

	cleaner := NewCleaner(cfg, opts, NewConsole(stdout, opts.Quiet), log)
	if _, err := cleaner.Clean(context.Background(), resolved); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
