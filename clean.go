package main

import (
	"context"
	"os"
	"path/filepath"
)

// Report bir çalıştırmanın sayaçları.
type Report struct {
	Candidates int
	Deleted    int
	Failed     int
}

// Cleaner hedef dizinlerdeki düz qN.tex dosyalarını siler ya da raporlar.
type Cleaner struct {
	Config  Config
	Options Options
	Console *Console
	Log     *ActionLog
	Locks   *LockFinder
	remove  func(string) error
}

func NewCleaner(cfg Config, opts Options, console *Console, log *ActionLog) *Cleaner {
	c := &Cleaner{
		Config:  cfg,
		Options: opts,
		Console: console,
		Log:     log,
		remove:  os.Remove,
	}
	if opts.ShowLocks {
		c.Locks = NewLockFinder()
	}
	return c
}

// Clean root altında tam bir tur çalıştırır. Sadece root ile ilgili hatalar
// döner; tek tek dosya silme hataları Report.Failed'a yazılır.
func (c *Cleaner) Clean(ctx context.Context, root string) (Report, error) {
	var report Report
	absRoot, err := ResolveRoot(root)
	if err != nil {
		return report, err
	}

	c.Console.Info("Root: %s", absRoot)
	if c.Options.Recursive {
		c.Console.Info("Mode: recursive")
	}
	if c.Options.DryRun {
		c.Console.Info("Dry-run: no files will be deleted")
	}

	dirs, err := GatherTargetDirs(absRoot, c.Options.Recursive, c.Config)
	if err != nil {
		return report, err
	}
	sortPaths(dirs)

	for _, d := range dirs {
		qdir := filepath.Join(d, QuestionsDir)
		if st, err := os.Stat(qdir); err != nil || !st.IsDir() {
			continue
		}

		candidates, err := FindCandidates(qdir, c.Config)
		if err != nil {
			c.Console.Err("Could not scan %s: %v", qdir, err)
			c.Log.Log("ERROR", qdir, err)
			continue
		}
		report.Candidates += len(candidates)

		if len(candidates) == 0 {
			c.Console.Skip("%s: no plain qN.tex files found", qdir)
			c.Log.Log("SKIP", qdir, nil)
			continue
		}

		for _, f := range candidates {
			c.handle(ctx, f, &report)
		}
	}

	if c.Options.DryRun {
		c.Console.Summary("%d plain qN.tex file(s) would be deleted.", report.Candidates)
	} else {
		c.Console.Summary("Deleted %d plain qN.tex file(s).", report.Deleted)
	}
	return report, nil
}

func (c *Cleaner) handle(ctx context.Context, f string, report *Report) {
	if c.Options.DryRun {
		c.Console.Dry("Would delete: %s", f)
		c.Log.Log("DRY-RUN", f, nil)
		return
	}

	if err := c.remove(f); err != nil {
		report.Failed++
		c.Log.Log("ERROR", f, err)
		if holders := c.lockHolders(ctx, f); len(holders) > 0 {
			c.Console.Err("Could not delete %s: %v (held by: %s)", f, err, formatHolders(holders))
			return
		}
		c.Console.Err("Could not delete %s: %v", f, err)
		return
	}

	report.Deleted++
	c.Console.Del("Deleted: %s", f)
	c.Log.Log("DELETE", f, nil)
}

func (c *Cleaner) lockHolders(ctx context.Context, path string) []ProcessInfo {
	if c.Locks == nil {
		return nil
	}
	holders, err := c.Locks.FindLockingProcesses(ctx, path)
	if err != nil {
		return nil
	}
	return holders
}
