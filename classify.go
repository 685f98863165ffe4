package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// QuestionsDir her hedef dizinin altında aranan klasör adı.
const QuestionsDir = "questions"

// Config sabit ayarları tutar; testler alanları değiştirebilir.
type Config struct {
	IgnoreDirs map[string]struct{}
	Excludes   []string
	Glob       string
	Plain      *regexp.Regexp
	Protected  *regexp.Regexp
}

func DefaultConfig() Config {
	return Config{
		IgnoreDirs: map[string]struct{}{
			"xmScripts": {},
			".vscode":   {},
			".git":      {},
		},
		Glob:      "q*.tex",
		Plain:     regexp.MustCompile(`^q(\d+)\.tex$`),
		Protected: regexp.MustCompile(`^q(\d+)_(xm|soln)\.tex$`),
	}
}

// FindCandidates questionsDir içindeki düz qN.tex dosyalarını döner.
// Korunan varyantlar (qN_xm.tex, qN_soln.tex) her zaman önce elenir.
func FindCandidates(questionsDir string, cfg Config) ([]string, error) {
	names, err := doublestar.Glob(os.DirFS(questionsDir), cfg.Glob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob failed in %s: %w", questionsDir, err)
	}

	var candidates []string
	for _, name := range names {
		if cfg.Protected.MatchString(name) {
			continue
		}
		if cfg.Plain.MatchString(name) {
			candidates = append(candidates, filepath.Join(questionsDir, name))
		}
	}
	return candidates, nil
}
