package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	root := tempRoot(t)
	makeTree(t, root, "A/questions/q1.tex", "A/questions/q1_xm.tex", "A/B/questions/q2.tex")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--dry-run", "--recursive", root}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "[INFO] Root: "+root, lines[0])
	assert.Equal(t, "[INFO] Mode: recursive", lines[1])
	assert.Equal(t, "[INFO] Dry-run: no files will be deleted", lines[2])
	assert.Equal(t, "[DRY] Would delete: "+filepath.Join(root, "A", "questions", "q1.tex"), lines[3])
	assert.Equal(t, "[DRY] Would delete: "+filepath.Join(root, "A", "B", "questions", "q2.tex"), lines[4])
	assert.Equal(t, "[SUMMARY] 2 plain qN.tex file(s) would be deleted.", lines[5])
	assert.FileExists(t, filepath.Join(root, "A", "questions", "q1.tex"))
}

func TestRunDefaultsToCurrentDir(t *testing.T) {
	root := tempRoot(t)
	makeTree(t, root, "A/questions/q1.tex")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--quiet"}, &stdout, &stderr))
	assert.Equal(t, "[SUMMARY] Deleted 1 plain qN.tex file(s).\n", stdout.String())
	assert.NoFileExists(t, filepath.Join(root, "A", "questions", "q1.tex"))
}

func TestRunExclude(t *testing.T) {
	root := tempRoot(t)
	makeTree(t, root, "keep/questions/q1.tex", "drop/questions/q1.tex")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--exclude", "kee*, other", root}, &stdout, &stderr))
	assert.FileExists(t, filepath.Join(root, "keep", "questions", "q1.tex"))
	assert.NoFileExists(t, filepath.Join(root, "drop", "questions", "q1.tex"))
}

func TestRunLogfile(t *testing.T) {
	root := tempRoot(t)
	makeTree(t, root, "A/questions/q1.tex")
	logPath := filepath.Join(t.TempDir(), "actions.log")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--dry-run", "--logfile", logPath, root}, &stdout, &stderr))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DRY-RUN] "+filepath.Join(root, "A", "questions", "q1.tex"))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing root", []string{filepath.Join(t.TempDir(), "missing")}, 1},
		{"too many args", []string{"a", "b"}, 2},
		{"unknown flag", []string{"--bogus"}, 2},
		{"dangerous recursive root", []string{"--recursive", "/"}, 2},
		{"help", []string{"--help"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr))
			if tt.code != 0 {
				assert.NotEmpty(t, stderr.String())
			}
		})
	}
}

func TestRunRefusesRelativeSystemRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix system directories")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("/"))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, args := range [][]string{
		{"--recursive", "--dry-run", "--quiet"},
		{"--recursive", "--dry-run", "."},
		{"--recursive", "--dry-run", "etc/.."},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), args)
		assert.Contains(t, stderr.String(), "Refusing recursive scan of system directory: /", args)
		assert.Empty(t, stdout.String(), args)
	}
}
