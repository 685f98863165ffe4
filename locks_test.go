package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLockingProcessesListError(t *testing.T) {
	lf := &LockFinder{processes: func(context.Context) ([]*process.Process, error) {
		return nil, errors.New("no access")
	}}
	_, err := lf.FindLockingProcesses(context.Background(), "/tmp/x")
	assert.ErrorContains(t, err, "no access")
}

func TestFindLockingProcessesSelf(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("open file listing is only reliable on linux")
	}
	path := filepath.Join(t.TempDir(), "q1.tex")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	self, err := process.NewProcess(int32(os.Getpid()))
	require.NoError(t, err)
	lf := &LockFinder{processes: func(context.Context) ([]*process.Process, error) {
		return []*process.Process{self}, nil
	}}

	holders, err := lf.FindLockingProcesses(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, int32(os.Getpid()), holders[0].PID)
}

func TestFormatHolders(t *testing.T) {
	assert.Equal(t, "texstudio[12], vim[7]", formatHolders([]ProcessInfo{{PID: 12, Name: "texstudio"}, {PID: 7, Name: "vim"}}))
}
