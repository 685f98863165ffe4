package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/process"
)

// ProcessInfo dosyayı açık tutan process.
type ProcessInfo struct {
	PID  int32
	Name string
}

func (p ProcessInfo) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.PID)
}

// LockFinder silinemeyen bir dosyayı hangi process'lerin açık tuttuğunu bulur.
// Sadece raporlar; hiçbir process sonlandırılmaz.
type LockFinder struct {
	processes func(ctx context.Context) ([]*process.Process, error)
}

func NewLockFinder() *LockFinder {
	return &LockFinder{processes: process.ProcessesWithContext}
}

func (lf *LockFinder) FindLockingProcesses(ctx context.Context, path string) ([]ProcessInfo, error) {
	target := filepath.Clean(path)
	procs, err := lf.processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list processes: %w", err)
	}

	var holders []ProcessInfo
	for _, proc := range procs {
		if ctx.Err() != nil {
			return holders, ctx.Err()
		}
		// Yetki yoksa OpenFiles hata verir; o process'i atla
		files, err := proc.OpenFilesWithContext(ctx)
		if err != nil {
			continue
		}
		for _, f := range files {
			if filepath.Clean(f.Path) == target {
				name, _ := proc.NameWithContext(ctx)
				holders = append(holders, ProcessInfo{PID: proc.Pid, Name: name})
				break
			}
		}
	}
	return holders, nil
}

func formatHolders(holders []ProcessInfo) string {
	parts := make([]string, len(holders))
	for i, h := range holders {
		parts[i] = h.String()
	}
	return strings.Join(parts, ", ")
}
