package main

import (
	"path/filepath"
	"runtime"
	"strings"
)

// IsDangerousPath kritik sistem dizinlerini tanır. Recursive tarama bu
// dizinlerden başlatılmaz.
func IsDangerousPath(path string) bool {
	if runtime.GOOS == "windows" {
		norm := strings.TrimRight(strings.ToLower(filepath.Clean(path)), "\\")
		switch norm {
		case "c:", "c:\\windows", "c:\\program files", "c:\\users":
			return true
		}
		return false
	}

	switch filepath.Clean(path) {
	case "/", "/etc", "/bin", "/usr", "/lib", "/var", "/proc", "/sys", "/dev":
		return true
	}
	return false
}
