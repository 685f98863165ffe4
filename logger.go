package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"
)

// ActionLog yapılan işlemleri dosyaya ekler. nil *ActionLog güvenle
// kullanılabilir; hiçbir şey yazmaz.
type ActionLog struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
	now    func() time.Time
}

// OpenActionLog dosyayı append modunda açar. filename boşsa nil döner.
func OpenActionLog(filename string) (*ActionLog, error) {
	if filename == "" {
		return nil, nil
	}
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return &ActionLog{
		file:   f,
		writer: bufio.NewWriterSize(f, 8192), // 8KB buffer
		now:    time.Now,
	}, nil
}

func (l *ActionLog) Log(action, path string, err error) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().Format(time.RFC3339)
	if err != nil {
		fmt.Fprintf(l.writer, "%s [%s] %s ERROR: %v\n", ts, action, path, err)
	} else {
		fmt.Fprintf(l.writer, "%s [%s] %s\n", ts, action, path)
	}
}

func (l *ActionLog) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.writer.Flush(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
