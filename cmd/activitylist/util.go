package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// ensureDir creates the directory holding a store file.
func ensureDir(dbPath string) error {
	if dbPath == "" || dbPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}
	return nil
}
