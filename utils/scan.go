package utils

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zeebo/blake3"

	"github.com/pixelforge/cloudpix/types"
	"github.com/pixelforge/cloudpix/vars"
)

// Junk that tends to sit next to media assets.
var defaultIgnorePatterns = []string{
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/node_modules/**",
	"**/.git/**",
}

// shouldIgnore checks a path against the default and caller-supplied
// ignore patterns.
func shouldIgnore(path string, extra []string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range defaultIgnorePatterns {
		if match, err := doublestar.PathMatch(pattern, path); err == nil && match {
			return true
		}
	}
	for _, pattern := range extra {
		if match, err := doublestar.PathMatch(pattern, path); err == nil && match {
			return true
		}
	}
	return false
}

// Scan expands the glob patterns, drops ignored paths and hashes every
// remaining file concurrently. The hash is the hex BLAKE3 digest of the
// file content; callers use it to skip re-uploading unchanged files.
func Scan(patterns, ignore []string) ([]types.LocalFile, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || shouldIgnore(m, ignore) {
				continue
			}
			info, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				continue
			}
			if info.Size() > vars.MAX_ASSET_SIZE {
				return nil, fmt.Errorf("file %s is %d bytes, exceeds maximum allowed %d bytes", m, info.Size(), vars.MAX_ASSET_SIZE)
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}

	files := make([]types.LocalFile, len(paths))
	var firstErr error
	var mu sync.Mutex
	var wg sync.WaitGroup

	workerCount := min(runtime.NumCPU(), vars.SCAN_CONCURRENCY)
	tasks := make(chan int, len(paths))

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				data, err := os.ReadFile(paths[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}

				sum := blake3.Sum256(data)
				files[i] = types.LocalFile{
					Path:        paths[i],
					ContentType: MediaMimeType(filepath.Ext(paths[i])),
					SizeInBytes: int64(len(data)),
					Hash:        hex.EncodeToString(sum[:]),
				}
			}
		}()
	}

	for i := range paths {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return files, nil
}
