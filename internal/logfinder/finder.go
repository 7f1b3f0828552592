// Package logfinder locates session log files on disk.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvLogDir is the environment variable name for specifying log directory.
const EnvLogDir = "FRAGLOG_LOGDIR"

// LogPattern is the glob matched against file names in a log directory.
const LogPattern = "*.txt"

// Sentinel errors.
var (
	ErrLogDirNotFound = errors.New("log directory not found")
	ErrNoLogFiles     = errors.New("no log files found")
)

// DefaultLogDirs returns candidate log directories in priority order,
// relative to the working directory.
func DefaultLogDirs() []string {
	return []string{"logs", "."}
}

// FindLogDir returns the log directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. FRAGLOG_LOGDIR environment variable
//  3. Auto-detect from DefaultLogDirs()
//
// Returns ErrLogDirNotFound if no valid directory is found.
// The returned path has symlinks resolved for consistency.
func FindLogDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveAndValidateLogDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or contains no log files", ErrLogDirNotFound)
	}

	if envDir := os.Getenv(EnvLogDir); envDir != "" {
		if resolved := resolveAndValidateLogDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrLogDirNotFound, EnvLogDir)
	}

	for _, dir := range DefaultLogDirs() {
		if resolved := resolveAndValidateLogDir(dir); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrLogDirNotFound
}

// FindLatestLogFile returns the path to the most recently modified
// log file in the given directory.
//
// Returns ErrNoLogFiles if no log files are found.
func FindLatestLogFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, LogPattern))
	if err != nil {
		return "", fmt.Errorf("globbing log files: %w", err)
	}

	type fileInfo struct {
		path    string
		modTime int64
	}
	files := make([]fileInfo, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, fileInfo{path: path, modTime: info.ModTime().UnixNano()})
	}
	if len(files) == 0 {
		return "", ErrNoLogFiles
	}

	// Newest first
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime > files[j].modTime
	})
	return files[0].path, nil
}

// Resolve turns a command-line argument into a single log file path.
// An empty argument falls back to FindLogDir; a directory resolves to its
// newest log; anything else is returned unchanged.
func Resolve(arg, logDir string) (string, error) {
	if arg == "" {
		dir, err := FindLogDir(logDir)
		if err != nil {
			return "", err
		}
		return FindLatestLogFile(dir)
	}

	info, err := os.Stat(arg)
	if err == nil && info.IsDir() {
		return FindLatestLogFile(arg)
	}
	return arg, nil
}

// resolveAndValidateLogDir resolves symlinks and validates the directory.
// Returns the resolved path if valid, empty string otherwise.
func resolveAndValidateLogDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Fall back to the unresolved path (permission issues, broken links)
		resolved = dir
	}

	if _, err := FindLatestLogFile(resolved); err != nil {
		return ""
	}
	return resolved
}
