// Package logreader loads session log files line by line.
package logreader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nxadm/tail"
)

// ErrEmptyPath is returned when no file path is given.
var ErrEmptyPath = errors.New("logreader: path required")

// ReadAll reads the whole file at path and returns its text with line endings
// normalised to "\n". The file is read once from the start and never followed.
func ReadAll(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    false,
		ReOpen:    false,
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: 0}, // Start of file
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer t.Cleanup()

	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return "", ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				if err := t.Wait(); err != nil {
					return "", fmt.Errorf("reading %s: %w", path, err)
				}
				return b.String(), nil
			}
			if line.Err != nil {
				_ = t.Stop()
				return "", fmt.Errorf("reading %s line %d: %w", path, line.Num, line.Err)
			}
			b.WriteString(strings.TrimRight(line.Text, "\r"))
			b.WriteByte('\n')
		}
	}
}
