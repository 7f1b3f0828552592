package fraglog

import "github.com/fraglog/fraglog-go/internal/logfinder"

// ResolveLogFile turns a command-line style argument into a log file path.
//
// An empty arg searches logDir, then $FRAGLOG_LOGDIR, then ./logs and the
// working directory, and returns the newest *.txt file found. A directory
// resolves to its newest log. Any other value is returned unchanged.
//
// Returns ErrLogDirNotFound or ErrNoLogFiles when nothing matches.
func ResolveLogFile(arg, logDir string) (string, error) {
	return logfinder.Resolve(arg, logDir)
}
