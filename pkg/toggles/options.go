package toggles

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Option configures a Set.
type Option func(*options)

type options struct {
	logger *slog.Logger
	fs     billy.Basic
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		fs:     osfs.Default,
	}
}

// WithLogger sets the sink for warnings about skipped lines and unknown names.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFS sets the filesystem state files are read from. Defaults to the OS filesystem.
func WithFS(fs billy.Basic) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}
