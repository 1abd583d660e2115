package toggles

import (
	"log/slog"
	"os"
	"sync"
)

// Once wraps build so that it runs at most once. Every call of the returned
// function yields the same set and error. The set must be treated as read-only
// once published.
func Once[T comparable](build func() (*Set[T], error)) func() (*Set[T], error) {
	return sync.OnceValues(build)
}

// FromEnv builds a set for kind and loads the state file named by the
// environment variable envVar with LoadAuto. An unset variable is logged and
// yields an all-off set; an empty one yields it silently.
func FromEnv[T comparable](kind *Kind[T], envVar string, opts ...Option) (*Set[T], error) {
	s := New(kind, opts...)
	path, ok := os.LookupEnv(envVar)
	if !ok {
		s.opts.logger.Warn("toggle file variable not set", slog.String("env", envVar))
		return s, nil
	}
	if path == "" {
		return s, nil
	}
	if err := s.LoadAuto(path); err != nil {
		return nil, err
	}
	return s, nil
}
