package toggles

import (
	"log/slog"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type stateFile struct {
	Toggles map[string]bool `toml:"toggles" yaml:"toggles"`
}

// LoadTOML applies a TOML state file:
//
//	[toggles]
//	FeatureA = true
//
// A file that fails to decode leaves the set untouched. Unknown names are logged and skipped.
func (s *Set[T]) LoadTOML(path string) error {
	b, err := s.readFile(path)
	if err != nil {
		return err
	}
	var sf stateFile
	if _, err := toml.Decode(string(b), &sf); err != nil {
		return &FileError{Path: path, Kind: ErrDecode, Err: err}
	}
	s.applyStates(path, sf.Toggles)
	return nil
}

// LoadYAML applies a YAML state file:
//
//	toggles:
//	  FeatureA: true
//
// A file that fails to decode leaves the set untouched. Unknown names are logged and skipped.
func (s *Set[T]) LoadYAML(path string) error {
	b, err := s.readFile(path)
	if err != nil {
		return err
	}
	var sf stateFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return &FileError{Path: path, Kind: ErrDecode, Err: err}
	}
	s.applyStates(path, sf.Toggles)
	return nil
}

func (s *Set[T]) applyStates(path string, states map[string]bool) {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := s.SetByName(name, states[name]); err != nil {
			s.opts.logger.Warn("toggle skipped",
				slog.String("path", path),
				slog.String("name", name),
				slog.String("error", err.Error()))
		}
	}
}
