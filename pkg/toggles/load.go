package toggles

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

// LineIssue describes one skipped line of a text state file.
type LineIssue struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason error  // wraps ErrMalformedLine or ErrUnknownToggle
}

// LoadReport summarizes what a load did.
type LoadReport struct {
	Applied int
	Issues  []LineIssue
}

// Skipped returns the number of lines that were ignored because of an issue.
func (r LoadReport) Skipped() int { return len(r.Issues) }

// LoadFile applies a text state file. Every non-empty line has the form
//
//	<value> <name>
//
// where value is 0 or 1. Lines starting with '#' are comments.
// Malformed lines and unknown names are logged and skipped; only a failure
// to read the file is returned, in which case the set is left untouched.
func (s *Set[T]) LoadFile(path string) error {
	_, err := s.LoadFileReport(path)
	return err
}

// LoadFileReport is LoadFile returning what was applied and skipped.
func (s *Set[T]) LoadFileReport(path string) (LoadReport, error) {
	b, err := s.readFile(path)
	if err != nil {
		return LoadReport{}, err
	}
	return s.loadText(string(b), path), nil
}

// LoadText applies already-read state file content. See LoadFile for the grammar.
func (s *Set[T]) LoadText(text string) LoadReport {
	return s.loadText(text, "")
}

func (s *Set[T]) loadText(text, path string) LoadReport {
	var rep LoadReport
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, err := parseLine(trimmed)
		if err == nil {
			err = s.SetByName(name, value)
		}
		if err != nil {
			issue := LineIssue{Line: n + 1, Text: line, Reason: err}
			rep.Issues = append(rep.Issues, issue)
			s.warn(path, issue)
			continue
		}
		rep.Applied++
	}
	return rep
}

// parseLine splits "<value> <name>" into its parts.
func parseLine(line string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", false, fmt.Errorf("%w: want \"<0|1> <name>\", got %d fields", ErrMalformedLine, len(fields))
	}
	switch fields[0] {
	case "0":
		return fields[1], false, nil
	case "1":
		return fields[1], true, nil
	default:
		return "", false, fmt.Errorf("%w: value %q is not 0 or 1", ErrMalformedLine, fields[0])
	}
}

func (s *Set[T]) warn(path string, issue LineIssue) {
	attrs := []any{
		slog.Int("line", issue.Line),
		slog.String("text", issue.Text),
		slog.String("error", issue.Reason.Error()),
	}
	if path != "" {
		attrs = append([]any{slog.String("path", path)}, attrs...)
	}
	s.opts.logger.Warn("toggle line skipped", attrs...)
}

func (s *Set[T]) readFile(path string) ([]byte, error) {
	b, err := util.ReadFile(s.opts.fs, path)
	if err != nil {
		return nil, &FileError{Path: path, Kind: ErrFileRead, Err: err}
	}
	return b, nil
}

// LoadAuto picks a loader by file extension: .toml, .yaml/.yml, or the text grammar otherwise.
func (s *Set[T]) LoadAuto(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return s.LoadTOML(path)
	case ".yaml", ".yml":
		return s.LoadYAML(path)
	default:
		return s.LoadFile(path)
	}
}
