package toggles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMemFile(t *testing.T, fs billy.Filesystem, name, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadFile_BothResolvable(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.txt", "0 FeatureA\n1 FeatureB\n")

	s, logs := newTestSet(t, WithFS(fs))
	require.NoError(t, s.LoadFile("toggles.txt"))

	a, err := s.GetByName("FeatureA")
	require.NoError(t, err)
	assert.False(t, a)

	b, err := s.GetByName("FeatureB")
	require.NoError(t, err)
	assert.True(t, b)

	assert.Empty(t, logs.String())
}

func TestLoadFile_MalformedLineSkipped(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.txt", "1 FeatureA\nFeatureB\n")

	s, logs := newTestSet(t, WithFS(fs))
	require.NoError(t, s.LoadFile("toggles.txt"))

	assert.True(t, s.GetEnum(featureA))
	assert.False(t, s.GetEnum(featureB))
	assert.False(t, s.GetEnum(featureC))
	assert.Contains(t, logs.String(), "toggle line skipped")
	assert.Contains(t, logs.String(), "line=2")
}

func TestLoadFileReport(t *testing.T) {
	content := "1 FeatureA\n" +
		"0 FeatureB\n" +
		"0 VAR1\n" +
		"TESTTEST\n" +
		"\n" +
		"# comment\n" +
		"2 FeatureC\n" +
		"1 FeatureC extra\n" +
		"  1\tFeatureC  \r\n"

	fs := memfs.New()
	writeMemFile(t, fs, "toggles.txt", content)

	s, _ := newTestSet(t, WithFS(fs))
	rep, err := s.LoadFileReport("toggles.txt")
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Applied)
	require.Equal(t, 4, rep.Skipped())

	assert.Equal(t, 3, rep.Issues[0].Line)
	assert.ErrorIs(t, rep.Issues[0].Reason, ErrUnknownToggle)

	assert.Equal(t, 4, rep.Issues[1].Line)
	assert.ErrorIs(t, rep.Issues[1].Reason, ErrMalformedLine)

	assert.Equal(t, 7, rep.Issues[2].Line)
	assert.ErrorIs(t, rep.Issues[2].Reason, ErrMalformedLine)

	assert.Equal(t, 8, rep.Issues[3].Line)
	assert.ErrorIs(t, rep.Issues[3].Reason, ErrMalformedLine)

	assert.True(t, s.GetEnum(featureA))
	assert.False(t, s.GetEnum(featureB))
	assert.True(t, s.GetEnum(featureC))
}

func TestLoadFile_Missing(t *testing.T) {
	s, _ := newTestSet(t, WithFS(memfs.New()))

	err := s.LoadFile("nope.txt")
	require.ErrorIs(t, err, ErrFileRead)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "nope.txt", fe.Path)

	assert.Zero(t, s.Count())
	assert.Equal(t, "0 FeatureA\n0 FeatureB\n0 FeatureC\n", s.String())
}

func TestLoadFile_MissingKeepsPriorState(t *testing.T) {
	s, _ := newTestSet(t, WithFS(memfs.New()))
	s.SetEnum(featureB, true)

	require.Error(t, s.LoadFile("nope.txt"))
	assert.Equal(t, []testToggle{featureB}, s.Enabled())
}

func TestLoadFile_OSFilesystem(t *testing.T) {
	path := writeTempFile(t, "toggles.txt", "1 FeatureC\n")

	s, _ := newTestSet(t)
	require.NoError(t, s.LoadFile(path))
	assert.True(t, s.GetEnum(featureC))

	err := s.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrFileRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadText_RoundTrip(t *testing.T) {
	src, _ := newTestSet(t)
	src.SetEnum(featureA, true)
	src.SetEnum(featureC, true)

	dst, _ := newTestSet(t)
	rep := dst.LoadText(src.String())

	assert.Equal(t, 3, rep.Applied)
	assert.Zero(t, rep.Skipped())
	assert.Equal(t, src.String(), dst.String())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		wantName  string
		wantValue bool
		wantErr   bool
	}{
		{"1 FeatureA", "FeatureA", true, false},
		{"0 FeatureA", "FeatureA", false, false},
		{"0\tFeatureA", "FeatureA", false, false},
		{"FeatureA", "", false, true},
		{"FeatureA: 1", "", false, true},
		{"true FeatureA", "", false, true},
		{"01 FeatureA", "", false, true},
		{"1 FeatureA FeatureB", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, value, err := parseLine(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestLoadTOML(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.toml", `
[toggles]
FeatureA = true
FeatureB = false
Ghost = true
`)

	s, logs := newTestSet(t, WithFS(fs))
	s.SetEnum(featureB, true)
	require.NoError(t, s.LoadTOML("toggles.toml"))

	assert.True(t, s.GetEnum(featureA))
	assert.False(t, s.GetEnum(featureB))
	assert.Contains(t, logs.String(), "name=Ghost")
}

func TestLoadTOML_DecodeError(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.toml", "[toggles]\nFeatureA = \"yes\"\n")

	s, _ := newTestSet(t, WithFS(fs))
	err := s.LoadTOML("toggles.toml")
	require.ErrorIs(t, err, ErrDecode)
	assert.Zero(t, s.Count())
}

func TestLoadYAML(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.yaml", "toggles:\n  FeatureC: true\n  Ghost: false\n")

	s, logs := newTestSet(t, WithFS(fs))
	require.NoError(t, s.LoadYAML("toggles.yaml"))

	assert.Equal(t, []testToggle{featureC}, s.Enabled())
	assert.Contains(t, logs.String(), "name=Ghost")
}

func TestLoadYAML_DecodeError(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "toggles.yaml", "toggles: [1, 2\n")

	s, _ := newTestSet(t, WithFS(fs))
	require.ErrorIs(t, s.LoadYAML("toggles.yaml"), ErrDecode)
	require.ErrorIs(t, s.LoadYAML("missing.yaml"), ErrFileRead)
}

func TestLoadAuto(t *testing.T) {
	fs := memfs.New()
	writeMemFile(t, fs, "a.toml", "[toggles]\nFeatureA = true\n")
	writeMemFile(t, fs, "b.yml", "toggles:\n  FeatureB: true\n")
	writeMemFile(t, fs, "c.txt", "1 FeatureC\n")

	s, _ := newTestSet(t, WithFS(fs))
	for _, p := range []string{"a.toml", "b.yml", "c.txt"} {
		require.NoError(t, s.LoadAuto(p), p)
	}

	assert.Equal(t, 3, s.Count())
}
