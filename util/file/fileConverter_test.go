package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testScript struct {
	Capacity int      `json:"capacity" yaml:"capacity"`
	Ops      []string `json:"ops" yaml:"ops"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUnmarshalFileYaml(t *testing.T) {
	path := writeFile(t, "script.yaml", "capacity: 5\nops:\n  - add\n  - poll\n")
	s := &testScript{}
	err := UnmarshalFile(s, path)
	assert.Equal(t, err, nil)
	assert.Equal(t, 5, s.Capacity)
	assert.Equal(t, []string{"add", "poll"}, s.Ops)
}

func TestUnmarshalFileJson(t *testing.T) {
	path := writeFile(t, "script.json", `{"capacity": 3, "ops": ["clear"]}`)
	s := &testScript{}
	assert.NoError(t, UnmarshalFile(s, path))
	assert.Equal(t, 3, s.Capacity)
	assert.Equal(t, []string{"clear"}, s.Ops)
}

func TestUnmarshalFileErrors(t *testing.T) {
	s := &testScript{}
	err := UnmarshalFile(s, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrNotFound))

	err = UnmarshalFile(s, writeFile(t, "script.toml", "capacity = 1"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	err = UnmarshalFile(s, writeFile(t, "broken.json", `{"capacity": `))
	assert.Error(t, err)
}

func TestUnmarshalPaths(t *testing.T) {
	base := writeFile(t, "base.yaml", "capacity: 5\n")
	override := writeFile(t, "override.yaml", "capacity: 8\n")
	s := &testScript{}
	assert.NoError(t, UnmarshalPaths(s, []string{base, "/nonexistent/x.yaml", override}))
	assert.Equal(t, 8, s.Capacity)

	err := UnmarshalPaths(s, []string{"/nonexistent/x.yaml"})
	assert.True(t, errors.Is(err, ErrNotFound))

	var notPtr testScript
	assert.Equal(t, ErrBadTarget, UnmarshalPaths(notPtr, []string{base}))
}
