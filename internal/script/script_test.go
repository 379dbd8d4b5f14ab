package script

import (
	"io"
	"strings"
	"testing"

	"github.com/jakoblorz/go-tasks/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestLoader_WithHeader(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/scripts/review.tasks", []byte(`---
name: weekly review
echo: true
---

add project review
show
`))

	s, err := NewLoader(mfs).Load("/scripts/review.tasks")
	require.NoError(t, err)

	require.Equal(t, "weekly review", s.Name)
	require.True(t, s.Echo)
	require.Equal(t, "/scripts/review.tasks", s.Path)
	require.True(t, strings.HasPrefix(string(s.Body), "add project review\n"), "body: %q", s.Body)
	require.Equal(t, "add project review\nshow", strings.TrimSpace(string(s.Body)))
}

func TestLoader_WithoutHeader(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/scripts/plain.tasks", []byte("add project plain\nshow\n"))

	s, err := NewLoader(mfs).Load("/scripts/plain.tasks")
	require.NoError(t, err)

	require.Equal(t, "plain.tasks", s.Name)
	require.False(t, s.Echo)

	body, err := io.ReadAll(s.Reader())
	require.NoError(t, err)
	require.Equal(t, "add project plain\nshow\n", string(body))
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filesystem.NewMockFileSystem()).Load("/scripts/missing.tasks")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read script")
}

func TestLoader_RejectsDirectory(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/scripts/nested/review.tasks", []byte("show\n"))

	_, err := NewLoader(mfs).Load("/scripts/nested")
	require.Error(t, err)
	require.Contains(t, err.Error(), "/scripts/nested is a directory")
}

func TestParse_InvalidHeader(t *testing.T) {
	_, err := Parse("broken.tasks", []byte("---\necho: [yes\n---\nshow\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse script header")
}
