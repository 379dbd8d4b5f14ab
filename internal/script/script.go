// Package script reads task shell scripts: plain text files holding one
// command per line, optionally preceded by a YAML frontmatter header.
//
//	---
//	name: weekly review
//	echo: true
//	---
//
//	add project review
//	add task review Clear inbox
//	show
package script

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/go-tasks/internal/filesystem"
)

// Header is the optional frontmatter of a script.
type Header struct {
	// Name labels the script in logs; defaults to the file name
	Name string `yaml:"name"`

	// Echo writes each command after the prompt when replaying
	Echo bool `yaml:"echo"`
}

// Script is a parsed script file.
type Script struct {
	Header

	// Path is the file the script was read from
	Path string

	// Body is the command text following the header
	Body []byte
}

// Reader returns the command text as a line-oriented reader
func (s *Script) Reader() io.Reader {
	return bytes.NewReader(s.Body)
}

// Loader reads scripts through a FileSystem
type Loader struct {
	fs filesystem.FileSystem
}

// NewLoader creates a new script loader
func NewLoader(fs filesystem.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the script at path
func (l *Loader) Load(path string) (*Script, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to read script: %s is a directory", path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return Parse(path, data)
}

// Parse parses script data from bytes
func Parse(path string, data []byte) (*Script, error) {
	var header Header

	rest, err := frontmatter.Parse(bytes.NewReader(data), &header)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script header in %s: %w", path, err)
	}

	// frontmatter.Parse returns the input unchanged when there is no header.
	hasHeader := len(rest) != len(data)

	// Blank lines separating the header from the commands are not commands.
	if hasHeader {
		rest = bytes.TrimLeft(rest, "\r\n")
	}

	if header.Name == "" {
		header.Name = filepath.Base(path)
	}

	return &Script{
		Header: header,
		Path:   path,
		Body:   rest,
	}, nil
}
