// Package mergefile loads a conflicted file into memory and writes the
// resolved content back to the same path.
package mergefile

import "os"

// File is one merge-conflicted file held in memory while it is resolved.
type File struct {
	// Path is the file as named on the command line. Save writes back to it.
	Path string

	content []byte
}

// Open reads the whole file into memory.
func Open(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &File{Path: path, content: content}, nil
}

// Content returns the file bytes as last read or saved.
func (f *File) Content() []byte { return f.content }

// Size returns the content size in bytes.
func (f *File) Size() int64 { return int64(len(f.content)) }

// Save replaces the file on disk and keeps the given content as the new
// in-memory state. The file is created if the resolved output is written
// to a path that disappeared in the meantime.
func (f *File) Save(content []byte) error {
	if err := os.WriteFile(f.Path, content, 0o644); err != nil {
		return err
	}
	f.content = content

	return nil
}
