// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package docgen

import (
	"errors"
	"io"
	"os"
)

// ErrIsDirectory is returned when the path to document names a directory.
var ErrIsDirectory = errors.New("is a directory")

// Source supplies the content of the file to document.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// FileSource reads from the local file system.
type FileSource struct{}

// ReadFile reads the whole file. The handle is closed before returning on
// every path.
func (FileSource) ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrIsDirectory
	}
	return io.ReadAll(f)
}
