package main

import (
	"os"
	"path/filepath"
)

// sourceFile is one local file and its destination in the bucket.
type sourceFile struct {
	fname, fpath string
	key          string
	contentType  string
}

// newSourceFile maps fname (relative to source, slash separated) to its key under prefix.
func newSourceFile(source, prefix, fname string) *sourceFile {
	key := prefix + "/" + fname

	return &sourceFile{
		fname:       fname,
		fpath:       filepath.Join(source, filepath.FromSlash(fname)),
		key:         key,
		contentType: contentType(key),
	}
}

// progress is the line logged before the file is uploaded.
func (s *sourceFile) progress() string {
	return s.fpath + " => " + s.key
}

func (s *sourceFile) body() ([]byte, error) {
	return os.ReadFile(s.fpath)
}
