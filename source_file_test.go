package main

import (
	"path/filepath"
	"testing"
)

func TestNewSourceFile(t *testing.T) {
	fname := "a/b.html"
	sf := newSourceFile("out", "builds/2024-01-02-rel1", fname)

	if sf.fname != fname {
		t.Errorf("Expected fname to be set to %s got %s", fname, sf.fname)
	}

	if fpath := filepath.Join("out", "a", "b.html"); sf.fpath != fpath {
		t.Errorf("Expected fpath to be set to %s got %s", fpath, sf.fpath)
	}

	if key := "builds/2024-01-02-rel1/a/b.html"; sf.key != key {
		t.Errorf("Expected key to be set to %s got %s", key, sf.key)
	}

	if sf.contentType != "text/html" {
		t.Errorf("Expected text/html got %s", sf.contentType)
	}

	if progress := filepath.Join("out", "a", "b.html") + " => builds/2024-01-02-rel1/a/b.html"; sf.progress() != progress {
		t.Errorf("Expected progress %q got %q", progress, sf.progress())
	}
}

func TestSourceFileBody(t *testing.T) {
	src := writeTree(t, map[string]string{"barbaz.txt": "Bar Baz\n"})

	sf := newSourceFile(src, "p", "barbaz.txt")
	expectedStr := "Bar Baz\n"
	if actual, err := sf.body(); err != nil || string(actual) != expectedStr {
		t.Errorf("Expected to get %s got %s (%v)", expectedStr, actual, err)
	}

	sf = newSourceFile(src, "p", "bogus")
	if actual, err := sf.body(); len(actual) != 0 || err == nil {
		t.Errorf("Expected to get blank body and an error. Got %v and %s", err, actual)
	}
}
