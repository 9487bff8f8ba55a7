package main

import (
	"bytes"
	"testing"
	"time"
)

func TestMsg(t *testing.T) {
	verbose, quiet := opts.verbose, opts.quiet
	defer func() { opts.verbose, opts.quiet = verbose, quiet }()

	opts.verbose, opts.quiet = false, false
	if actual := msg(); actual != "" {
		t.Error("Expected a blank message, got", actual)
	}

	opts.verbose = true
	if actual := msg("Foo", "bar", "baz"); actual != "Foo\n" {
		t.Error("Expected Foo\\n got", actual)
	}

	opts.quiet = true
	opts.verbose = false
	if actual := msg("Foo", "bar", "baz"); actual != "baz" {
		t.Error("Expected baz got", actual)
	}
	if actual := msg("Foo", "bar"); actual != "" {
		t.Error("Expected message to be blank, got", actual)
	}

	opts.quiet = false
	if actual := msg("Foo", "bar", "baz"); actual != "bar" {
		t.Error("Expected bar got", actual)
	}

	if actual := msg("Foo"); actual != "" {
		t.Error("Expected blank message got", actual)
	}
}

func TestLoggerGen(t *testing.T) {
	buf := &bytes.Buffer{}
	sayFn := loggerGen(buf)

	sayFn("verbose only")
	sayFn("line", "line\n")
	if actual := buf.String(); actual != "line\n" {
		t.Errorf("Expected %q got %q", "line\n", actual)
	}
}

func TestContentType(t *testing.T) {
	assertions := map[string]string{
		"builds/x/index.html":  "text/html",
		"builds/x/a/b.svg":     "image/svg+xml",
		"builds/x/app.js":      "application/octet-stream",
		"builds/x/INDEX.HTML":  "application/octet-stream",
		"builds/x/logo.SVG":    "application/octet-stream",
		"builds/x/page.html5":  "application/octet-stream",
		"builds/x/html":        "application/octet-stream",
		"builds/x/report.html": "text/html",
	}

	for key, mime := range assertions {
		if actual := contentType(key); actual != mime {
			t.Errorf("%s: expected %s got %s", key, mime, actual)
		}
	}
}

func TestDestinationPrefix(t *testing.T) {
	date := time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC)
	if actual, expected := destinationPrefix("builds", "rel1", date), "builds/2024-01-02-rel1"; actual != expected {
		t.Errorf("Expected %s got %s", expected, actual)
	}

	date = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	if actual, expected := destinationPrefix("a/b", "PR-12", date), "a/b/2023-12-31-PR-12"; actual != expected {
		t.Errorf("Expected %s got %s", expected, actual)
	}
}

func TestWebsiteURL(t *testing.T) {
	actual := websiteURL("mybucket", "us-east-1", "builds/2024-01-02-rel1")
	if expected := "http://mybucket.s3-website-us-east-1.amazonaws.com/builds/2024-01-02-rel1"; actual != expected {
		t.Errorf("Expected %s got %s", expected, actual)
	}
}

func TestContentMD5(t *testing.T) {
	assertions := map[string]string{
		"":                "1B2M2Y8AsgTpgAmY7PhCfg==",
		"<html></html>\n": "OR67TI2toHk8PZoe87saWA==",
	}

	for body, sum := range assertions {
		if actual := contentMD5([]byte(body)); actual != sum {
			t.Errorf("%q: expected %s got %s", body, sum, actual)
		}
	}
}
