package main

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Content types assigned to uploaded objects.
const (
	mimeHTML    = "text/html"
	mimeSVG     = "image/svg+xml"
	mimeDefault = "application/octet-stream"
)

// dateLayout is the ISO 8601 calendar date.
const dateLayout = "2006-01-02"

// msg accepts 3 messages, corresponding to (in order): verbose, normal, quiet,
// and returns one of them based on the opts.verbose and opts.quiet flags.
//
// The verbose message gets a trailing newline, the others are returned as given.
// A missing message for the current state means nothing is printed.
func msg(msgs ...string) string {
	switch {
	case opts.verbose:
		if len(msgs) > 0 {
			return msgs[0] + "\n"
		}
	case opts.quiet:
		if len(msgs) > 2 {
			return msgs[2]
		}
	default:
		if len(msgs) > 1 {
			return msgs[1]
		}
	}

	return ""
}

// loggerGen returns a say func that writes msg() output to w, or to stderr
// when no writer is given.
func loggerGen(w ...io.Writer) func(...string) {
	var out io.Writer = os.Stderr
	if len(w) > 0 {
		out = w[0]
	}

	return func(msgs ...string) {
		if m := msg(msgs...); m != "" {
			fmt.Fprint(out, m)
		}
	}
}

// contentType picks the Content-Type for an object key by its suffix.
// Matching is case sensitive.
func contentType(key string) string {
	switch {
	case strings.HasSuffix(key, ".html"):
		return mimeHTML
	case strings.HasSuffix(key, ".svg"):
		return mimeSVG
	default:
		return mimeDefault
	}
}

// destinationPrefix returns "<destDir>/<YYYY-MM-DD>-<buildName>" for the date of t.
func destinationPrefix(destDir, buildName string, t time.Time) string {
	return destDir + "/" + t.Format(dateLayout) + "-" + buildName
}

// websiteURL is the public static website address of prefix.
func websiteURL(bucketName, region, prefix string) string {
	return fmt.Sprintf("http://%s.s3-website-%s.amazonaws.com/%s", bucketName, region, prefix)
}

// contentMD5 is the base64 md5 sum of data, as expected by the Content-MD5 header.
func contentMD5(data []byte) string {
	sum := md5.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}
