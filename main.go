package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// Exit codes
const (
	Success = iota
	SetupFailed
	S3AuthError
	CmdLineOptionError
	FileReadFailed
	UploadFailed
)

// exitError ties an error to the exit code main reports it with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode returns the exit code carried by err, SetupFailed if there is none.
func exitCode(err error) int {
	if err == nil {
		return Success
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return SetupFailed
}

// publisher uploads a source tree under a dated, build named prefix.
type publisher struct {
	bucketName    string // used when bucket is nil
	bucket        bucket // nil on dry runs
	websiteRegion string
	dryRun        bool
	now           func() time.Time
}

// run uploads every regular file under source to
// "<destDir>/<YYYY-MM-DD>-<buildName>/<relative path>", making each one
// public, and returns the website URL of the prefix. The first error aborts
// the run; objects uploaded so far are left in place.
func (p *publisher) run(ctx context.Context, buildName, source, destDir string) (string, error) {
	if err := validateCmdLineFlag("Source", source); err != nil {
		return "", &exitError{CmdLineOptionError, err}
	}

	prefix := destinationPrefix(destDir, buildName, p.now())

	list, err := listFiles(source)
	if err != nil {
		return "", &exitError{FileReadFailed, err}
	}
	say(fmt.Sprintf("There are %d files to be uploaded to '%s/%s'", len(list), p.name(), prefix))

	for _, fname := range list {
		src := newSourceFile(source, prefix, fname)
		say(src.progress(), src.progress()+"\n")

		if p.dryRun {
			continue
		}

		if err := p.upload(ctx, src); err != nil {
			return "", err
		}
	}

	return websiteURL(p.name(), p.websiteRegion, prefix), nil
}

// name is the bucket's own name, or the configured one on dry runs.
func (p *publisher) name() string {
	if p.bucket != nil {
		return p.bucket.Name()
	}

	return p.bucketName
}

func (p *publisher) upload(ctx context.Context, src *sourceFile) error {
	data, err := src.body()
	if err != nil {
		return &exitError{FileReadFailed, err}
	}

	if err = p.bucket.Put(ctx, src.key, data, src.contentType, contentMD5(data)); err != nil {
		return &exitError{UploadFailed, err}
	}

	if err = p.bucket.MakePublic(ctx, src.key); err != nil {
		return &exitError{UploadFailed, err}
	}

	return nil
}

func abort(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(exitCode(err))
}

func main() {
	envErr := godotenv.Load()

	opts = defaultOptions()
	fs := flag.NewFlagSet("s3publish", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := setup(fs, opts, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(Success)
		}
		abort(err)
	}
	if envErr != nil {
		say("No .env file loaded: " + envErr.Error())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := &publisher{
		bucketName:    opts.bucketName,
		websiteRegion: opts.WebsiteRegion,
		dryRun:        opts.dryRun,
		now:           time.Now,
	}
	if !opts.dryRun {
		b, err := connect(ctx, opts)
		if err != nil {
			abort(err)
		}
		p.bucket = b
	}

	url, err := p.run(ctx, opts.buildName, opts.source, opts.destDir)
	if err != nil {
		abort(err)
	}

	fmt.Println(url)
}
