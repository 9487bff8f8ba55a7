package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const usage = "Usage: s3publish [flags] <bucket-name> <build-name> <source-dir> <dest-dir>"

// defaultWebsiteRegion is the region used in the printed website URL unless overridden.
const defaultWebsiteRegion = "us-east-1"

var opts = &options{}

var say = loggerGen()

// defaultOptions builds the options used before any config file or flag is applied.
// It must run after the .env file was loaded.
func defaultOptions() *options {
	region := os.Getenv("AWS_DEFAULT_REGION")
	if region == "" {
		region = defaultWebsiteRegion
	}

	return &options{
		Region:        region,
		WebsiteRegion: defaultWebsiteRegion,
		Profile:       os.Getenv("AWS_DEFAULT_PROFILE"),
		cfgFile:       ".s3publish.json",
	}
}

// processCmdLineFlags wraps the command line flags handling.
func processCmdLineFlags(fs *flag.FlagSet, opts *options, args []string) error {
	fs.StringVar(&opts.Region, "region", opts.Region, "AWS region of the S3 client")
	fs.StringVar(&opts.WebsiteRegion, "website-region", opts.WebsiteRegion, "Region used in the printed website URL")
	fs.StringVar(&opts.Profile, "profile", opts.Profile, "AWS shared profile")
	fs.StringVar(&opts.Endpoint, "endpoint", opts.Endpoint, "S3 compatible endpoint (host:port), uses MinIO client when set")
	fs.BoolVar(&opts.Insecure, "insecure", opts.Insecure, "Use plain HTTP for -endpoint")
	fs.StringVar(&opts.cfgFile, "cfgfile", opts.cfgFile, "Config file location")
	fs.BoolVar(&opts.dryRun, "dry", opts.dryRun, "Dry run (do not upload)")
	fs.BoolVar(&opts.verbose, "verbose", opts.verbose, "Print informational messages too")
	fs.BoolVar(&opts.quiet, "quiet", opts.quiet, "Print only warnings and/or errors")
	fs.BoolVar(&opts.saveCfg, "save", opts.saveCfg, "Saves the current commandline options to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 4 {
		fs.Usage()
		return fmt.Errorf("expected 4 arguments, got %d", fs.NArg())
	}
	opts.bucketName, opts.buildName, opts.source, opts.destDir = fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)

	return nil
}

// setup applies, in order: the default config file, the command line, and
// (if -cfgfile pointed elsewhere) that config file with the command line
// reapplied on top. With -save the result is written back.
func setup(fs *flag.FlagSet, opts *options, args []string) (err error) {
	oldCfgFile := opts.cfgFile
	if err = opts.restore(opts.cfgFile); err != nil {
		return &exitError{SetupFailed, err}
	}
	if err = processCmdLineFlags(fs, opts, args); err != nil {
		return &exitError{CmdLineOptionError, err}
	}
	if opts.cfgFile != oldCfgFile {
		if err = opts.restore(opts.cfgFile); err != nil {
			return &exitError{SetupFailed, err}
		}
		if err = fs.Parse(args); err != nil {
			return &exitError{CmdLineOptionError, err}
		}
	}
	if opts.saveCfg {
		if err = opts.dump(opts.cfgFile); err != nil {
			return &exitError{SetupFailed, err}
		}
	}

	if err = validateCmdLineFlags(opts); err != nil {
		return &exitError{CmdLineOptionError, err}
	}

	return nil
}

// validateCmdLineFlags validates the positional arguments. Defers actual validation to validateCmdLineFlag()
func validateCmdLineFlags(opts *options) (err error) {
	flags := []struct{ label, val string }{
		{"Bucket Name", opts.bucketName},
		{"Build Name", opts.buildName},
		{"Source", opts.source},
	}
	for _, f := range flags {
		if err = validateCmdLineFlag(f.label, f.val); err != nil {
			return
		}
	}
	return
}

// validateCmdLineFlag handles the actual validation of flags.
func validateCmdLineFlag(label, val string) error {
	switch label {
	case "Bucket Name", "Build Name":
		if val == "" {
			return errors.New(label + " is not set")
		}
	default:
		fi, err := os.Stat(val)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s %s is not a directory", label, val)
		}
	}
	return nil
}

func initAWSClient(opts *options) (s3iface.S3API, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, &exitError{SetupFailed, err}
	}

	creds := credentials.NewChainCredentials(
		[]credentials.Provider{
			&credentials.SharedCredentialsProvider{Profile: opts.Profile},
			&ec2rolecreds.EC2RoleProvider{Client: ec2metadata.New(sess)},
			&credentials.EnvProvider{},
		})
	if _, err := creds.Get(); err != nil {
		return nil, &exitError{S3AuthError, fmt.Errorf("unable to initialize AWS credentials - please check environment: %w", err)}
	}

	return s3.New(sess, &aws.Config{
		Credentials: creds,
		Region:      aws.String(opts.Region),
	}), nil
}

// connect builds the storage client selected by opts.
func connect(ctx context.Context, opts *options) (bucket, error) {
	if opts.Endpoint != "" {
		b, err := newMinioBucket(ctx, minioConfig{
			Endpoint: opts.Endpoint,
			Bucket:   opts.bucketName,
			Region:   opts.Region,
			UseSSL:   !opts.Insecure,
		})
		if err != nil {
			return nil, &exitError{SetupFailed, err}
		}
		say("Connected to " + opts.Endpoint)
		return b, nil
	}

	svc, err := initAWSClient(opts)
	if err != nil {
		return nil, err
	}
	b, err := openS3Bucket(ctx, svc, opts.bucketName)
	if err != nil {
		return nil, &exitError{SetupFailed, err}
	}
	say("Connected to S3 bucket " + opts.bucketName + " in " + opts.Region)

	return b, nil
}
