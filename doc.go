/*
S3Publish is a small tool that publishes a build's output folder to an S3 bucket.

	s3publish [flags] <bucket-name> <build-name> <source-dir> <dest-dir>

Every regular file under source-dir is uploaded to

	<dest-dir>/<YYYY-MM-DD>-<build-name>/<path relative to source-dir>

with a Content-Type picked from its extension (text/html for .html, image/svg+xml
for .svg, application/octet-stream for anything else) and the public-read ACL.
Files are processed one at a time, in lexical order of their relative path, and
each one is logged to stderr as "<local path> => <key>" before it is uploaded.

When all files are uploaded, the static website URL of the prefix is printed to
stdout, e.g.

	http://mybucket.s3-website-us-east-1.amazonaws.com/builds/2024-01-02-rel1

The region in that URL comes from -website-region, not from the bucket.

The first error stops the run. Nothing is retried or rolled back, so a failed
run may leave a partially populated prefix behind.

Credentials are resolved from the shared credentials file (-profile), the EC2
instance role or the AWS_* environment variables, in that order. A .env file in
the current folder is loaded first, if present. With -endpoint the upload goes to
an S3 compatible server (MinIO, Ceph, ...) using the AWS_* environment credentials.

Flag values (but not the positional arguments) can be saved with -save to a JSON
config file (.s3publish.json by default) and are read back from it on subsequent runs.
*/
package main
