// Package publish renders every page of a site and stores the results.
//
// A Sink stores one rendered document under a key such as
// "docs/index.html". DiskSink writes below a directory; S3Sink puts
// objects in a bucket.
//
//	sink := publish.NewDiskSink("dist")
//	res, err := publish.Build(ctx, site, sink, publish.BuildOptions{})
package publish
