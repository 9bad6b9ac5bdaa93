// Package server serves a directory of JSON pages as HTML.
//
// A request for /docs/intro renders pages/docs/intro.json; a request
// for a directory renders its index.json. Each page is decoded with
// package jsonml and rendered inside the site's document shell.
//
// # Host
//
// Pages run against a per-request host that exposes the ambient values
// "path", "method" and "query", and the helpers link_to, image_tag,
// button_to, get and query:
//
//	["p", {"call": "link_to", "args": ["Home", "/"]}]
//
// # Routes
//
//	GET /metrics          Prometheus metrics, when a Gatherer is set
//	GET /_markup/reload   dev reload socket, when Reload is set
//	GET /*                static files first, then pages
//
// # Usage
//
//	srv := server.New(server.Config{
//	    Address: ":3000",
//	    Site:    &server.Site{Dir: "pages", Title: "Docs"},
//	    Static:  "public",
//	})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
