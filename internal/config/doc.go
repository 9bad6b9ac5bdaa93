// Package config provides configuration parsing for markup projects.
//
// The configuration is stored in markup.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "docs",
//	  "paths": {
//	    "pages": "pages",
//	    "static": "public"
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000
//	  },
//	  "dev": {
//	    "hotReload": true,
//	    "watch": ["pages", "public"],
//	    "interval": "300ms"
//	  },
//	  "build": {
//	    "output": "dist",
//	    "target": "s3"
//	  },
//	  "render": {
//	    "cacheCapacity": 4096
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "markup"
//	  },
//	  "s3": {
//	    "bucket": "my-site",
//	    "prefix": "v2/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Pages:", cfg.PagesPath())
package config
