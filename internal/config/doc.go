// Package config reads and writes tooltips.json, the project file used by
// the tooltips CLI and preview server.
//
// # Configuration File Structure
//
//	{
//	  "runtime": {
//	    "rootId": "shiny-tooltips-root",
//	    "definitionClass": "shiny-tooltip-definition",
//	    "classPrefix": "shiny-tooltip",
//	    "graceMs": 100
//	  },
//	  "dev": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "page": "index.html",
//	    "assets": "dist",
//	    "watch": ["index.html"],
//	    "hotReload": true
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
//	sys := tooltips.New(doc, scheduler, cfg.TooltipsConfig())
package config
