// Command viewproj projects points through a camera view volume.
//
// Points are read from stdin, one "x y z" per line:
//
//	echo "1 2 3" | viewproj -kind perspective -eye 0,0,10 -fovy 60
//	echo "0.5 0.5 0.9" | viewproj -mode unproject
//	viewproj -mode matrix -kind orthographic -height 4
//
// Every flag has a VIEWPROJ_* environment counterpart; flags win.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/viewproj/internal/platform/config"
	"github.com/katalvlaran/viewproj/internal/tools/viewproj"
)

func main() {
	cfg, err := viewproj.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "viewproj: ", log.LstdFlags)
	}
	if err := viewproj.Run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		config.Exitf("viewproj: %v", err)
	}
}
