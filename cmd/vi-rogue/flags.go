package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/vi-rogue/constants"
)

// options holds the command-line configuration
type options struct {
	configPath string
	savesDir   string
	logPath    string
	logLevel   string
	seed       string
	mute       bool
}

// parseFlags reads options from args, excluding the program name
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("vi-rogue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", constants.DefaultConfigPath, "Path to the palette and item catalog TOML file")
	fs.StringVar(&o.savesDir, "saves", constants.DefaultSavesDir, "Directory holding save files")
	fs.StringVar(&o.logPath, "log", constants.DefaultLogPath, "Log file path")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error (default LOG_LEVEL or info)")
	fs.StringVar(&o.seed, "seed", "", "Start a new game immediately with this seed")
	fs.BoolVar(&o.mute, "mute", false, "Disable combat sounds")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}
