package config

import (
	"flag"
	"os"
	"time"

	"github.com/XVDel0Saint/fameconnect/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the registration API
//	-f string   local SQLite database file
//	-t int      HTTP request timeout (seconds)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the config-file flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "base URL of the registration API")
	fs.StringVar(&config.DatabaseFile, "f", config.DatabaseFile, "local database file")
	timeout := fs.Int("t", int(config.RequestTimeout/time.Second), "request timeout in seconds")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
}
