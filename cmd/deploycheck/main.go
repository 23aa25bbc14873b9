// cmd/deploycheck/main.go
//
// deploycheck – hosting redirect verifier, process entry point.
//
// Run life-cycle
// --------------
//
//  1. Load env vars (optional .env via godotenv).
//
//  2. Start the rotating JSON logger (tees to stderr in a TTY).
//
//  3. Merge options: defaults → DEPLOYCHECK_* env → flags.
//
//  4. Load the hosting configuration file; a missing or unparseable
//     file maps to the ConfigNotFound outcome rather than a crash.
//
//  5. Verify the named target's redirect rules and print the report to
//     stdout: one line per rule, a summary count, a PASS/FAIL line.
//
//  6. Exit 0 on a qualifying rule, 1 when rules exist but none
//     qualifies, 2 when there was nothing to check (config, target, or
//     rule list missing).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vissenmarktplaats/deploycheck/internal/config"
	"github.com/vissenmarktplaats/deploycheck/internal/hosting"
	"github.com/vissenmarktplaats/deploycheck/internal/logger"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	os.Exit(run())
}

// run is split from main so deferred cleanup survives the os.Exit.
func run() int {
	_ = godotenv.Load()

	flagPath := flag.String("config", "", "path to the hosting configuration file (default firebase.json)")
	flagTarget := flag.String("target", "", "hosting target to verify (default "+config.DefaultTarget+")")
	flag.Parse()

	wd, _ := os.Getwd()
	log, err := logger.New(wd, runningInTTY())
	if err != nil {
		fmt.Fprintf(os.Stderr, "start logger: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	opts, err := config.LoadOptions(*flagPath, *flagTarget)
	if err != nil {
		log.Errorw("invalid options", "err", err)
		fmt.Fprintf(os.Stderr, "deploycheck: %v\n", err)
		return 2
	}

	cfg, err := config.LoadHosting(opts.ConfigPath)
	if err != nil && !errors.Is(err, config.ErrNotAvailable) {
		log.Errorw("load hosting config", "err", err)
		fmt.Fprintf(os.Stderr, "deploycheck: %v\n", err)
		return 2
	}
	// cfg stays nil on ErrNotAvailable; Verify reports ConfigNotFound.

	res := hosting.Verify(cfg, opts.Target)
	log.Infow("verify complete",
		"target", opts.Target,
		"outcome", res.Outcome.String(),
		"rules", len(res.Rules),
	)

	if err := hosting.WriteReport(os.Stdout, res); err != nil {
		log.Errorw("write report", "err", err)
		return 2
	}
	return res.Outcome.ExitCode()
}
