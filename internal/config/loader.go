// internal/config/loader.go
//
// Option loading and hosting-configuration loading.
//
/*
Context
--------
Two loaders live here.

`LoadOptions(flagPath, flagTarget)` merges three layers into one
immutable `Options` value (highest precedence last):

  1. Built-in defaults (`firebase.json`, the www-redirect target).
  2. Environment variables prefixed `DEPLOYCHECK_`, where `__` maps to
     “.” (e.g., `DEPLOYCHECK_CONFIG_PATH → config_path`).
  3. Non-empty command-line flag values.

`LoadHosting(path)` locates and parses the hosting configuration file
into the typed `hosting.Config`.  A relative path is searched by
climbing the cwd tree, so the tool works from any repo sub-directory.
The parser is picked by extension: `.yaml`/`.yml` parse as YAML,
everything else as JSON (firebase.json being the common case).

A missing or unparseable file is surfaced as `ErrNotAvailable`, never as
an opaque crash—the verifier treats it as a distinguishable outcome.

Instrumentation
---------------
  • DEBUG spans — path discovery, file read.
  • ERROR spans — parse, unmarshal, option-validation failures.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot
    issues surface even before the file logger is installed.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/vissenmarktplaats/deploycheck/internal/hosting"
)

// ErrNotAvailable marks a hosting configuration that is missing or
// unreadable.  Callers match it with errors.Is.
var ErrNotAvailable = errors.New("hosting configuration not available")

/*────────────────────────────── options ───────────────────────────────────*/

// LoadOptions merges defaults, environment, and flag values, validates,
// and returns the result.  Empty flag values mean "not set".
func LoadOptions(flagPath, flagTarget string) (*Options, error) {
	k := koanf.New(".")

	// Env overrides: DEPLOYCHECK_CONFIG_PATH → config_path.  The
	// provider hands the callback the full variable name, prefix
	// included, so the prefix must be trimmed before mapping.
	if err := k.Load(env.Provider("DEPLOYCHECK_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "DEPLOYCHECK_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("option env overlay failed", "err", err)
		return nil, err
	}

	opts := Options{
		ConfigPath: DefaultConfigPath,
		Target:     DefaultTarget,
	}
	if err := k.Unmarshal("", &opts); err != nil {
		zap.S().Errorw("option unmarshal failed", "err", err)
		return nil, err
	}

	// Flags win over everything.
	if flagPath != "" {
		opts.ConfigPath = flagPath
	}
	if flagTarget != "" {
		opts.Target = flagTarget
	}

	if err := validateStruct(&opts); err != nil {
		zap.S().Errorw("option validation failed", "err", err)
		return nil, err
	}

	zap.S().Debugw("options loaded",
		"config_path", opts.ConfigPath,
		"target", opts.Target,
	)
	return &opts, nil
}

/*────────────────────────── hosting config ────────────────────────────────*/

// LoadHosting reads and parses the hosting configuration at path.  The
// returned error wraps ErrNotAvailable when the file is absent or does
// not parse.
func LoadHosting(path string) (*hosting.Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		zap.S().Debugw("hosting config not found", "path", path)
		return nil, err
	}
	zap.S().Debugw("hosting config resolved", "path", resolved)

	k := koanf.New(".")
	if err := k.Load(file.Provider(resolved), parserFor(resolved)); err != nil {
		zap.S().Errorw("hosting config parse failed", "file", resolved, "err", err)
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNotAvailable, resolved, err)
	}

	var cfg hosting.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("hosting config unmarshal failed", "file", resolved, "err", err)
		return nil, fmt.Errorf("%w: unmarshal %s: %v", ErrNotAvailable, resolved, err)
	}
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// parserFor picks the Koanf parser by file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return json.Parser()
}

// resolvePath stats an absolute path directly; a relative path is tried
// against each ancestor of the cwd, nearest first.  This lets the tool
// run from a repo sub-directory the way `go run` often does.
func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotAvailable, path)
		}
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	dir := wd
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: %s", ErrNotAvailable, path)
}
