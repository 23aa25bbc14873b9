// internal/config/model.go
//
// Typed options for the deploycheck tool itself.
//
// Context
// -------
// Options describes what to check, not the hosting configuration being
// checked (that model lives in `internal/hosting`).  Values come from
// three layers, highest precedence last:
//
//   • built-in defaults,
//   • `DEPLOYCHECK_`-prefixed environment variables,
//   • command-line flags.
//
// Validation happens immediately after the layers merge; the tool fails
// fast rather than running with an empty path or target name.
package config

// Defaults applied when neither environment nor flags supply a value.
const (
	DefaultConfigPath = "firebase.json"
	DefaultTarget     = "vissenmarktplaats-www-redirect"
)

// Options is the immutable aggregate returned by LoadOptions.
type Options struct {
	// ConfigPath locates the hosting configuration file.  A relative
	// path is resolved by climbing parent directories from the cwd.
	ConfigPath string `koanf:"config_path" validate:"required"`
	// Target is the hosting target whose redirects are verified.
	Target string `koanf:"target" validate:"required"`
}
