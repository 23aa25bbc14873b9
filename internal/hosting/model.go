// internal/hosting/model.go
//
// Typed model for the hosting section of a deployment configuration.
//
// Context
// -------
// These structs define the shape that `internal/config` unmarshals the
// hosting configuration file into.  Only the `hosting` key is modeled;
// the rest of the file (functions, emulators, and so on) is outside this
// tool's concern and is ignored by the loader.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`—the loader builds the tree with Koanf,
//     which ignores `json`/`yaml` tags unless configured otherwise.
//   • The model is read-only input.  Nothing in this package mutates it.
package hosting

//
// RedirectRule
//

// RedirectRule is one declarative redirect: requests matching Source are
// answered with a redirect of status Type to Destination.
type RedirectRule struct {
	Source      string `koanf:"source"`
	Destination string `koanf:"destination"`
	Type        int    `koanf:"type"`
}

//
// Target
//

// Target is one named hosting target.  Redirects may be absent or empty;
// the verifier treats both the same way.
type Target struct {
	Name      string         `koanf:"target"`
	Redirects []RedirectRule `koanf:"redirects"`
}

//
// Config aggregate
//

// Config is the hosting section of the configuration file: an ordered
// list of targets.  Target names are not required to be unique upstream;
// the verifier reports on the first name match only.
type Config struct {
	Hosting []Target `koanf:"hosting"`
}
