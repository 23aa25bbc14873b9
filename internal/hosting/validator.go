// internal/hosting/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// The qualifying-rule predicate in `verify.go` is expressed as validate
// tags on the `catchAllHTTPS` struct rather than as hand-rolled string
// comparisons.  A single package-level validator instance evaluates it;
// the instance is safe for concurrent use and caches struct metadata, so
// repeated checks are cheap.
package hosting

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// qualifying shape
//

// catchAllHTTPS mirrors RedirectRule with the qualifying shape encoded
// as tags: exact match on source and status, prefix match on the
// destination scheme.  `required` rejects the empty destination before
// the prefix rule runs.
type catchAllHTTPS struct {
	Source      string `validate:"eq=/**"`
	Destination string `validate:"required,startswith=https://"`
	Type        int    `validate:"eq=301"`
}

// qualifies reports whether one rule is a catch-all permanent redirect
// to an HTTPS destination.
func qualifies(r RedirectRule) bool {
	return v.Struct(catchAllHTTPS{
		Source:      r.Source,
		Destination: r.Destination,
		Type:        r.Type,
	}) == nil
}
