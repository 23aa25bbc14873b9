// internal/hosting/verify.go
//
// Redirect-rule verifier.
//
// Context
// -------
// Verify answers one question: does the named hosting target carry at
// least one catch-all (`/**`) permanent redirect to an HTTPS
// destination?  A bare-domain-to-www setup that is missing this rule
// silently serves nothing after deployment, so the check runs in the
// deploy pipeline before anything ships.
//
// The verifier is a pure function over an already-parsed Config.  File
// discovery and parsing live in `internal/config`; process exit codes
// and printing live in `cmd/deploycheck`.  Each distinguishable failure
// is its own Outcome so pipeline automation can branch on category.
package hosting

// Outcome classifies one verification run.  Exactly one outcome applies
// per run.
type Outcome int

const (
	// Valid means at least one qualifying rule exists.
	Valid Outcome = iota
	// ConfigNotFound means the configuration itself was missing or
	// unreadable.  The loader detects this; Verify maps a nil Config to
	// it so callers have a single result type to branch on.
	ConfigNotFound
	// TargetNotFound means no entry in the hosting list matches the
	// requested target name.
	TargetNotFound
	// NoRedirectsDefined means the target exists but its redirect list
	// is absent or empty.
	NoRedirectsDefined
	// RuleMismatch means redirect rules exist but none is a catch-all
	// HTTPS permanent redirect.
	RuleMismatch
)

// String returns a short lowercase label, stable for log fields and
// pipeline matching.
func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case ConfigNotFound:
		return "config not found"
	case TargetNotFound:
		return "target not found"
	case NoRedirectsDefined:
		return "no redirects defined"
	case RuleMismatch:
		return "rule mismatch"
	}
	return "unknown"
}

// ExitCode maps an outcome to the process-level contract: 0 pass, 1 a
// rule set exists but fails the check, 2 nothing to check at all.
func (o Outcome) ExitCode() int {
	switch o {
	case Valid:
		return 0
	case RuleMismatch:
		return 1
	}
	return 2
}

// Result carries the outcome plus everything the report needs: the
// target name that was checked and every rule found on it, in file
// order.
type Result struct {
	Outcome Outcome
	Target  string
	Rules   []RedirectRule
}

// Verify scans cfg for the first target named targetName and checks its
// redirect rules for a qualifying catch-all HTTPS rule.  It never
// mutates cfg and performs no I/O; calling it twice on the same input
// yields the same Result.
func Verify(cfg *Config, targetName string) Result {
	res := Result{Target: targetName}

	if cfg == nil {
		res.Outcome = ConfigNotFound
		return res
	}

	var target *Target
	for i := range cfg.Hosting {
		if cfg.Hosting[i].Name == targetName {
			target = &cfg.Hosting[i]
			break // first name match wins; duplicates are not an error
		}
	}
	if target == nil {
		res.Outcome = TargetNotFound
		return res
	}

	if len(target.Redirects) == 0 {
		res.Outcome = NoRedirectsDefined
		return res
	}

	res.Rules = target.Redirects
	res.Outcome = RuleMismatch
	for _, r := range target.Redirects {
		if qualifies(r) {
			res.Outcome = Valid
			break
		}
	}
	return res
}
