// internal/hosting/verify_test.go
//
// Unit-tests for the redirect-rule verifier.
//
// Context
// -------
// Verify is a pure function, so every case runs on in-memory fixtures.
// The table covers the five outcomes plus the predicate edges that have
// bitten real deployments: single-star wildcard, temporary redirect
// status, and a plain-HTTP destination.
package hosting

import (
	"reflect"
	"testing"
)

const wwwTarget = "vissenmarktplaats-www-redirect"

// fixture builds a config with one target carrying the given rules.
func fixture(name string, rules []RedirectRule) *Config {
	return &Config{Hosting: []Target{{Name: name, Redirects: rules}}}
}

var catchAll = RedirectRule{
	Source:      "/**",
	Destination: "https://vissenmarktplaats.nl",
	Type:        301,
}

func TestVerify_Outcomes(t *testing.T) {
	cases := []struct {
		name   string
		cfg    *Config
		target string
		want   Outcome
	}{
		{
			name:   "qualifying catch-all rule",
			cfg:    fixture(wwwTarget, []RedirectRule{catchAll}),
			target: wwwTarget,
			want:   Valid,
		},
		{
			name: "no wildcard rule",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/old", Destination: "https://vissenmarktplaats.nl/new", Type: 301},
			}),
			target: wwwTarget,
			want:   RuleMismatch,
		},
		{
			name:   "empty redirect list",
			cfg:    fixture(wwwTarget, []RedirectRule{}),
			target: wwwTarget,
			want:   NoRedirectsDefined,
		},
		{
			name:   "absent redirect list",
			cfg:    fixture(wwwTarget, nil),
			target: wwwTarget,
			want:   NoRedirectsDefined,
		},
		{
			name:   "target missing",
			cfg:    fixture("some-other-site", []RedirectRule{catchAll}),
			target: wwwTarget,
			want:   TargetNotFound,
		},
		{
			name:   "empty hosting list",
			cfg:    &Config{},
			target: wwwTarget,
			want:   TargetNotFound,
		},
		{
			name:   "nil config",
			cfg:    nil,
			target: wwwTarget,
			want:   ConfigNotFound,
		},
		{
			name: "non-HTTPS destination",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/**", Destination: "http://vissenmarktplaats.nl", Type: 301},
			}),
			target: wwwTarget,
			want:   RuleMismatch,
		},
		{
			name: "single-star wildcard",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/*", Destination: "https://vissenmarktplaats.nl", Type: 301},
			}),
			target: wwwTarget,
			want:   RuleMismatch,
		},
		{
			name: "temporary redirect status",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/**", Destination: "https://vissenmarktplaats.nl", Type: 302},
			}),
			target: wwwTarget,
			want:   RuleMismatch,
		},
		{
			name: "empty destination",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/**", Destination: "", Type: 301},
			}),
			target: wwwTarget,
			want:   RuleMismatch,
		},
		{
			name: "qualifying rule after noise",
			cfg: fixture(wwwTarget, []RedirectRule{
				{Source: "/old", Destination: "https://vissenmarktplaats.nl/new", Type: 301},
				{Source: "/**", Destination: "http://vissenmarktplaats.nl", Type: 301},
				catchAll,
			}),
			target: wwwTarget,
			want:   Valid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Verify(tc.cfg, tc.target)
			if res.Outcome != tc.want {
				t.Fatalf("outcome = %s, want %s", res.Outcome, tc.want)
			}
			if res.Target != tc.target {
				t.Fatalf("result target = %q, want %q", res.Target, tc.target)
			}
		})
	}
}

func TestVerify_FirstTargetWins(t *testing.T) {
	// Duplicate target names are legal upstream; only the first match
	// is inspected.
	cfg := &Config{Hosting: []Target{
		{Name: wwwTarget, Redirects: []RedirectRule{catchAll}},
		{Name: wwwTarget, Redirects: nil},
	}}
	if res := Verify(cfg, wwwTarget); res.Outcome != Valid {
		t.Fatalf("outcome = %s, want valid", res.Outcome)
	}
}

func TestVerify_ReportsAllRules(t *testing.T) {
	rules := []RedirectRule{
		{Source: "/old", Destination: "https://vissenmarktplaats.nl/new", Type: 301},
		catchAll,
		{Source: "/gone", Destination: "https://vissenmarktplaats.nl", Type: 302},
	}
	res := Verify(fixture(wwwTarget, rules), wwwTarget)
	if !reflect.DeepEqual(res.Rules, rules) {
		t.Fatalf("rules = %+v, want all %d in file order", res.Rules, len(rules))
	}
}

func TestVerify_Idempotent(t *testing.T) {
	cfg := fixture(wwwTarget, []RedirectRule{catchAll})
	first := Verify(cfg, wwwTarget)
	second := Verify(cfg, wwwTarget)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeat run differs: %+v vs %+v", first, second)
	}
}

func TestOutcome_ExitCode(t *testing.T) {
	cases := map[Outcome]int{
		Valid:              0,
		RuleMismatch:       1,
		ConfigNotFound:     2,
		TargetNotFound:     2,
		NoRedirectsDefined: 2,
	}
	for o, want := range cases {
		if got := o.ExitCode(); got != want {
			t.Fatalf("%s exit code = %d, want %d", o, got, want)
		}
	}
}
