// internal/hosting/report.go
//
// Plain-text report for one verification result.
//
// The report is a stable stdout contract consumed by deploy pipelines:
// one line per discovered rule, a summary count, and a final PASS or
// FAIL line.  Diagnostics belong to the structured logger, never here.
package hosting

import (
	"fmt"
	"io"
)

// WriteReport renders res to w.  The returned error is the first write
// error, if any.
func WriteReport(w io.Writer, res Result) error {
	for _, r := range res.Rules {
		if _, err := fmt.Fprintf(w, "source: %s -> destination: %s (type=%d)\n",
			r.Source, r.Destination, r.Type); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d redirect rule(s) found for target %q\n",
		len(res.Rules), res.Target); err != nil {
		return err
	}

	var line string
	switch res.Outcome {
	case Valid:
		line = "PASS: catch-all HTTPS redirect present"
	case ConfigNotFound:
		line = "FAIL: hosting configuration not available"
	case TargetNotFound:
		line = fmt.Sprintf("FAIL: hosting target %q not found", res.Target)
	case NoRedirectsDefined:
		line = fmt.Sprintf("FAIL: target %q has no redirect rules", res.Target)
	case RuleMismatch:
		line = `FAIL: no rule matches source "/**" with type 301 and an https:// destination`
	default:
		line = fmt.Sprintf("FAIL: %s", res.Outcome)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
