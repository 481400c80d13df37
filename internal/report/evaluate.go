// Package report turns extraction results into severity-tagged issues.
package report

import (
	"fmt"
	"strings"

	"github.com/alexanderjulianmartinez/franschema/pkg/types"
)

func issue(kind, detail string) types.Issue {
	msg := MessageForKind(kind)
	if detail != "" {
		msg += ": " + detail
	}
	return types.Issue{Kind: kind, Severity: SeverityForKind(kind), Message: msg}
}

// Evaluate fills r.Issues and r.Status from the rest of the report and
// returns the issues.
func Evaluate(r *types.FileReport) []types.Issue {
	var issues []types.Issue

	if r.StreamError != "" {
		issues = append(issues, issue("stream_error", r.StreamError))
	}
	for _, b := range r.Blocks {
		if len(b.Errors) == 0 {
			continue
		}
		iss := issue("sink_failure", fmt.Sprintf("%s: %s", b.Name, strings.Join(b.Errors, "; ")))
		idx := b.Index
		iss.Block = &idx
		issues = append(issues, iss)
	}

	c := r.Candidates
	if len(r.Blocks) == 0 && r.StreamError == "" {
		issues = append(issues, issue("no_blocks", ""))
	}
	if c.Truncated > 0 {
		issues = append(issues, issue("candidate_truncated", ""))
	}
	if c.Oversized > 0 {
		issues = append(issues, issue("candidate_oversized", fmt.Sprintf("%d dropped", c.Oversized)))
	}
	if n := c.Superseded + c.Unconfirmed; n > 0 {
		issues = append(issues, issue("candidates_rejected", fmt.Sprintf("%d", n)))
	}
	if len(r.Blocks) > 0 {
		issues = append(issues, issue("blocks_extracted", fmt.Sprintf("%d", len(r.Blocks))))
	}

	r.Issues = issues
	r.Status = Status(issues)
	return issues
}

// Status maps the worst severity among issues to a report status.
func Status(issues []types.Issue) string {
	switch Worst(issues) {
	case SeverityBlock:
		return StatusError
	case SeverityWarn:
		return StatusWarn
	default:
		return StatusOK
	}
}

// Worst returns the highest severity among issues, SeverityInfo when empty.
func Worst(issues []types.Issue) string {
	worst := SeverityInfo
	for _, iss := range issues {
		if rank(iss.Severity) > rank(worst) {
			worst = iss.Severity
		}
	}
	return worst
}

// Blocking reports whether any report carries a BLOCK issue.
func Blocking(reports []*types.FileReport) bool {
	for _, r := range reports {
		if Worst(r.Issues) == SeverityBlock {
			return true
		}
	}
	return false
}
