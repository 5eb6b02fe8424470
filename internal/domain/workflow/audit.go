package workflow

import (
	"fmt"
	"time"
)

// Receipt records one applied status change, returned to the caller together
// with the updated entity.
type Receipt struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Reason    *string   `json:"reason"`
}

// AuditLine formats one audit trail entry:
//
//	[2024-01-02T15:04:05Z] Status changed from DRAFT to SUBMITTED by a@b.com - Reason: typo
//
// The reason suffix is only present when a reason was given.
func AuditLine(at time.Time, from, to, email string, reason *string) string {
	line := fmt.Sprintf("[%s] Status changed from %s to %s by %s",
		at.UTC().Format(time.RFC3339), from, to, email)
	if reason != nil && *reason != "" {
		line += " - Reason: " + *reason
	}
	return line
}

// AppendAudit appends line to the existing notes blob. Prior content is
// preserved verbatim; entries are newline-joined.
func AppendAudit(notes, line string) string {
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
