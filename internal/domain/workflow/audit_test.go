package workflow

import (
	"strings"
	"testing"
	"time"
)

func TestAuditLine(t *testing.T) {
	at := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	line := AuditLine(at, "DRAFT", "SUBMITTED", "ana@grafica.com", nil)
	want := "[2024-03-10T14:30:00Z] Status changed from DRAFT to SUBMITTED by ana@grafica.com"
	if line != want {
		t.Fatalf("unexpected line: %q", line)
	}

	reason := "needs revision"
	line = AuditLine(at, "SUBMITTED", "REJECTED", "mod@grafica.com", &reason)
	if !strings.HasSuffix(line, " - Reason: needs revision") {
		t.Fatalf("expected reason suffix, got %q", line)
	}

	empty := ""
	line = AuditLine(at, "DRAFT", "SUBMITTED", "ana@grafica.com", &empty)
	if strings.Contains(line, "Reason") {
		t.Fatalf("empty reason should not be appended: %q", line)
	}
}

func TestAppendAudit_PreservesPriorEntries(t *testing.T) {
	at := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	notes := "pedido urgente do cliente"
	var lines []string
	transitions := [][2]string{
		{"DRAFT", "SUBMITTED"},
		{"SUBMITTED", "REJECTED"},
		{"REJECTED", "SUBMITTED"},
		{"SUBMITTED", "APPROVED"},
	}
	for i, tr := range transitions {
		line := AuditLine(at.Add(time.Duration(i)*time.Minute), tr[0], tr[1], "mod@grafica.com", nil)
		lines = append(lines, line)
		notes = AppendAudit(notes, line)
	}

	got := strings.Split(notes, "\n")
	if len(got) != len(transitions)+1 {
		t.Fatalf("expected %d lines, got %d: %q", len(transitions)+1, len(got), notes)
	}
	if got[0] != "pedido urgente do cliente" {
		t.Fatalf("original note was rewritten: %q", got[0])
	}
	for i, line := range lines {
		if got[i+1] != line {
			t.Fatalf("entry %d changed: %q != %q", i, got[i+1], line)
		}
	}
}

func TestAppendAudit_EmptyNotes(t *testing.T) {
	if got := AppendAudit("", "first"); got != "first" {
		t.Fatalf("unexpected: %q", got)
	}
}
