package models

import (
	"testing"
	"time"
)

func TestRulesDocumentTimestamp(t *testing.T) {
	now := time.Now()

	doc := RulesDocument{
		GuildID:   "g1",
		Content:   "1. Be nice",
		UpdatedBy: "mod#0001",
		UpdatedAt: now,
	}

	if doc.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be set")
	}

	formatted := doc.UpdatedAt.Format(time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)
	if err != nil {
		t.Fatalf("UpdatedAt did not round-trip through RFC3339: %v", err)
	}
	if parsed.Unix() != now.Unix() {
		t.Errorf("expected %d, got %d", now.Unix(), parsed.Unix())
	}
}
