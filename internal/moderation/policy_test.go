package moderation

import "testing"

func TestPolicyInspect(t *testing.T) {
	policy := NewPolicy([]string{"badword", "slur"})

	tests := []struct {
		name      string
		text      string
		violation bool
		term      string
	}{
		{"clean text", "hello there, nice server", false, ""},
		{"exact match", "badword", true, "badword"},
		{"substring match", "xxbadwordxx", true, "badword"},
		{"case insensitive", "BADWORD", true, "badword"},
		{"mixed case", "BaDwOrD in a sentence", true, "badword"},
		{"second term", "that was a slur", true, "slur"},
		{"first match wins", "slur badword", true, "badword"},
		{"empty text", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := policy.Inspect(tt.text)
			if ok != tt.violation {
				t.Fatalf("Inspect(%q) violation = %v, want %v", tt.text, ok, tt.violation)
			}
			if ok && v.Term != tt.term {
				t.Errorf("Inspect(%q) term = %q, want %q", tt.text, v.Term, tt.term)
			}
		})
	}
}

func TestPolicyNormalization(t *testing.T) {
	policy := NewPolicy([]string{"  BadWord ", "", "  "})

	if _, ok := policy.Inspect("some badword here"); !ok {
		t.Error("expected denylist terms to be trimmed and lowercased")
	}

	if _, ok := policy.Inspect("perfectly fine"); ok {
		t.Error("empty denylist entries must not match everything")
	}
}

func TestPolicyEmptyDenylist(t *testing.T) {
	policy := NewPolicy(nil)

	if _, ok := policy.Inspect("anything at all"); ok {
		t.Error("empty policy must never report a violation")
	}
}

func TestViolationReason(t *testing.T) {
	v := Violation{Term: "badword"}
	if v.Reason() == "" {
		t.Error("expected a non-empty reason string")
	}
}
