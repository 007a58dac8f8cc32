package models

import "testing"

func TestSplitCode(t *testing.T) {
	tests := []struct {
		code   string
		prefix string
		number string
	}{
		{"FBA1023", "FBA", "1023"},
		{"F0712", "F07", "12"},
		{"II5", "II5", ""}, // too short to carry a number
		{"СXA9", "СXA", "9"},
		{"", "", ""},
	}
	for _, tt := range tests {
		prefix, number := SplitCode(tt.code)
		if prefix != tt.prefix || number != tt.number {
			t.Errorf("SplitCode(%q) = (%q, %q), expected (%q, %q)",
				tt.code, prefix, number, tt.prefix, tt.number)
		}
	}
}

func TestIsValidPrefix(t *testing.T) {
	for _, p := range []string{"FBA", "СXA", "F01"} {
		if !IsValidPrefix(p) {
			t.Errorf("IsValidPrefix(%q) = false, expected true", p)
		}
	}
	for _, p := range []string{"ZZZ", "fba", ""} {
		if IsValidPrefix(p) {
			t.Errorf("IsValidPrefix(%q) = true, expected false", p)
		}
	}
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FBA100", "FBA100"},
		{"FBA100 defekt, prüfen", "FBA100"},
		{"  FBA100  ", "FBA100"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := FirstToken(tt.input); got != tt.expected {
			t.Errorf("FirstToken(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	if !IsValidStatus(StatusOnHold) {
		t.Error("ONH should be a valid status")
	}
	if IsValidStatus("XYZ") {
		t.Error("XYZ should not be a valid status")
	}
	o := Order{Status: StatusInProgress}
	if o.StatusLabel() != "In Progress" {
		t.Errorf("StatusLabel() = %q, expected %q", o.StatusLabel(), "In Progress")
	}
}
