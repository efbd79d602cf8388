package repository

import "testing"

func TestHostNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@corp.com", "jane"},
		{"jane.doe@corp.com", "jane.doe"},
		{"no-at-sign", "no-at-sign"},
		{"@corp.com", "@corp.com"},
	}

	for _, tt := range tests {
		if got := hostNameFromEmail(tt.email); got != tt.want {
			t.Errorf("hostNameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
