package middleware

import (
	"strings"
	"testing"
)

func TestValidateContentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"valid opaque id", "content_42-abc", "content_42-abc", false},
		{"trims whitespace", "  abc123  ", "abc123", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 37), "", true},
		{"exactly 36", strings.Repeat("a", 36), strings.Repeat("a", 36), false},
		{"invalid chars", "abc def", "", true},
		{"sql injection", "a'; DROP--", "", true},
		{"unicode", "abcédef", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateContentID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateVoterID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"uppercase normalized", "550E8400-E29B-41D4-A716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"trims whitespace", " 550e8400-e29b-41d4-a716-446655440000 ", "550e8400-e29b-41d4-a716-446655440000", false},
		{"empty", "", "", true},
		{"not a uuid", "voter-123", "", true},
		{"truncated uuid", "550e8400-e29b-41d4-a716", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVoterID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"ai", "ai", "ai", false},
		{"human", "human", "human", false},
		{"uppercase normalized", "AI", "ai", false},
		{"mixed case", "Human", "human", false},
		{"trims whitespace", " ai ", "ai", false},
		{"empty", "", "", true},
		{"unknown value", "robot", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChoice(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateGuestToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "guest-token-12345", "guest-token-12345", false},
		{"minimum length", "12345678", "12345678", false},
		{"below minimum", "1234567", "", true},
		{"maximum length", strings.Repeat("a", 128), strings.Repeat("a", 128), false},
		{"above maximum", strings.Repeat("a", 129), "", true},
		{"empty", "", "", true},
		{"invalid chars", "guest token!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateGuestToken(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "firebase-uid_123", "firebase-uid_123", false},
		{"trims whitespace", " abc ", "abc", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("x", 65), "", true},
		{"exactly 64", strings.Repeat("x", 64), strings.Repeat("x", 64), false},
		{"invalid chars", "uid with spaces", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateNickname(t *testing.T) {
	if got := ValidateNickname("  Spot the Bot  "); got != "Spot the Bot" {
		t.Errorf("got %q, want %q", got, "Spot the Bot")
	}

	long := strings.Repeat("n", 150)
	if got := ValidateNickname(long); len(got) != 100 {
		t.Errorf("truncated length = %d, want 100", len(got))
	}

	if got := ValidateNickname(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
