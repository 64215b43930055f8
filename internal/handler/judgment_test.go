package handler

import (
	"strings"
	"testing"

	"github.com/6ackpacks/who-is-bot/pkg/hash"
)

func TestResolveIdentity(t *testing.T) {
	voterID := "550e8400-e29b-41d4-a716-446655440000"
	token := "guest-token-12345"

	tests := []struct {
		name        string
		voterHeader string
		guestHeader string
		wantVoterID string
		wantGuest   string
		wantErr     string
	}{
		{"registered voter", voterID, "", voterID, "", ""},
		{"guest token", "", token, "", hash.HashGuestToken(token), ""},
		{"registered wins over guest", voterID, token, voterID, "", ""},
		{"neither header", "", "", "", "", "X-Voter-ID or X-Guest-Token header is required"},
		{"malformed voter id", "not-a-uuid", "", "", "", "voterId must be a UUID"},
		{"guest token too short", "", "short", "", "", "guest token must be 8-128 characters"},
		{"guest token bad characters", "", "guest token!", "", "", "guest token contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, errMsg := resolveIdentity(tt.voterHeader, tt.guestHeader)
			if errMsg != tt.wantErr {
				t.Errorf("errMsg = %q, want %q", errMsg, tt.wantErr)
			}
			if id.VoterID != tt.wantVoterID {
				t.Errorf("voterID = %q, want %q", id.VoterID, tt.wantVoterID)
			}
			if id.GuestHash != tt.wantGuest {
				t.Errorf("guestHash = %q, want %q", id.GuestHash, tt.wantGuest)
			}
		})
	}
}

func TestResolveIdentity_InvalidTokenKeepsSpecificMessage(t *testing.T) {
	// A present-but-rejected token must not collapse into the
	// missing-header message.
	_, errMsg := resolveIdentity("", "bad token")
	if errMsg == "" {
		t.Fatal("expected a validation error")
	}
	if strings.Contains(errMsg, "required") {
		t.Errorf("got the missing-header message for a present token: %q", errMsg)
	}
}

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/voters/550e8400-e29b-41d4-a716-446655440000", "/api/voters/:voterId"},
		{"/api/voters/550e8400-e29b-41d4-a716-446655440000/judgments", "/api/voters/:voterId/judgments"},
		{"/api/voters/link", "/api/voters/link"},
		{"/api/content/abc123/stats", "/api/content/:contentId/stats"},
		{"/api/achievements/550e8400-e29b-41d4-a716-446655440000", "/api/achievements/:voterId"},
		{"/api/judgments", "/api/judgments"},
		{"/api/leaderboard", "/api/leaderboard"},
		{"/api/stats", "/api/stats"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := sanitizeEndpoint(tt.path); got != tt.want {
				t.Errorf("sanitizeEndpoint(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
