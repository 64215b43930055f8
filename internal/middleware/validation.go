package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxContentIDLen  = 36  // content.id VARCHAR(36)
	MaxUIDLen        = 64  // voters.uid VARCHAR(64)
	MaxGuestTokenLen = 128 // raw token; hashed to 64 hex chars before storage
	MaxNicknameLen   = 100 // voters.nickname VARCHAR(100)
	MinGuestTokenLen = 8
)

var (
	// contentIDRe matches content ids: UUIDs or opaque alphanumeric ids.
	contentIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// voterIDRe matches voter row ids (lowercase UUID).
	voterIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	// uidRe matches external auth uids.
	uidRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// guestTokenRe matches client-generated guest tokens.
	guestTokenRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateContentID checks that a content id is well-formed and within DB limits.
func ValidateContentID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "contentId is required"
	}
	if len(id) > MaxContentIDLen {
		return "", "contentId must be at most 36 characters"
	}
	if !contentIDRe.MatchString(id) {
		return "", "contentId contains invalid characters"
	}
	return id, ""
}

// ValidateVoterID checks that a voter id is a well-formed UUID.
func ValidateVoterID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "voterId is required"
	}
	if !voterIDRe.MatchString(id) {
		return "", "voterId must be a UUID"
	}
	return id, ""
}

// ValidateChoice checks that a judgment choice is one of ai/human.
func ValidateChoice(choice string) (string, string) {
	choice = strings.TrimSpace(strings.ToLower(choice))
	switch choice {
	case "ai", "human":
		return choice, ""
	case "":
		return "", "choice is required"
	default:
		return "", "choice must be either 'ai' or 'human'"
	}
}

// ValidateGuestToken checks a client-generated guest token before hashing.
func ValidateGuestToken(token string) (string, string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "guest token is required"
	}
	if len(token) < MinGuestTokenLen || len(token) > MaxGuestTokenLen {
		return "", "guest token must be 8-128 characters"
	}
	if !guestTokenRe.MatchString(token) {
		return "", "guest token contains invalid characters"
	}
	return token, ""
}

// ValidateUID checks an external auth uid for the link operation.
func ValidateUID(uid string) (string, string) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return "", "uid is required"
	}
	if len(uid) > MaxUIDLen {
		return "", "uid must be at most 64 characters"
	}
	if !uidRe.MatchString(uid) {
		return "", "uid contains invalid characters"
	}
	return uid, ""
}

// ValidateNickname trims and truncates a nickname to DB limits.
func ValidateNickname(nickname string) string {
	nickname = strings.TrimSpace(nickname)
	if len(nickname) > MaxNicknameLen {
		nickname = nickname[:MaxNicknameLen]
	}
	return nickname
}
