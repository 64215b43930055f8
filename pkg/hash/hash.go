package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// IteratedSHA256 applies SHA256 iteratively n times to produce a derived hash.
// Used for guest token hashing (5000 iterations) and IP hashing.
func IteratedSHA256(input string, iterations int) string {
	data := []byte(input)
	for range iterations {
		h := sha256.Sum256(data)
		data = h[:]
	}
	return hex.EncodeToString(data)
}

// HashGuestToken hashes a client-generated guest token with 5000 iterations
// of SHA256. Only the derived hash is ever stored server-side, so a database
// leak does not expose the raw tokens clients authenticate with.
func HashGuestToken(token string) string {
	return IteratedSHA256(token, 5000)
}

// HashIP hashes an IP address with a salt using 5000 iterations of SHA256.
func HashIP(ip, salt string) string {
	return IteratedSHA256(salt+ip, 5000)
}
