// Package hash provides small hashing helpers used for log anonymization.
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

// HexPrefix returns the first n characters of SHA256Hex(input).
func HexPrefix(input string, n int) string {
	full := SHA256Hex(input)
	if n > len(full) {
		return full
	}
	return full[:n]
}

// AnonymizeIP produces a short, irreversible hash prefix of an IP address
// for log correlation without storing the raw address.
func AnonymizeIP(ip string) string {
	return HexPrefix(ip, 12)
}
