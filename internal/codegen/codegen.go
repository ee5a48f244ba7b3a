// Package codegen produces the random identifiers used across the system:
// group join codes, volunteer display UIDs and one-time passwords. All
// functions are pure and stateless; uniqueness of join codes is enforced by
// the group service against the persisted collection, not here.
package codegen

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

const (
	// JoinCodeLength is the canonical length of a group join code.
	JoinCodeLength = 8

	joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	uidPrefix        = "VOL"
	base36Upper      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	displayChunkSize = 4
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// GenerateJoinCode returns an 8-character code drawn uniformly from A-Z0-9.
// The random source is deliberately non-cryptographic: codes are shared
// identifiers, not secrets.
func GenerateJoinCode() string {
	var b strings.Builder
	b.Grow(JoinCodeLength)
	for i := 0; i < JoinCodeLength; i++ {
		b.WriteByte(joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))])
	}
	return b.String()
}

// GenerateVolunteerUID returns a human-meaningful display identifier of the
// form VOL<last 6 digits of unix millis><4 random base36 chars>. It is not
// guaranteed globally unique and must not be used as a primary key.
func GenerateVolunteerUID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	var b strings.Builder
	b.Grow(4)
	for i := 0; i < 4; i++ {
		b.WriteByte(base36Upper[rand.Intn(len(base36Upper))])
	}
	return uidPrefix + millis + b.String()
}

// GenerateOTP returns a 6-digit numeric one-time password in the inclusive
// range 100000-999999.
func GenerateOTP() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// FormatCode groups a code into hyphenated 4-character chunks for display,
// e.g. "AB12CD34" -> "AB12-CD34". Stripping hyphens reverses it.
func FormatCode(code string) string {
	if len(code) <= displayChunkSize {
		return code
	}
	var chunks []string
	for i := 0; i < len(code); i += displayChunkSize {
		end := i + displayChunkSize
		if end > len(code) {
			end = len(code)
		}
		chunks = append(chunks, code[i:end])
	}
	return strings.Join(chunks, "-")
}

// Normalize strips hyphens and upper-cases user input so it can be compared
// against canonical stored codes.
func Normalize(input string) string {
	return strings.ToUpper(strings.ReplaceAll(input, "-", ""))
}

// IsValidCode reports whether the input, after normalization, has the exact
// shape of a join code: 8 characters from A-Z0-9.
func IsValidCode(input string) bool {
	return codePattern.MatchString(Normalize(input))
}
