// internal/store/codec.go
package store

import (
	"strings"
)

// Normalize canonicalizes an identity field for use in a record filename:
// lowercase, trimmed, every run of characters outside [a-z0-9] replaced by a
// single underscore. Two semantically equal inputs ("John Doe", " john  doe ")
// collide to the same value.
func Normalize(field string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(field)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// ApplicationKey derives the filename key for an application record:
// <application_id>_<normalized_email>. The id is generated (uuid) and kept
// verbatim so it stays greppable in the data directory.
func ApplicationKey(applicationID, email string) string {
	return applicationID + "_" + Normalize(email)
}

// ApplicationEmailPattern matches every application key for an email.
func ApplicationEmailPattern(email string) string {
	return "*_" + Normalize(email)
}

// ApplicationIDPattern matches the application key for an id regardless of email.
func ApplicationIDPattern(applicationID string) string {
	return applicationID + "_*"
}

// OfferKey derives the filename key for an offer record from the candidate's
// name and email. The pair itself is the unique key, no suffix needed.
func OfferKey(name, email string) string {
	return Normalize(name) + "_" + Normalize(email)
}
