package postservice

import "github.com/google/uuid"

// identitiesEqual reports whether two author identifiers name the same
// identity. An identifier is either a canonical UUID string or a raw value
// such as the anonymous sentinel. Author ids are persisted once in canonical
// form but compared against session-supplied plain strings, so the check
// runs two paths: exact string equality first, then parsed-UUID equality.
// Any parse failure resolves to unequal.
func identitiesEqual(a, b string) bool {
	if a == b {
		return true
	}

	ua, err := uuid.Parse(a)
	if err != nil {
		return false
	}

	ub, err := uuid.Parse(b)
	if err != nil {
		return false
	}

	return ua == ub
}

// canonicalAuthorID normalizes a supplied author id to its UUID string form
// when it parses, and keeps the raw value otherwise.
func canonicalAuthorID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}

	return raw
}
