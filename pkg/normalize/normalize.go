// Package normalize canonicalizes channel values before storage so the
// matcher compares like with like: handles are lower-cased, phone numbers
// are rendered in E.164, website hosts are converted to punycode.
package normalize

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

// DefaultPhoneRegion is assumed for phone numbers without a country prefix
const DefaultPhoneRegion = "US"

// Value normalizes a raw channel value for the given channel type.
// Normalization is best effort: a value that cannot be parsed for its
// type is kept as a trimmed, lower-cased string rather than rejected.
func Value(channelType, raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch channelType {
	case "phone":
		return Phone(v)
	case "website":
		return Host(v)
	default:
		return v
	}
}

// Phone renders a phone number in E.164 when it parses
func Phone(v string) string {
	num, err := phonenumbers.Parse(v, DefaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return v
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// Host strips the scheme and trailing slash from a website value and
// converts the host portion to punycode
func Host(v string) string {
	v = strings.TrimPrefix(v, "https://")
	v = strings.TrimPrefix(v, "http://")
	v = strings.TrimSuffix(v, "/")

	host := v
	rest := ""
	if i := strings.IndexAny(v, "/?#"); i >= 0 {
		host, rest = v[:i], v[i:]
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return v
	}
	return ascii + rest
}
