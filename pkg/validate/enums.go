package validate

import (
	"regexp"
	"sort"
	"strings"
)

// Engine-owned constant sets. Pure data: no lifecycle, no mutation.

// DeliveryModes are the accepted values for extension.delivery.
var DeliveryModes = map[string]bool{
	"http":     true,
	"internal": true,
}

// SupportedSDKs are the SDK identifiers the platform ships handler
// runtimes for.
var SupportedSDKs = map[string]bool{
	"go":     true,
	"python": true,
	"node":   true,
}

// ObtainTypes are the accepted secret acquisition mechanisms.
var ObtainTypes = map[string]bool{
	"oauth2":  true,
	"oauth1":  true,
	"api_key": true,
	"manual":  true,
}

// oauthObtainTypes are the obtain mechanisms that require both an
// authorization URL and a token URL.
var oauthObtainTypes = map[string]bool{
	"oauth2": true,
	"oauth1": true,
}

// DynamicFieldTypes are configure-step field types whose options resolve
// from live project context at runtime; static options on them are ignored.
var DynamicFieldTypes = map[string]bool{
	"project":   true,
	"milestone": true,
	"label":     true,
	"member":    true,
	"status":    true,
}

// OutputFieldTypes are the accepted display types for output fields.
var OutputFieldTypes = map[string]bool{
	"string":   true,
	"number":   true,
	"boolean":  true,
	"date":     true,
	"datetime": true,
	"url":      true,
	"markdown": true,
	"badge":    true,
}

// CustomDataOperations are the permission verbs a custom-data module can be
// granted.
var CustomDataOperations = map[string]bool{
	"read":   true,
	"write":  true,
	"delete": true,
	"admin":  true,
}

var (
	// identifierRe is the style guide for extension and module
	// identifiers (reverse-DNS-like, lowercase).
	identifierRe = regexp.MustCompile(`^[a-z][a-z0-9.-]+$`)

	// outputFieldKeyRe is the machine-name pattern for output fields.
	outputFieldKeyRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	// iconNameRe is the pattern for output-field icon names.
	iconNameRe = regexp.MustCompile(`^[a-z0-9-]+$`)

	// httpURLRe matches http and https URLs.
	httpURLRe = regexp.MustCompile(`^https?://`)
)

// Callback timeout bounds in milliseconds, inclusive.
const (
	callbackTimeoutMin = 100
	callbackTimeoutMax = 60000
)

// enumList renders a constant set as a sorted, comma-separated list for
// error messages.
func enumList(set map[string]bool) string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
