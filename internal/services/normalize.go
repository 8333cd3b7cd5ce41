package services

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StoredDateLayout is the canonical DD-MM-YYYY form dates are stored in.
const StoredDateLayout = "02-01-2006"

// normalizedDateFields are re-validated before persistence. A value that
// does not parse is stored verbatim; malformed dates are a known leniency.
var normalizedDateFields = []string{"given_date", "purchase_date", "collected_date", "prev_given_date"}

// normalizedCurrencyFields get the currency glyph and thousands separators
// stripped so a plain numeric-looking string is stored.
var normalizedCurrencyFields = []string{"amount", "total"}

var currencyStripper = strings.NewReplacer("₹", "", ",", "")

// ParseStoredDate parses a DD-MM-YYYY value.
func ParseStoredDate(val string) (time.Time, bool) {
	t, err := time.Parse(StoredDateLayout, strings.TrimSpace(val))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeSubmission applies the full pre-persistence pipeline to a raw
// field map: date validation, currency stripping, then the legacy
// normalizer merged over the result. The input map is not modified.
func NormalizeSubmission(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for _, field := range normalizedDateFields {
		val, ok := out[field]
		if !ok || strings.TrimSpace(val) == "" {
			continue
		}
		if t, ok := ParseStoredDate(val); ok {
			out[field] = t.Format(StoredDateLayout)
		}
	}

	for _, field := range normalizedCurrencyFields {
		if val, ok := out[field]; ok && val != "" {
			out[field] = currencyStripper.Replace(val)
		}
	}

	for k, v := range NormalizeLegacyFields(out) {
		out[k] = v
	}
	return out
}

// NormalizeLegacyFields canonicalizes the legacy field subset when present:
// name is title-cased, category and status lower-cased, owner trimmed.
func NormalizeLegacyFields(data map[string]string) map[string]string {
	out := make(map[string]string, 4)
	if v, ok := data["name"]; ok {
		out["name"] = cases.Title(language.Und).String(strings.TrimSpace(v))
	}
	if v, ok := data["category"]; ok {
		out["category"] = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := data["owner"]; ok {
		out["owner"] = strings.TrimSpace(v)
	}
	if v, ok := data["status"]; ok {
		out["status"] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
