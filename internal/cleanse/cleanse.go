// Package cleanse holds the field-level cleansing rules for the interim
// spreadsheets: date reformatting, honorific detection, tenant-name
// splitting and the tenure-type code table.
package cleanse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateSentinel is stored whenever a source date cell is blank.
const DateSentinel = "1900-01-01"

// FormatError reports a source value that cannot be cleansed. It aborts
// the row (and the run) rather than letting bad data reach the store.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Field, e.Value)
}

// slashSpaceYear matches the known data-entry error in one tenancy tab
// where the second slash was typed as a space ("09/12 2020").
var slashSpaceYear = regexp.MustCompile(`^\d{1,2}/\d{1,2} \d{4}$`)

// FormatDate reformats DD.MM.YYYY or DD/MM/YYYY source dates to
// YYYY-MM-DD. A blank cell maps to DateSentinel. Day and month may be
// unpadded, as the sheets are hand-typed.
func FormatDate(date string) (string, error) {
	if date == "" {
		return DateSentinel, nil
	}
	layout := "2/1/2006"
	if strings.Contains(date, ".") {
		layout = "2.1.2006"
	} else if slashSpaceYear.MatchString(date) {
		layout = "2/1 2006"
	}
	t, err := time.Parse(layout, date)
	if err != nil {
		return "", &FormatError{Field: "date", Value: date}
	}
	return t.Format("2006-01-02"), nil
}

var titles = []string{"mr ", "ms ", "miss ", "mrs "}

// HasTitle reports whether a full name starts with an honorific.
func HasTitle(name string) bool {
	lower := strings.ToLower(name)
	for _, t := range titles {
		if strings.HasPrefix(lower, t) {
			return true
		}
	}
	return false
}

// SplitTenants turns a free-text tenant cell that may name several people
// into individual name strings. Joint tenancies are written "A & B", but
// some tabs use "A and B" or "A,B" within a segment.
func SplitTenants(tenants string) []string {
	var names []string
	for _, segment := range strings.Split(strings.TrimSpace(tenants), " & ") {
		switch {
		case strings.Contains(segment, " and "):
			names = append(names, strings.Split(segment, " and ")...)
		case strings.Contains(segment, ","):
			names = append(names, strings.Split(segment, ",")...)
		default:
			names = append(names, segment)
		}
	}
	return names
}

// IsNonPerson reports whether a tenant name is a company or a known
// placeholder rather than a human being. These are dropped before person
// records are built.
func IsNonPerson(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "limited") ||
		strings.Contains(lower, "ltd") ||
		strings.Contains(name, "TBG (Open Door)")
}

// DecomposeName splits a full name into title, first name and surname.
// The last token is always the surname; a single-token name therefore
// yields an empty first name, which matches the ids already migrated.
func DecomposeName(name string) (title, firstname, surname string) {
	parts := strings.Split(name, " ")
	if HasTitle(name) {
		title = parts[0]
		firstname = strings.Join(parts[1:len(parts)-1], " ")
	} else {
		firstname = strings.Join(parts[:len(parts)-1], " ")
	}
	surname = parts[len(parts)-1]
	return title, firstname, surname
}

// tenureTypeCodes is the closed mapping from the tenancy-type wording used
// in the sheets to the short codes the tenure API stores. The blank entry
// is deliberate: some leasehold tabs carry no tenancy type at all.
var tenureTypeCodes = map[string]string{
	"Secure":          "SEC",
	"Non-Secure":      "NON",
	"Mesne Profit Ac": "MPA",
	"Introductory":    "INT",
	"Temp Decant":     "DEC",
	"Asylum Seeker":   "ASY",
	"Leasehold (RTB)": "LEA",
	"Freehold (Serv)": "FRS",
	"Shared Owners":   "SHO",
	"Private Sale LH": "SPS",
	"":                "",
}

// TenureTypeCode maps a tenancy-type description to its short code. An
// unknown description is a FormatError: a typo here would otherwise
// migrate a tenure with a silently wrong type.
func TenureTypeCode(description string) (string, error) {
	code, ok := tenureTypeCodes[description]
	if !ok {
		return "", &FormatError{Field: "tenure type", Value: description}
	}
	return code, nil
}

// PersonTenureType derives the household-member role from the tenancy
// type.
func PersonTenureType(tenureType string) string {
	switch tenureType {
	case "Freehold", "Freehold (Serv)":
		return "Freeholder"
	case "Leasehold (RTB)", "RS Landlord":
		return "Leaseholder"
	default:
		return "Tenant"
	}
}
