package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Indian mobile numbers are ten digits starting with 6-9, optionally
// prefixed with the 91 country code or a leading zero.
var contactPattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidateContactNumber validates a contact number and returns its
// normalized ten-digit form.
func ValidateContactNumber(contact string) (bool, string, error) {
	stripped := strings.ReplaceAll(contact, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !contactPattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid contact number format")
	}

	return true, stripped, nil
}

// FallbackEmail derives a placeholder delivery address from a contact
// number for requests that do not carry an email of their own.
func FallbackEmail(contactNumber string) string {
	return contactNumber + "@sms.krishilink.in"
}
