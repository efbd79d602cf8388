package interview

import "strings"

// ValidateField applies the per-field rules used by the real-time validation
// endpoint. Fields without a rule are always valid.
func ValidateField(field, value string) (bool, []string) {
	var errs []string

	switch field {
	case "email":
		if !strings.Contains(value, "@") {
			errs = append(errs, "Invalid email format.")
		}
	case "phone":
		if !allDigits(value) || len(value) < 7 || len(value) > 15 {
			errs = append(errs, "Invalid phone number; must be 7-15 digits.")
		}
	case "id_number":
		if len(value) < 3 {
			errs = append(errs, "ID must be at least 3 characters.")
		}
	}

	return len(errs) == 0, errs
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
