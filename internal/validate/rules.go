package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z .\-']*$`)
	emailRe = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// MinLen requires at least n characters after trimming.
func MinLen(n int) StringRule {
	return func(s string) (string, error) {
		if len(s) < n {
			return "", fmt.Errorf("must be at least %d characters", n)
		}
		return s, nil
	}
}

// MaxLen requires at most n characters after trimming.
func MaxLen(n int) StringRule {
	return func(s string) (string, error) {
		if len(s) > n {
			return "", fmt.Errorf("must be at most %d characters", n)
		}
		return s, nil
	}
}

// Name restricts a name-like field to letters, spaces, periods, hyphens and
// apostrophes.
func Name() StringRule {
	return func(s string) (string, error) {
		if !nameRe.MatchString(s) {
			return "", fmt.Errorf("may only contain letters, spaces, periods, hyphens and apostrophes")
		}
		return s, nil
	}
}

// Digits strips every non-digit character, then requires exactly n digits.
func Digits(n int) StringRule {
	return func(s string) (string, error) {
		var b strings.Builder
		for _, r := range s {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		stripped := b.String()
		if len(stripped) != n {
			return "", fmt.Errorf("must contain exactly %d digits", n)
		}
		return stripped, nil
	}
}

// Mobile is a 10-digit mobile number whose first digit is not 0 or 1.
func Mobile() StringRule {
	digits := Digits(10)
	return func(s string) (string, error) {
		stripped, err := digits(s)
		if err != nil {
			return "", err
		}
		if stripped[0] == '0' || stripped[0] == '1' {
			return "", fmt.Errorf("must not start with 0 or 1")
		}
		return stripped, nil
	}
}

// Email validates a local@domain.tld address and lower-cases it on
// acceptance.
func Email() StringRule {
	return func(s string) (string, error) {
		lowered := strings.ToLower(s)
		if !emailRe.MatchString(lowered) {
			return "", fmt.Errorf("must be a valid email address")
		}
		return lowered, nil
	}
}

// Date requires a YYYY-MM-DD calendar date.
func Date() StringRule {
	return func(s string) (string, error) {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "", fmt.Errorf("must be a date in YYYY-MM-DD format")
		}
		return s, nil
	}
}

// OneOf requires exact membership in the allow-list. The violation message
// enumerates the valid set in sorted order.
func OneOf(allowed ...string) StringRule {
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return func(s string) (string, error) {
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(sorted, ", "))
	}
}

// Positive rejects values <= 0 and values above the sanity bound.
func Positive(max float64) NumberRule {
	return func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("must be greater than 0")
		}
		if v > max {
			return fmt.Errorf("must be at most %s", formatNum(max))
		}
		return nil
	}
}

// NonNegative rejects values < 0 and values above the sanity bound.
func NonNegative(max float64) NumberRule {
	return func(v float64) error {
		if v < 0 {
			return fmt.Errorf("must not be negative")
		}
		if v > max {
			return fmt.Errorf("must be at most %s", formatNum(max))
		}
		return nil
	}
}

// Currency rejects amounts with more than two decimal digits.
func Currency() NumberRule {
	return func(v float64) error {
		if decimal.NewFromFloat(v).Exponent() < -2 {
			return fmt.Errorf("must have at most 2 decimal places")
		}
		return nil
	}
}

// OneOfValues requires exact membership in a numeric allow-list. The
// violation message enumerates the valid set in ascending order.
func OneOfValues(allowed ...float64) NumberRule {
	sorted := append([]float64(nil), allowed...)
	sort.Float64s(sorted)
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = formatNum(a)
	}
	enumerated := strings.Join(parts, ", ")
	return func(v float64) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", enumerated)
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
