package entities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Monetary amounts are carried as int64 centavos throughout the system.
// Decimal strings exist only at the API boundary; they are parsed exactly,
// never through floating point.

// ParseAmount converts a decimal string like "150.75" into centavos.
// At most two fraction digits are accepted and negatives are rejected.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, errors.New("amount cannot be negative")
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	// ParseUint rejects sign prefixes, so "1.-5" and "1.+5" fail here
	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if units > (math.MaxInt64-cents)/100 {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}

	return int64(units)*100 + int64(cents), nil
}

// ParsePositiveAmount parses a decimal string and requires it to be > 0.
func ParsePositiveAmount(s string) (int64, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return amount, nil
}

// FormatAmount renders centavos as a decimal string, e.g. 15075 -> "150.75".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
