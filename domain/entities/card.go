package entities

import (
	"fmt"
	"regexp"
	"time"

	"bethouse/domain/apperrors"
)

// Card format validation is deliberately non-authoritative: it gates obviously
// malformed input, it is not a payment gateway integration.

var (
	visaPattern       = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	mastercardPattern = regexp.MustCompile(`^(5[1-5][0-9]{14}|2(2[2-9][0-9]{13}|[3-6][0-9]{14}|7[01][0-9]{13}|720[0-9]{12}))$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// CardDetails carries the payment card fields supplied with a deposit.
// Expiration uses the "2006-01" year-month form.
type CardDetails struct {
	Number     string
	HolderName string
	Expiration string
	CVV        string
}

// Validate checks the card fields against known issuer formats and rejects
// expired cards. now anchors the expiration check.
func (c CardDetails) Validate(now time.Time) error {
	if c.HolderName == "" {
		return fmt.Errorf("%w: card holder name is required", apperrors.ErrValidation)
	}
	if !visaPattern.MatchString(c.Number) && !mastercardPattern.MatchString(c.Number) {
		return fmt.Errorf("%w: card number is not from a supported issuer", apperrors.ErrValidation)
	}
	if !cvvPattern.MatchString(c.CVV) {
		return fmt.Errorf("%w: card CVV must be 3 or 4 digits", apperrors.ErrValidation)
	}

	exp, err := time.Parse("2006-01", c.Expiration)
	if err != nil {
		return fmt.Errorf("%w: card expiration must be in YYYY-MM form", apperrors.ErrValidation)
	}
	// A card is good through the last day of its expiration month.
	if exp.Year() < now.Year() || (exp.Year() == now.Year() && exp.Month() < now.Month()) {
		return fmt.Errorf("%w: card is expired", apperrors.ErrValidation)
	}

	return nil
}
