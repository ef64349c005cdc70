package entities

import (
	"fmt"
	"strings"

	"bethouse/domain/apperrors"
)

// WithdrawalMethod selects where withdrawn funds are sent.
type WithdrawalMethod string

const (
	WithdrawalMethodPix  WithdrawalMethod = "pix"
	WithdrawalMethodBank WithdrawalMethod = "bank"
)

// WithdrawalDestination carries the method-specific destination fields.
// Pix needs a key; bank transfers need branch and account numbers.
type WithdrawalDestination struct {
	PixKey      string
	BankBranch  string
	BankAccount string
}

// Validate checks that the destination fields required by method are present.
func (d WithdrawalDestination) Validate(method WithdrawalMethod) error {
	switch method {
	case WithdrawalMethodPix:
		if strings.TrimSpace(d.PixKey) == "" {
			return fmt.Errorf("%w: pix withdrawals require a pix key", apperrors.ErrValidation)
		}
	case WithdrawalMethodBank:
		if strings.TrimSpace(d.BankBranch) == "" || strings.TrimSpace(d.BankAccount) == "" {
			return fmt.Errorf("%w: bank withdrawals require branch and account numbers", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown withdrawal method %q", apperrors.ErrValidation, method)
	}
	return nil
}
