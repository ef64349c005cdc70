package entities

import (
	"errors"
	"testing"
	"time"

	"bethouse/domain/apperrors"

	"github.com/stretchr/testify/assert"
)

var cardCheckTime = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func validCard() CardDetails {
	return CardDetails{
		Number:     "4111111111111111",
		HolderName: "Maria Silva",
		Expiration: "2028-01",
		CVV:        "123",
	}
}

func TestCardDetails_Validate(t *testing.T) {
	assert.NoError(t, validCard().Validate(cardCheckTime))
}

func TestCardDetails_Validate_IssuerFormats(t *testing.T) {
	tests := []struct {
		name   string
		number string
		ok     bool
	}{
		{"visa 16 digits", "4111111111111111", true},
		{"visa 13 digits", "4222222222222", true},
		{"mastercard 51 prefix", "5105105105105100", true},
		{"mastercard 2-series", "2221000000000009", true},
		{"amex is unsupported", "378282246310005", false},
		{"too short", "41111111", false},
		{"letters", "4111abcd11111111", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			card.Number = tt.number
			err := card.Validate(cardCheckTime)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			}
		})
	}
}

func TestCardDetails_Validate_Expiration(t *testing.T) {
	card := validCard()

	// Good through the end of the expiration month
	card.Expiration = "2026-06"
	assert.NoError(t, card.Validate(cardCheckTime))

	card.Expiration = "2026-05"
	assert.True(t, errors.Is(card.Validate(cardCheckTime), apperrors.ErrValidation))

	card.Expiration = "06/2026"
	assert.True(t, errors.Is(card.Validate(cardCheckTime), apperrors.ErrValidation))
}

func TestCardDetails_Validate_CVV(t *testing.T) {
	card := validCard()

	card.CVV = "1234"
	assert.NoError(t, card.Validate(cardCheckTime))

	card.CVV = "12"
	assert.True(t, errors.Is(card.Validate(cardCheckTime), apperrors.ErrValidation))

	card.CVV = "12a"
	assert.True(t, errors.Is(card.Validate(cardCheckTime), apperrors.ErrValidation))
}

func TestCardDetails_Validate_HolderName(t *testing.T) {
	card := validCard()
	card.HolderName = ""
	assert.True(t, errors.Is(card.Validate(cardCheckTime), apperrors.ErrValidation))
}

func TestWithdrawalDestination_Validate(t *testing.T) {
	assert.NoError(t, WithdrawalDestination{PixKey: "maria@example.com"}.Validate(WithdrawalMethodPix))
	assert.NoError(t, WithdrawalDestination{BankBranch: "0001", BankAccount: "123456-7"}.Validate(WithdrawalMethodBank))

	assert.True(t, errors.Is(WithdrawalDestination{}.Validate(WithdrawalMethodPix), apperrors.ErrValidation))
	assert.True(t, errors.Is(WithdrawalDestination{BankBranch: "0001"}.Validate(WithdrawalMethodBank), apperrors.ErrValidation))
	assert.True(t, errors.Is(WithdrawalDestination{}.Validate("paper-check"), apperrors.ErrValidation))
}
