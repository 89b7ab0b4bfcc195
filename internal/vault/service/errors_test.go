package service

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	err := validateEntity(&domain.CreditCard{CardType: "Gold"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t,
		"user_id: field required; card_number: field required; cvv: field required; "+
			"card_type: must be one of Credit, Debit, Prepaid",
		err.Error())
}

func TestInvalid(t *testing.T) {
	err := Invalid("purchase_date", "invalid date")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, "purchase_date: invalid date", err.Error())
}
