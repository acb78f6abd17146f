package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebulamarket/pkg/errors"
)

func TestNewTransactionFeeSplit(t *testing.T) {
	cases := []struct {
		amount     float64
		wantFee    float64
		wantPayout float64
	}{
		{100.00, 20.00, 80.00},
		{9.99, 2.00, 7.99},
		{0.99, 0.20, 0.79},
	}

	for _, tc := range cases {
		txn, err := NewTransaction("tx-1", "buyer-1", "seller-1", "lst-1", tc.amount)
		require.NoError(t, err)

		assert.InDelta(t, tc.wantFee, txn.PlatformFee, 1e-9)
		assert.InDelta(t, tc.wantPayout, txn.SellerPayout, 1e-9)
		assert.InDelta(t, txn.Amount, txn.PlatformFee+txn.SellerPayout, 1e-9)
		assert.Equal(t, "completed", txn.Status)
	}
}

func TestNewTransactionRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -5} {
		txn, err := NewTransaction("tx-1", "buyer-1", "seller-1", "lst-1", amount)
		require.Error(t, err)
		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	}
}
