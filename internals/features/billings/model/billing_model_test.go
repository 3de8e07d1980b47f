package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePaymentStatus(t *testing.T) {
	cases := []struct {
		name       string
		amountPaid float64
		total      float64
		want       PaymentStatus
	}{
		{"untouched", 0, 3500, PaymentStatusPending},
		{"partially paid", 1000, 3500, PaymentStatusPartial},
		{"exactly paid", 3500, 3500, PaymentStatusPaid},
		{"overpaid", 4000, 3500, PaymentStatusPaid},
		{"zero total stays pending", 0, 0, PaymentStatusPending},
		{"payment against zero total is partial", 100, 0, PaymentStatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputePaymentStatus(tc.amountPaid, tc.total))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	b := &BillingModel{
		BillingTotalRent:     3500,
		BillingTotalWater:    250,
		BillingTotalElectric: 780.50,
	}
	assert.Equal(t, 4530.50, b.TotalAmount())
}
