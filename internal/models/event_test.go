package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubliclyVisible(t *testing.T) {
	cases := []struct {
		name     string
		payment  PaymentStatus
		approved bool
		publish  bool
		visible  bool
	}{
		{"all flags set", PaymentPaid, true, true, true},
		{"unpaid", PaymentPending, true, true, false},
		{"not approved", PaymentPaid, false, true, false},
		{"not published", PaymentPaid, true, false, false},
		{"nothing set", PaymentPending, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Event{PaymentStatus: tc.payment, AdminApproved: tc.approved, Published: tc.publish}
			assert.Equal(t, tc.visible, e.PubliclyVisible())
		})
	}
}

func TestStage(t *testing.T) {
	e := Event{PaymentStatus: PaymentPending}
	assert.Equal(t, StagePendingPayment, e.Stage())

	e.PaymentStatus = PaymentPaid
	assert.Equal(t, StagePendingApproval, e.Stage())

	// Approval without publication is still pending.
	e.AdminApproved = true
	assert.Equal(t, StagePendingApproval, e.Stage())

	e.Published = true
	assert.Equal(t, StageLive, e.Stage())
}

func TestConfirmPayment(t *testing.T) {
	e := Event{PaymentStatus: PaymentPending}

	require.NoError(t, e.ConfirmPayment())
	assert.Equal(t, PaymentPaid, e.PaymentStatus)
	assert.False(t, e.PubliclyVisible(), "payment alone must not make the event visible")

	// A second confirmation is a conflict, not a silent no-op.
	err := e.ConfirmPayment()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestApproveLeavesPaymentAlone(t *testing.T) {
	e := Event{PaymentStatus: PaymentPending}
	e.Approve()

	assert.True(t, e.AdminApproved)
	assert.True(t, e.Published)
	assert.Equal(t, PaymentPending, e.PaymentStatus)
	assert.False(t, e.PubliclyVisible(), "approved but unpaid event must stay hidden")
}

func TestReconcileTierPreservesSoldCount(t *testing.T) {
	// 100 on sale, 40 sold.
	existing := Ticket{Name: "GA", Quantity: 100, Available: 60}

	ReconcileTier(&existing, TierInput{Name: "GA", Quantity: 150, Price: decimal.NewFromInt(50)})

	assert.Equal(t, 150, existing.Quantity)
	assert.Equal(t, 110, existing.Available, "growing the tier should keep the 40 sold")
	assert.Equal(t, decimal.NewFromInt(50).String(), existing.Price.String())
}

func TestReconcileTierShrink(t *testing.T) {
	existing := Ticket{Name: "GA", Quantity: 100, Available: 60}

	ReconcileTier(&existing, TierInput{Name: "GA", Quantity: 50})

	assert.Equal(t, 50, existing.Quantity)
	assert.Equal(t, 10, existing.Available)
}

func TestReconcileTierClampsAtZero(t *testing.T) {
	// Shrinking below the sold count cannot leave negative availability.
	existing := Ticket{Name: "GA", Quantity: 100, Available: 10}

	ReconcileTier(&existing, TierInput{Name: "GA", Quantity: 5})

	assert.Equal(t, 0, existing.Available)
}

func TestReconcileTierExplicitAvailable(t *testing.T) {
	existing := Ticket{Name: "GA", Quantity: 100, Available: 60}

	avail := 25
	ReconcileTier(&existing, TierInput{Name: "GA", Quantity: 100, Available: &avail})

	assert.Equal(t, 25, existing.Available)
}

func TestReconcileTierExplicitAvailableClampedToQuantity(t *testing.T) {
	existing := Ticket{Name: "GA", Quantity: 100, Available: 60}

	avail := 500
	ReconcileTier(&existing, TierInput{Name: "GA", Quantity: 80, Available: &avail})

	assert.Equal(t, 80, existing.Available)
}

func TestReconcileTierRename(t *testing.T) {
	existing := Ticket{Name: "Early Bird", Description: "old", Quantity: 20, Available: 20}

	ReconcileTier(&existing, TierInput{Name: "VIP", Description: "front row", Quantity: 20})

	assert.Equal(t, "VIP", existing.Name)
	assert.Equal(t, "front row", existing.Description)
	assert.Equal(t, 20, existing.Available)
}
