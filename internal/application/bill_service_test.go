package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestBillServicePayBill(t *testing.T) {
	t.Run("records a payment for the period", func(t *testing.T) {
		repo := &fakeBillRepo{bills: []*domain.Bill{
			{ID: "b1", Name: "Electricity", Amount: 90, DueDate: 15},
		}}
		svc := NewBillService(repo, nil, testLogger())

		bill, err := svc.PayBill(context.Background(), "b1", PayBillCommand{Period: "2025-03", Amount: 92.4})
		require.NoError(t, err)
		assert.True(t, bill.PaidFor("2025-03"))
		assert.False(t, bill.PaidFor("2025-02"))
	})

	t.Run("re-paying a period replaces the record", func(t *testing.T) {
		repo := &fakeBillRepo{bills: []*domain.Bill{
			{ID: "b1", Name: "Electricity", Amount: 90, DueDate: 15},
		}}
		svc := NewBillService(repo, nil, testLogger())

		_, err := svc.PayBill(context.Background(), "b1", PayBillCommand{Period: "2025-03", Amount: 90})
		require.NoError(t, err)
		bill, err := svc.PayBill(context.Background(), "b1", PayBillCommand{Period: "2025-03", Amount: 95})
		require.NoError(t, err)

		require.Len(t, bill.Payments, 1)
		assert.InDelta(t, 95, bill.Payments[0].Amount, 1e-9)
	})

	t.Run("unknown bill", func(t *testing.T) {
		svc := NewBillService(&fakeBillRepo{}, nil, testLogger())

		_, err := svc.PayBill(context.Background(), "nope", PayBillCommand{Period: "2025-03", Amount: 10})
		assert.ErrorIs(t, err, domain.ErrBillNotFound)
	})
}

func TestBillServiceUpdateBill(t *testing.T) {
	repo := &fakeBillRepo{bills: []*domain.Bill{
		{ID: "b1", Name: "Electricity", Amount: 90, DueDate: 15,
			Payments: []domain.BillPayment{{Period: "2025-02", Amount: 88, PaidAt: time.Now().UTC()}}},
	}}
	svc := NewBillService(repo, nil, testLogger())

	bill, err := svc.UpdateBill(context.Background(), "b1", CreateBillCommand{
		Name: "Electricity", Amount: 95, DueDate: 20,
	})
	require.NoError(t, err)
	assert.InDelta(t, 95, bill.Amount, 1e-9)
	assert.Equal(t, 20, bill.DueDate)

	// Payment history survives the update.
	require.Len(t, bill.Payments, 1)
	assert.True(t, bill.PaidFor("2025-02"))
}

func TestBillServiceListBills(t *testing.T) {
	period := time.Now().UTC().Format("2006-01")
	repo := &fakeBillRepo{bills: []*domain.Bill{
		{ID: "b1", Name: "Rent", Amount: 1200, DueDate: 1,
			Payments: []domain.BillPayment{{Period: period, Amount: 1200, PaidAt: time.Now().UTC()}}},
		{ID: "b2", Name: "Internet", Amount: 40, DueDate: 20},
	}}
	svc := NewBillService(repo, nil, testLogger())

	bills, err := svc.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.True(t, bills[0].Paid)
	assert.False(t, bills[1].Paid)
	assert.Equal(t, period, bills[0].Period)
}
