package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestReceiptServiceScanReceipt(t *testing.T) {
	t.Run("returns the parsed receipt", func(t *testing.T) {
		scanner := &fakeScanner{receipt: &domain.ParsedReceipt{
			VendorName:      "SuperMart",
			TransactionDate: "2025-03-10",
			TotalAmount:     37.8,
			Items: []domain.ParsedReceiptItem{
				{ItemName: "Milk 1L", Quantity: 2, Price: 3},
			},
		}}
		svc := NewReceiptService(scanner, nil, nil, testLogger())

		receipt, err := svc.ScanReceipt(context.Background(), ScanReceiptCommand{
			ImageBase64: "aGVsbG8=",
			MediaType:   "image/jpeg",
		})
		require.NoError(t, err)
		assert.Equal(t, "SuperMart", receipt.VendorName)
		assert.Len(t, receipt.Items, 1)
	})

	t.Run("propagates scanner failures", func(t *testing.T) {
		scanner := &fakeScanner{err: errors.New("vision request failed")}
		svc := NewReceiptService(scanner, nil, nil, testLogger())

		_, err := svc.ScanReceipt(context.Background(), ScanReceiptCommand{
			ImageBase64: "aGVsbG8=",
			MediaType:   "image/jpeg",
		})
		assert.Error(t, err)
	})
}

func TestReceiptServiceImportReceipt(t *testing.T) {
	repo := &fakeTransactionRepo{}
	finance := NewFinanceService(repo, nil, testLogger())
	svc := NewReceiptService(&fakeScanner{}, finance, nil, testLogger())

	tx, err := svc.ImportReceipt(context.Background(), ImportReceiptCommand{
		CategoryID:  "c-groceries",
		VendorName:  "SuperMart",
		TotalAmount: 37.8,
		Date:        "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionExpense, tx.Type)
	assert.Equal(t, "SuperMart", tx.Description)
	assert.InDelta(t, 37.8, tx.Amount, 1e-9)
}
