package application

import (
	"context"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/infrastructure/vision"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// ReceiptService turns receipt photos into structured purchase data and,
// optionally, finance ledger entries. Scanning never writes anything; the
// client reviews the parsed result before importing it.
type ReceiptService struct {
	scanner vision.ReceiptScanner
	finance *FinanceService
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewReceiptService creates a ReceiptService
func NewReceiptService(scanner vision.ReceiptScanner, finance *FinanceService, m *metrics.Metrics, logger *logging.Logger) *ReceiptService {
	return &ReceiptService{
		scanner: scanner,
		finance: finance,
		metrics: m,
		logger:  logger.WithComponent("receipt-service"),
	}
}

// ScanReceipt sends the photo to the vision model and returns the parsed
// receipt.
func (s *ReceiptService) ScanReceipt(ctx context.Context, cmd ScanReceiptCommand) (*domain.ParsedReceipt, error) {
	receipt, err := s.scanner.Scan(ctx, cmd.ImageBase64, cmd.MediaType)
	if s.metrics != nil {
		s.metrics.RecordReceiptScanned(err == nil)
	}
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Receipt scan failed")
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Receipt scanned",
		"vendor", receipt.VendorName,
		"total", receipt.TotalAmount,
		"items", len(receipt.Items),
	)
	return receipt, nil
}

// ImportReceipt records a reviewed receipt as an expense transaction.
func (s *ReceiptService) ImportReceipt(ctx context.Context, cmd ImportReceiptCommand) (*domain.Transaction, error) {
	return s.finance.AddTransaction(ctx, CreateTransactionCommand{
		CategoryID:  cmd.CategoryID,
		Amount:      cmd.TotalAmount,
		Type:        string(domain.TransactionExpense),
		Description: cmd.VendorName,
		Date:        cmd.Date,
	})
}
