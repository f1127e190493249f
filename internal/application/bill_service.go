package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// BillService handles recurring bills and their payment history.
type BillService struct {
	bills   domain.BillRepository
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewBillService creates a BillService
func NewBillService(bills domain.BillRepository, m *metrics.Metrics, logger *logging.Logger) *BillService {
	return &BillService{
		bills:   bills,
		metrics: m,
		logger:  logger.WithComponent("bill-service"),
	}
}

// ListBills returns every bill with its paid state for the current month.
func (s *BillService) ListBills(ctx context.Context) ([]*BillStatusDTO, error) {
	bills, err := s.bills.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	period := time.Now().UTC().Format("2006-01")
	out := make([]*BillStatusDTO, 0, len(bills))
	for _, bill := range bills {
		out = append(out, &BillStatusDTO{
			Bill:   bill,
			Period: period,
			Paid:   bill.PaidFor(period),
		})
	}
	return out, nil
}

// CreateBill adds a recurring bill.
func (s *BillService) CreateBill(ctx context.Context, cmd CreateBillCommand) (*domain.Bill, error) {
	bill := &domain.Bill{
		ID:         uuid.New().String(),
		Name:       cmd.Name,
		Amount:     cmd.Amount,
		DueDate:    cmd.DueDate,
		CategoryID: cmd.CategoryID,
	}
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Bill created",
		"billId", bill.ID,
		"name", bill.Name,
		"dueDate", bill.DueDate,
	)
	return bill, nil
}

// UpdateBill replaces a bill's mutable fields, keeping its payment history.
func (s *BillService) UpdateBill(ctx context.Context, id string, cmd CreateBillCommand) (*domain.Bill, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bill.Name = cmd.Name
	bill.Amount = cmd.Amount
	bill.DueDate = cmd.DueDate
	bill.CategoryID = cmd.CategoryID

	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Bill updated", "billId", bill.ID, "name", bill.Name)
	return bill, nil
}

// PayBill records a payment for one period. Re-paying a period replaces the
// earlier record.
func (s *BillService) PayBill(ctx context.Context, id string, cmd PayBillCommand) (*domain.Bill, error) {
	bill, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := bill.RecordPayment(cmd.Period, cmd.Amount, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordBillPayment()
	}
	s.logger.WithContext(ctx).Info("Bill payment recorded",
		"billId", bill.ID,
		"period", cmd.Period,
		"amount", cmd.Amount,
	)
	return bill, nil
}

// DeleteBill removes a bill and its payment history.
func (s *BillService) DeleteBill(ctx context.Context, id string) error {
	if err := s.bills.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("Bill deleted", "billId", id)
	return nil
}
