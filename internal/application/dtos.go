package application

import "github.com/household-platform/household-service/internal/domain"

// FinanceSummaryDTO aggregates the transaction ledger for the dashboard.
type FinanceSummaryDTO struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

// BillStatusDTO is a bill decorated with its paid state for one period.
type BillStatusDTO struct {
	*domain.Bill
	Period string `json:"period"`
	Paid   bool   `json:"paid"`
}

// LowStockDigestDTO is the scheduled low-stock summary: the items at or
// below threshold and the projected cost of restocking them.
type LowStockDigestDTO struct {
	Items          []*domain.StockItem `json:"items"`
	EstimatedTotal float64             `json:"estimatedTotal"`
}
