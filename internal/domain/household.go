package domain

import "time"

// Role gates who may mutate household data. Authentication itself is an
// external collaborator; the service only consumes the resolved role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// CanEdit reports whether the role may perform mutating operations.
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is a household member.
type User struct {
	ID        string `bson:"_id" json:"userId"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Role      Role   `bson:"role" json:"role"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// TransactionType splits finance entries into money in and money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one finance ledger entry.
type Transaction struct {
	ID          string          `bson:"_id" json:"transactionId"`
	CategoryID  string          `bson:"categoryId" json:"categoryId"`
	Amount      float64         `bson:"amount" json:"amount"`
	Type        TransactionType `bson:"type" json:"type"`
	Description string          `bson:"description" json:"description"`
	Date        string          `bson:"date" json:"date"`
}

// FinanceCategory labels transactions (Groceries, Salary, ...).
type FinanceCategory struct {
	ID   string          `bson:"_id" json:"categoryId"`
	Name string          `bson:"name" json:"name"`
	Type TransactionType `bson:"type" json:"type"`
}

// SavingsGoal tracks progress toward a target amount by a deadline.
type SavingsGoal struct {
	ID            string  `bson:"_id" json:"goalId"`
	Name          string  `bson:"name" json:"name"`
	TargetAmount  float64 `bson:"targetAmount" json:"targetAmount"`
	CurrentAmount float64 `bson:"currentAmount" json:"currentAmount"`
	Deadline      string  `bson:"deadline" json:"deadline"`
}

// AddFunds moves money into the goal. Non-positive amounts are rejected.
func (g *SavingsGoal) AddFunds(amount float64) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	g.CurrentAmount += amount
	return nil
}

// Bill is a recurring monthly obligation. DueDate is the day of month the
// bill falls due.
type Bill struct {
	ID         string        `bson:"_id" json:"billId"`
	Name       string        `bson:"name" json:"name"`
	Amount     float64       `bson:"amount" json:"amount"`
	DueDate    int           `bson:"dueDate" json:"dueDate"`
	CategoryID string        `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Payments   []BillPayment `bson:"payments,omitempty" json:"payments,omitempty"`
}

// BillPayment records that a bill was settled for one month ("2006-01").
type BillPayment struct {
	Period string    `bson:"period" json:"period"`
	Amount float64   `bson:"amount" json:"amount"`
	PaidAt time.Time `bson:"paidAt" json:"paidAt"`
}

// RecordPayment marks the bill paid for a period. Paying the same period
// twice replaces the earlier record rather than duplicating it.
func (b *Bill) RecordPayment(period string, amount float64, paidAt time.Time) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	for i := range b.Payments {
		if b.Payments[i].Period == period {
			b.Payments[i].Amount = amount
			b.Payments[i].PaidAt = paidAt
			return nil
		}
	}
	b.Payments = append(b.Payments, BillPayment{Period: period, Amount: amount, PaidAt: paidAt})
	return nil
}

// PaidFor reports whether the bill has a payment recorded for the period.
func (b *Bill) PaidFor(period string) bool {
	for _, p := range b.Payments {
		if p.Period == period {
			return true
		}
	}
	return false
}

// Announcement is one post on the household board, newest first.
type Announcement struct {
	ID        string    `bson:"_id" json:"announcementId"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Content   string    `bson:"content" json:"content"`
	MediaURL  string    `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	MediaType string    `bson:"mediaType,omitempty" json:"mediaType,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ParsedReceiptItem is one line item extracted from a scanned receipt.
type ParsedReceiptItem struct {
	ItemName string  `json:"itemName"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// ParsedReceipt is the structured result of the vision-model receipt scan.
// It feeds finance ingestion and is unrelated to stock reconciliation.
type ParsedReceipt struct {
	VendorName      string              `json:"vendorName"`
	TransactionDate string              `json:"transactionDate"`
	TotalAmount     float64             `json:"totalAmount"`
	Items           []ParsedReceiptItem `json:"items"`
}
