package domain

import "time"

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindExpense TransactionKind = "EXPENSE"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "PAID"
	TransactionStatusPending TransactionStatus = "PENDING"
)

// TransactionCategory is an open tag set. The investor-deposit category value
// is kept verbatim from the historical books so existing records keep
// matching in settlement.
type TransactionCategory string

const (
	// TransactionCategoryInvestorDeposit marks a deposit paid out to an
	// investor partner against their revenue share.
	TransactionCategoryInvestorDeposit TransactionCategory = "Setor Investor"
)

// Transaction is a single ledger entry.
type Transaction struct {
	ID        string              `json:"id"`
	Date      time.Time           `json:"date"`
	Amount    Money               `json:"amount"`
	Kind      TransactionKind     `json:"kind"`
	Category  TransactionCategory `json:"category"`
	Status    TransactionStatus   `json:"status"`
	RelatedID string              `json:"related_id,omitempty"` // partner or driver id
	Note      string              `json:"note,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// PartnerDeposit reports whether the transaction is a paid investor deposit
// for the given partner.
func (t *Transaction) PartnerDeposit(partnerID string) bool {
	return t.Category == TransactionCategoryInvestorDeposit &&
		t.Status == TransactionStatusPaid &&
		t.RelatedID == partnerID
}
