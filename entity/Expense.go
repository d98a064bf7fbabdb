package entity

import (
	"gorm.io/gorm"
)

// One expense record per day. TransactionDate is an ISO date (YYYY-MM-DD) so
// the unique index enforces that and range filters stay lexicographic.
type Expense struct {
	gorm.Model
	TransactionDate string `gorm:"uniqueIndex;not null" json:"transactionDate"`
	TotalExpense    int64  `json:"totalExpense"` // derived: sum of item costs
	ItemsCount      int    `json:"itemsCount"`   // derived: len(items)
	Remarks         string `json:"remarks"`

	Items []ExpenseItem `json:"items"`
}
