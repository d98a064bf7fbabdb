package entity

import (
	"gorm.io/gorm"
)

type ExpenseItem struct {
	gorm.Model
	ExpenseID uint    `json:"expenseId"`
	Expense   Expense `json:"-"`

	ItemName string `json:"itemName"`
	Cost     int64  `json:"cost"`
}
