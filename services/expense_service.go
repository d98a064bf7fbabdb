package services

import (
	"errors"
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/pkg/saga"
	"github.com/SuperEjay/pos-sub000/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// One expense per transaction date; the duplicate surfaces as this error.
var ErrExpenseDateTaken = errors.New("an expense for this date already exists")

type ExpenseService struct {
	Repo *repository.ExpenseRepository
	Log  *zap.Logger
}

func NewExpenseService(repo *repository.ExpenseRepository, log *zap.Logger) *ExpenseService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpenseService{Repo: repo, Log: log}
}

// ----- DTOs from Controller -----

type ExpenseItemIn struct {
	ItemName string `json:"itemName" binding:"required"`
	Cost     int64  `json:"cost"`
}

type CreateExpenseReq struct {
	TransactionDate string          `json:"transactionDate" binding:"required"`
	Remarks         string          `json:"remarks"`
	Items           []ExpenseItemIn `json:"items" binding:"required,min=1"`
}

func (req *CreateExpenseReq) validate() error {
	if _, err := time.Parse("2006-01-02", req.TransactionDate); err != nil {
		return validationError("transactionDate must be YYYY-MM-DD")
	}
	if len(req.Items) == 0 {
		return validationError("items is required")
	}
	return nil
}

// Derived fields: the parent row always carries the sum and the count of the
// submitted items, never client-supplied values.
func derive(items []ExpenseItemIn) (int64, int) {
	var total int64
	for _, it := range items {
		total += it.Cost
	}
	return total, len(items)
}

// checkDate treats "not found" as success-to-proceed, a hit as a conflict,
// and anything else as fatal. excludeID skips the row being edited.
func (s *ExpenseService) checkDate(date string, excludeID uint) error {
	existing, err := s.Repo.FindByDate(date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != excludeID {
		return ErrExpenseDateTaken
	}
	return nil
}

func (s *ExpenseService) writeItems(expenseID uint, items []ExpenseItemIn) error {
	for _, it := range items {
		row := entity.ExpenseItem{ExpenseID: expenseID, ItemName: it.ItemName, Cost: it.Cost}
		if err := s.Repo.CreateItem(&row); err != nil {
			return err
		}
	}
	return nil
}

// ----- Create -----

func (s *ExpenseService) Create(req *CreateExpenseReq) (*entity.Expense, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	total, count := derive(req.Items)
	expense := entity.Expense{
		TransactionDate: req.TransactionDate,
		TotalExpense:    total,
		ItemsCount:      count,
		Remarks:         req.Remarks,
	}

	w := &saga.AggregateWrite{
		Precheck:      func() error { return s.checkDate(req.TransactionDate, 0) },
		WriteParent:   func() error { return s.Repo.Create(&expense) },
		WriteChildren: func() error { return s.writeItems(expense.ID, req.Items) },
		DeleteParent: func() error {
			if err := s.Repo.DeleteChildren(expense.ID); err != nil {
				return err
			}
			return s.Repo.Delete(expense.ID)
		},
		OnCompensationError: func(err error) {
			s.Log.Warn("expense create compensation failed", zap.Uint("expenseId", expense.ID), zap.Error(err))
		},
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(expense.ID)
}

// ----- Update (full replace of items) -----

func (s *ExpenseService) Update(id uint, req *CreateExpenseReq) (*entity.Expense, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}

	total, count := derive(req.Items)
	existing.TransactionDate = req.TransactionDate
	existing.TotalExpense = total
	existing.ItemsCount = count
	existing.Remarks = req.Remarks
	existing.Items = nil

	w := &saga.AggregateWrite{
		Editing:        true,
		Precheck:       func() error { return s.checkDate(req.TransactionDate, id) },
		WriteParent:    func() error { return s.Repo.Update(existing) },
		DeleteChildren: func() error { return s.Repo.DeleteChildren(id) },
		WriteChildren:  func() error { return s.writeItems(id, req.Items) },
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

// ----- List / Detail / Delete -----

func (s *ExpenseService) List(from, to string) ([]entity.Expense, error) {
	return s.Repo.List(from, to)
}

func (s *ExpenseService) Detail(id uint) (*entity.Expense, error) {
	return s.Repo.Get(id)
}

func (s *ExpenseService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteChildren(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
