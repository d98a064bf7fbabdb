package services

import (
	"errors"
	"time"

	"github.com/SuperEjay/pos-sub000/repository"
)

type ReportService struct {
	Repo        *repository.ReportRepository
	ExpenseRepo *repository.ExpenseRepository
}

func NewReportService(repo *repository.ReportRepository, expenseRepo *repository.ExpenseRepository) *ReportService {
	return &ReportService{Repo: repo, ExpenseRepo: expenseRepo}
}

// ParseRange turns ?from=&to= (YYYY-MM-DD) into an inclusive range,
// defaulting to the last 30 days.
func ParseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be YYYY-MM-DD")
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be YYYY-MM-DD")
		}
		// inclusive end of day
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not precede from")
	}
	return from, to, nil
}

type SalesReport struct {
	From            time.Time                `json:"from"`
	To              time.Time                `json:"to"`
	GrossSales      int64                    `json:"grossSales"`
	OrderCount      int64                    `json:"orderCount"`
	ByStatus        []repository.StatusCount `json:"byStatus"`
	ByOrderType     []repository.BucketSum   `json:"byOrderType"`
	ByPaymentMethod []repository.BucketSum   `json:"byPaymentMethod"`
	TopProducts     []repository.TopProduct  `json:"topProducts"`
}

func (s *ReportService) Sales(from, to time.Time) (*SalesReport, error) {
	gross, count, err := s.Repo.GrossSales(from, to)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Repo.CountByStatus(from, to)
	if err != nil {
		return nil, err
	}
	byType, err := s.Repo.SalesByOrderType(from, to)
	if err != nil {
		return nil, err
	}
	byPayment, err := s.Repo.SalesByPaymentMethod(from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopProducts(from, to, 10)
	if err != nil {
		return nil, err
	}
	return &SalesReport{
		From: from, To: to,
		GrossSales: gross, OrderCount: count,
		ByStatus: byStatus, ByOrderType: byType, ByPaymentMethod: byPayment,
		TopProducts: top,
	}, nil
}

type SummaryReport struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	GrossSales    int64     `json:"grossSales"`
	OrderCount    int64     `json:"orderCount"`
	TotalExpenses int64     `json:"totalExpenses"`
	Net           int64     `json:"net"`
}

// Summary sets sales against expenses over the same date range.
func (s *ReportService) Summary(from, to time.Time) (*SummaryReport, error) {
	gross, count, err := s.Repo.GrossSales(from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.SumByDateRange(from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	return &SummaryReport{
		From: from, To: to,
		GrossSales: gross, OrderCount: count,
		TotalExpenses: expenses,
		Net:           gross - expenses,
	}, nil
}
