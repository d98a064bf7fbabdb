package services

import (
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/pkg/saga"
	"github.com/SuperEjay/pos-sub000/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderRepo is what the service needs from the store; satisfied by
// *repository.OrderRepository and by test doubles.
type OrderRepo interface {
	Create(o *entity.Order) error
	Update(o *entity.Order) error
	Delete(id uint) error
	Get(id uint) (*entity.Order, error)
	List(f repository.OrderFilter) ([]entity.Order, int64, error)
	Queue() ([]entity.Order, error)
	UpdateStatus(id uint, status string) (int64, error)
	CreateItem(it *entity.OrderItem) error
	CreateAddOn(a *entity.OrderItemAddOn) error
	DeleteChildren(orderID uint) error
}

// OrderNotifier pushes freshly created pending orders to open sessions.
type OrderNotifier interface {
	NotifyNewOrder(o *entity.Order)
}

type OrderService struct {
	Repo     OrderRepo
	Notifier OrderNotifier // optional
	Log      *zap.Logger
}

func NewOrderService(repo OrderRepo, notifier OrderNotifier, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{Repo: repo, Notifier: notifier, Log: log}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	CustomerName  string        `json:"customerName" binding:"required"`
	OrderType     string        `json:"orderType"`
	OrderDate     *time.Time    `json:"orderDate"`
	DeliveryFee   int64         `json:"deliveryFee"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Items         []OrderItemIn `json:"items" binding:"required,min=1"`
}

func (req *CreateOrderReq) normalize() error {
	if req.OrderType == "" {
		req.OrderType = OrderTypePickup
	}
	if !KnownOrderType(req.OrderType) {
		return validationError("unknown order type")
	}
	if len(req.Items) == 0 {
		return validationError("items is required")
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return validationError("item quantity must be at least 1")
		}
	}
	// The fee only means something for delivery orders; clear it otherwise.
	if req.OrderType != OrderTypeDelivery {
		req.DeliveryFee = 0
	}
	return nil
}

// buildChildren snapshots the submitted items into rows. Add-ons with
// quantity <= 0 are dropped, matching the totals math.
func buildChildren(orderID uint, items []OrderItemIn) []entity.OrderItem {
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		row := entity.OrderItem{
			OrderID:   orderID,
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Price * int64(it.Quantity),
		}
		for _, a := range it.AddOns {
			if a.Quantity <= 0 {
				continue
			}
			row.AddOns = append(row.AddOns, entity.OrderItemAddOn{
				Name: a.Name, Value: a.Value, Price: a.Price, Quantity: a.Quantity,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *OrderService) writeChildren(orderID uint, items []OrderItemIn) error {
	for _, row := range buildChildren(orderID, items) {
		addOns := row.AddOns
		row.AddOns = nil
		if err := s.Repo.CreateItem(&row); err != nil {
			return err
		}
		for i := range addOns {
			addOns[i].OrderItemID = row.ID
			if err := s.Repo.CreateAddOn(&addOns[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- Create -----

// Create recomputes the totals authoritatively from the submitted items and
// runs the fixed write script: parent, then children, compensating the parent
// on a child failure so no orphan order survives.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	totals := ComputeOrderTotals(req.Items, req.OrderType, req.DeliveryFee)
	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order := entity.Order{
		CustomerName:  req.CustomerName,
		Status:        StatusPending,
		OrderDate:     orderDate,
		OrderType:     req.OrderType,
		DeliveryFee:   req.DeliveryFee,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Subtotal:      totals.Subtotal,
		Total:         totals.Total,
	}

	w := &saga.AggregateWrite{
		WriteParent:   func() error { return s.Repo.Create(&order) },
		WriteChildren: func() error { return s.writeChildren(order.ID, req.Items) },
		DeleteParent: func() error {
			if err := s.Repo.DeleteChildren(order.ID); err != nil {
				return err
			}
			return s.Repo.Delete(order.ID)
		},
		OnCompensationError: func(err error) {
			s.Log.Warn("order create compensation failed", zap.Uint("orderId", order.ID), zap.Error(err))
		},
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}

	if s.Notifier != nil && order.Status == StatusPending {
		s.Notifier.NotifyNewOrder(&order)
	}
	return s.Repo.Get(order.ID)
}

// ----- Update (full replace of items) -----

func (s *OrderService) Update(id uint, req *CreateOrderReq) (*entity.Order, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}

	totals := ComputeOrderTotals(req.Items, req.OrderType, req.DeliveryFee)
	existing.CustomerName = req.CustomerName
	existing.OrderType = req.OrderType
	existing.DeliveryFee = req.DeliveryFee
	existing.PaymentMethod = req.PaymentMethod
	existing.Notes = req.Notes
	if req.OrderDate != nil {
		existing.OrderDate = *req.OrderDate
	}
	existing.Subtotal = totals.Subtotal
	existing.Total = totals.Total
	existing.Items = nil

	w := &saga.AggregateWrite{
		Editing:        true,
		WriteParent:    func() error { return s.Repo.Update(existing) },
		DeleteChildren: func() error { return s.Repo.DeleteChildren(id) },
		WriteChildren:  func() error { return s.writeChildren(id, req.Items) },
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

// ----- List / Detail / Delete -----

type OrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) List(f repository.OrderFilter) (*OrderListOut, error) {
	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}
	return &OrderListOut{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *OrderService) Detail(id uint) (*entity.Order, error) {
	return s.Repo.Get(id)
}

func (s *OrderService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteChildren(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// ----- Queue -----

type QueueEntry struct {
	Order       entity.Order `json:"order"`
	AllowedNext []string     `json:"allowedNext"`
}

type QueueOut struct {
	Pending    []QueueEntry `json:"pending"`
	Processing []QueueEntry `json:"processing"`
}

// Queue partitions the open orders by status, oldest first within each
// section, and attaches the permitted next statuses for each entry.
func (s *OrderService) Queue() (*QueueOut, error) {
	orders, err := s.Repo.Queue()
	if err != nil {
		return nil, err
	}
	out := &QueueOut{Pending: []QueueEntry{}, Processing: []QueueEntry{}}
	for _, o := range orders {
		entry := QueueEntry{Order: o, AllowedNext: NextStatuses(o.Status)}
		switch o.Status {
		case StatusPending:
			out.Pending = append(out.Pending, entry)
		case StatusProcessing:
			out.Processing = append(out.Processing, entry)
		}
	}
	return out, nil
}

// UpdateStatus writes any known status; the transition table only shapes
// what the queue offers, it is not enforced here.
func (s *OrderService) UpdateStatus(id uint, status string) error {
	if !KnownStatus(status) {
		return validationError("unknown status")
	}
	affected, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Preview exposes the totals math to the client so the displayed total and
// the persisted one can never diverge.
func (s *OrderService) Preview(req *CreateOrderReq) (*OrderTotals, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	totals := ComputeOrderTotals(req.Items, req.OrderType, req.DeliveryFee)
	return &totals, nil
}
