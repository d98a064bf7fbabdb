package services

import (
	"errors"
	"testing"
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/repository"
)

func newOrderService(t *testing.T) (*OrderService, *repository.OrderRepository) {
	t.Helper()
	repo := repository.NewOrderRepository(newTestDB(t))
	return NewOrderService(repo, nil, nil), repo
}

func TestCreateOrderPersistsComputedTotal(t *testing.T) {
	svc, _ := newOrderService(t)

	req := &CreateOrderReq{
		CustomerName: "Mika",
		OrderType:    OrderTypeDelivery,
		DeliveryFee:  4000,
		Items: []OrderItemIn{
			{ProductID: 1, Quantity: 2, Price: 6000, AddOns: []AddOnIn{
				{Name: "Pearl", Price: 1000, Quantity: 1},
				{Name: "Jelly", Price: 1500, Quantity: 0}, // removed, not zero-priced
			}},
			{ProductID: 2, VariantID: uintPtr(7), Quantity: 1, Price: 9000},
		},
	}

	order, err := svc.Create(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := ComputeOrderTotals(req.Items, req.OrderType, req.DeliveryFee)
	if order.Total != want.Total {
		t.Errorf("persisted total = %d, want %d", order.Total, want.Total)
	}
	if order.Subtotal != want.Subtotal {
		t.Errorf("persisted subtotal = %d, want %d", order.Subtotal, want.Subtotal)
	}
	if order.Status != StatusPending {
		t.Errorf("status = %q, want %q", order.Status, StatusPending)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	// The zero-quantity add-on must not have been persisted.
	if n := len(order.Items[0].AddOns); n != 1 {
		t.Errorf("item add-ons = %d, want 1", n)
	}
	if order.Items[0].Subtotal != 12000 {
		t.Errorf("item subtotal = %d, want price×qty = 12000", order.Items[0].Subtotal)
	}
}

func TestCreateOrderClearsFeeForPickup(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Create(&CreateOrderReq{
		CustomerName: "Noa",
		OrderType:    OrderTypePickup,
		DeliveryFee:  4000,
		Items:        []OrderItemIn{{ProductID: 1, Quantity: 1, Price: 10000}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("delivery fee = %d, want 0 for pickup", order.DeliveryFee)
	}
	if order.Total != 10000 {
		t.Errorf("total = %d, want 10000", order.Total)
	}
}

// failing wrapper: the Nth item insert is rejected.
type failingOrderRepo struct {
	OrderRepo
	failAfter int
	calls     int
}

func (f *failingOrderRepo) CreateItem(it *entity.OrderItem) error {
	f.calls++
	if f.calls > f.failAfter {
		return errors.New("item insert rejected")
	}
	return f.OrderRepo.CreateItem(it)
}

func TestCreateOrderCompensatesOnItemFailure(t *testing.T) {
	repo := repository.NewOrderRepository(newTestDB(t))
	svc := NewOrderService(&failingOrderRepo{OrderRepo: repo, failAfter: 1}, nil, nil)

	_, err := svc.Create(&CreateOrderReq{
		CustomerName: "Rio",
		Items: []OrderItemIn{
			{ProductID: 1, Quantity: 1, Price: 5000},
			{ProductID: 2, Quantity: 1, Price: 7000},
		},
	})
	if err == nil {
		t.Fatal("want child-insert error")
	}

	// The parent must have been compensated away: no orphan order remains.
	items, total, err := repo.List(repository.OrderFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("orders after failed create = %d, want 0", total)
	}
}

func TestUpdateOrderReplacesChildren(t *testing.T) {
	svc, _ := newOrderService(t)

	created, err := svc.Create(&CreateOrderReq{
		CustomerName: "Sam",
		Items: []OrderItemIn{
			{ProductID: 1, Quantity: 2, Price: 5000, AddOns: []AddOnIn{{Name: "Pearl", Price: 1000, Quantity: 1}}},
			{ProductID: 2, Quantity: 1, Price: 7000},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, &CreateOrderReq{
		CustomerName: "Sam",
		Items: []OrderItemIn{
			{ProductID: 3, Quantity: 1, Price: 9000, AddOns: []AddOnIn{{Name: "Oat milk", Price: 2000, Quantity: 1}}},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("items after edit = %d, want exactly the submitted set (1)", len(updated.Items))
	}
	if updated.Items[0].ProductID != 3 {
		t.Errorf("leftover item from before the edit: productId = %d", updated.Items[0].ProductID)
	}
	if len(updated.Items[0].AddOns) != 1 || updated.Items[0].AddOns[0].Name != "Oat milk" {
		t.Errorf("add-ons not replaced: %+v", updated.Items[0].AddOns)
	}
	if updated.Total != 11000 {
		t.Errorf("total after edit = %d, want 11000", updated.Total)
	}
}

func TestQueuePartitionsAndOrdersFIFO(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	svc := NewOrderService(repo, nil, nil)

	base := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	seed := []entity.Order{
		{CustomerName: "A", Status: StatusPending, OrderDate: base},
		{CustomerName: "B", Status: StatusProcessing, OrderDate: base},
		{CustomerName: "C", Status: StatusPending, OrderDate: base},
		{CustomerName: "D", Status: StatusCompleted, OrderDate: base},
	}
	// pending@10:00, processing@09:00, pending@09:30, completed@11:00
	seed[0].CreatedAt = base.Add(60 * time.Minute)
	seed[1].CreatedAt = base
	seed[2].CreatedAt = base.Add(30 * time.Minute)
	seed[3].CreatedAt = base.Add(120 * time.Minute)
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	q, err := svc.Queue()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	if len(q.Processing) != 1 || q.Processing[0].Order.CustomerName != "B" {
		t.Errorf("processing section = %+v, want just B", q.Processing)
	}
	if len(q.Pending) != 2 {
		t.Fatalf("pending section = %d entries, want 2", len(q.Pending))
	}
	if q.Pending[0].Order.CustomerName != "C" || q.Pending[1].Order.CustomerName != "A" {
		t.Errorf("pending order = [%s %s], want oldest first [C A]",
			q.Pending[0].Order.CustomerName, q.Pending[1].Order.CustomerName)
	}

	// Affordances ride along with each entry.
	if got := q.Pending[0].AllowedNext; len(got) != 3 {
		t.Errorf("pending allowedNext = %v", got)
	}
	if got := q.Processing[0].AllowedNext; len(got) != 2 {
		t.Errorf("processing allowedNext = %v", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	created, err := svc.Create(&CreateOrderReq{
		CustomerName: "Lee",
		Items:        []OrderItemIn{{ProductID: 1, Quantity: 1, Price: 1000}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(created.ID, StatusProcessing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := svc.Detail(created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Status != StatusProcessing {
		t.Errorf("status = %q, want %q", got.Status, StatusProcessing)
	}

	if err := svc.UpdateStatus(created.ID, "paid"); err == nil {
		t.Error("unknown status accepted")
	} else if !IsValidation(err) {
		t.Errorf("unknown status should be a validation error, got %v", err)
	}
	if err := svc.UpdateStatus(99999, StatusCompleted); err == nil {
		t.Error("missing order accepted")
	}
}

func TestDeleteOrderRemovesChildren(t *testing.T) {
	svc, repo := newOrderService(t)

	created, err := svc.Create(&CreateOrderReq{
		CustomerName: "Kit",
		Items: []OrderItemIn{
			{ProductID: 1, Quantity: 1, Price: 1000, AddOns: []AddOnIn{{Name: "Pearl", Price: 500, Quantity: 1}}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Detail(created.ID); err == nil {
		t.Error("order still fetchable after delete")
	}

	var itemCount int64
	repo.DB.Model(&entity.OrderItem{}).Where("order_id = ?", created.ID).Count(&itemCount)
	if itemCount != 0 {
		t.Errorf("order items left behind = %d", itemCount)
	}
}
