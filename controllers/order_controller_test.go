package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
)

// stubOrderRepo lets the handler run without a database.
type stubOrderRepo struct {
	createErr error
}

func (s *stubOrderRepo) Create(o *entity.Order) error { return s.createErr }
func (s *stubOrderRepo) Update(o *entity.Order) error { return nil }
func (s *stubOrderRepo) Delete(id uint) error         { return nil }
func (s *stubOrderRepo) Get(id uint) (*entity.Order, error) {
	return &entity.Order{}, nil
}
func (s *stubOrderRepo) List(f repository.OrderFilter) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (s *stubOrderRepo) Queue() ([]entity.Order, error) { return nil, nil }
func (s *stubOrderRepo) UpdateStatus(id uint, status string) (int64, error) {
	return 1, nil
}
func (s *stubOrderRepo) CreateItem(it *entity.OrderItem) error      { return nil }
func (s *stubOrderRepo) CreateAddOn(a *entity.OrderItemAddOn) error { return nil }
func (s *stubOrderRepo) DeleteChildren(orderID uint) error          { return nil }

func newOrderRouter(repo services.OrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewOrderController(services.NewOrderService(repo, nil, nil))
	r := gin.New()
	r.POST("/orders", ctrl.Create)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderBadInputIs400(t *testing.T) {
	r := newOrderRouter(&stubOrderRepo{})

	w := postJSON(t, r, "/orders",
		`{"customerName":"Mika","orderType":"teleport","items":[{"productId":1,"quantity":1,"price":1000}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown order type: status = %d, want 400", w.Code)
	}
}

func TestCreateOrderStoreFailureIs500(t *testing.T) {
	r := newOrderRouter(&stubOrderRepo{createErr: errors.New("disk full")})

	w := postJSON(t, r, "/orders",
		`{"customerName":"Mika","items":[{"productId":1,"quantity":1,"price":1000}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("store failure: status = %d, want 500", w.Code)
	}
}
