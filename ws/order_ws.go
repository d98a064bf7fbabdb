package ws

import (
	"net/http"
	"sync"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// OrderHub pushes newly created pending orders to every open back-office
// session. One-way, notification only; it never coordinates writes.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Order
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *zap.Logger
}

func NewOrderHub(log *zap.Logger) *OrderHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Order, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Info("order feed client connected", zap.Int("clients", h.clientCount()))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case order := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(gin.H{"type": "order.created", "order": order}); err != nil {
					h.log.Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *OrderHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// NotifyNewOrder satisfies services.OrderNotifier. Non-blocking: when the
// buffer is full the notification is dropped rather than stalling a write.
func (h *OrderHub) NotifyNewOrder(o *entity.Order) {
	select {
	case h.broadcast <- o:
	default:
		h.log.Warn("order feed buffer full, notification dropped", zap.Uint("orderId", o.ID))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	h.register <- conn

	// Drain reads so close frames are processed; unregister on any error.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}
