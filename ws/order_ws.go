package ws

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"eatery/entity"
	"eatery/pkg/apperr"
	"eatery/pkg/resp"
	"eatery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Viewer decides whether a user may watch an order.
type Viewer interface {
	Viewable(ctx context.Context, userID, orderID uint) (*entity.Order, error)
}

// StatusEvent is what subscribers receive whenever an order's status changes.
type StatusEvent struct {
	OrderID        uint               `json:"orderId"`
	Status         entity.OrderStatus `json:"status"`
	StatusLabel    string             `json:"statusLabel"`
	StatusProgress int                `json:"statusProgress"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func NewStatusEvent(o entity.Order) StatusEvent {
	ev := StatusEvent{OrderID: o.ID, Status: o.Status, StatusLabel: string(o.Status), UpdatedAt: o.UpdatedAt}
	if opt, ok := o.Status.Option(); ok {
		ev.StatusLabel = opt.Label
		ev.StatusProgress = opt.ProgressValue
	}
	return ev
}

// OrderHub fans status events out to the websocket clients of each order.
// Only the Run goroutine writes to connections.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	viewer     Viewer
}

// Subscription = การสมัครติดตาม order (1 user ต่อ 1 connection)
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
	Initial StatusEvent
}

func NewOrderHub(viewer Viewer) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		viewer:     viewer,
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = map[uint]map[*websocket.Conn]bool{}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()
			// current status first, so a client never starts blind
			h.write(sub.OrderID, sub.Conn, sub.Initial)

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				if len(h.clients[sub.OrderID]) == 0 {
					delete(h.clients, sub.OrderID)
				}
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(h.clients[ev.OrderID]))
			for conn := range h.clients[ev.OrderID] {
				conns = append(conns, conn)
			}
			h.mu.Unlock()
			for _, conn := range conns {
				h.write(ev.OrderID, conn, ev)
			}
		}
	}
}

func (h *OrderHub) write(orderID uint, conn *websocket.Conn, ev StatusEvent) {
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("ws write error: %v", err)
		h.mu.Lock()
		delete(h.clients[orderID], conn)
		h.mu.Unlock()
		conn.Close()
	}
}

// Publish queues the order's new status for its subscribers.
func (h *OrderHub) Publish(o entity.Order) {
	select {
	case h.broadcast <- NewStatusEvent(o):
	case <-h.done:
	}
}

// Subscribers reports how many connections watch orderID.
func (h *OrderHub) Subscribers(orderID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[orderID])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:orderId
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil || orderID == 0 {
		resp.Error(c, apperr.InvalidArgument("invalid order id"))
		return
	}
	userID := utils.CurrentUserID(c)

	// --- ตรวจสอบสิทธิ์ (ลูกค้าเจ้าของ order หรือเจ้าของร้านเท่านั้น)
	o, err := h.viewer.Viewable(c.Request.Context(), userID, uint(orderID))
	if err != nil {
		resp.Error(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: o.ID, UserID: userID, Initial: NewStatusEvent(*o)}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}
	go h.drain(sub)
}

// drain reads until the client goes away; clients never send anything we use.
func (h *OrderHub) drain(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
