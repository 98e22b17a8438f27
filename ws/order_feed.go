package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed pushes every placed order to connected kitchen/cashier displays.
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type OrderEvent struct {
	OrderID uint      `json:"order_id"`
	Total   int64     `json:"total"`
	Time    time.Time `json:"time"`
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (f *OrderFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()

		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients, conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// PublishOrder implements services.OrderPublisher.
func (f *OrderFeed) PublishOrder(o *entity.Order) {
	select {
	case f.broadcast <- OrderEvent{OrderID: o.OrderID, Total: o.Total, Time: o.Time}:
	default:
		// feed congested; displays refetch on reconnect, drop the event
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /ws/orders
func (f *OrderFeed) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	f.register <- conn

	// Displays never send payloads; the read loop only detects close.
	go func() {
		defer func() { f.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
