// Live feed hub. Broadcasts fabricated meter readings to connected
// dashboard clients so the meter detail pages tick without a real
// metering network behind them.
package livefeed

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/synthgen"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/gorilla/websocket"
)

// Message is the envelope every feed frame uses.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends one message to every connected client. Clients that fail
// to take the write are dropped.
func (h *Hub) Broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("livefeed: marshal broadcast: %v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.Remove(conn)
		}
	}
}

// StartFeed fabricates a current reading for one active meter per tick,
// round-robin, and broadcasts it. Returns a stop function.
func (h *Hub) StartFeed(meters []types.Meter, interval time.Duration) func() {
	active := make([]types.Meter, 0, len(meters))
	for _, m := range meters {
		if m.IsActive {
			active = append(active, m)
		}
	}

	done := make(chan struct{})
	go func() {
		if len(active) == 0 {
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				m := active[i%len(active)]
				i++
				readings := synthgen.GenerateRawReadings(m, 1)
				if len(readings) == 0 {
					continue
				}
				h.Broadcast(Message{Type: "reading", Data: readings[0]})
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
