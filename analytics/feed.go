package analytics

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/menu-api/models"
)

const feedWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes stored analytics events to owner dashboards subscribed to their store.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string // conn -> store id
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]string)}
}

// Serve upgrades the request and blocks until the client disconnects.
func (f *Feed) Serve(w http.ResponseWriter, r *http.Request, storeID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.clients[conn] = storeID
	f.mu.Unlock()
	defer f.drop(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (f *Feed) Publish(event models.AnalyticsEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn, storeID := range f.clients {
		if storeID != event.StoreID {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

func (f *Feed) Subscribers(storeID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range f.clients {
		if id == storeID {
			n++
		}
	}
	return n
}

func (f *Feed) drop(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients, conn)
	f.mu.Unlock()
	conn.Close()
}
