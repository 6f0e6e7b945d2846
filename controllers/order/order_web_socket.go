// order_web_socket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type orderEvent struct {
	Event string       `json:"event"` // order_created | order_updated
	Order models.Order `json:"order"`
}

// GET /orders/ws — pushes order creation and status-change events.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcast(ev orderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		// Write errors are ignored; the reader loop drops dead clients.
		client.WriteMessage(websocket.TextMessage, data)
	}
}

func broadcastNewOrder(order models.Order) {
	broadcast(orderEvent{Event: "order_created", Order: order})
}

func broadcastOrderUpdate(order models.Order) {
	broadcast(orderEvent{Event: "order_updated", Order: order})
}
