package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dapurnina/catering-app/models"
)

// Event types untuk feed dashboard vendor
const (
	EventOrderUpdate     = "order_update"
	EventSlotUpdate      = "slot_update"
	EventNotification    = "notification"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua koneksi dashboard (admin/staff) untuk broadcast.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient menambahkan koneksi ke set dengan role-nya.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient melepaskan koneksi dan menutupnya.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate menyiarkan perubahan order ke semua client.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastSlotUpdate menyiarkan perubahan slot kapasitas.
func BroadcastSlotUpdate(slot models.Slot) {
	broadcast(Message{
		Event: EventSlotUpdate,
		Data:  slot,
	})
}

// BroadcastNotification menyiarkan notifikasi baru.
func BroadcastNotification(notif models.Notification) {
	broadcast(Message{
		Event: EventNotification,
		Data:  notif,
	})
}

// BroadcastMessage untuk pesan umum.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range hub.clients {
		// Client yang error dibiarkan; akan di-unregister saat read gagal
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
}
