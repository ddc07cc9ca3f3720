package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HubAgenda es el único hub del proceso; main arranca su Run.
var HubAgenda = NewHub()

// AvisoAgenda es lo que reciben los monitores conectados cada vez que la
// agenda cambia.
type AvisoAgenda struct {
	Tipo   string        `json:"tipo"` // creada, estado, reasignada
	Agenda models.Agenda `json:"agenda"`
}

type monitorClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub reparte los avisos de agenda a todos los monitores conectados.
type Hub struct {
	clients    map[*monitorClient]bool
	broadcast  chan []byte
	register   chan *monitorClient
	unregister chan *monitorClient
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*monitorClient]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *monitorClient),
		unregister: make(chan *monitorClient),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			slog.Info("Monitor de agenda conectado", "monitores", h.cantidad())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Monitor de agenda desconectado", "monitores", h.cantidad())

		case mensaje := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- mensaje:
				default:
					// Cliente colgado: se lo desconecta en vez de frenar al resto.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) cantidad() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publicar encola un aviso para todos los monitores. Nunca bloquea al
// handler que lo llama.
func (h *Hub) Publicar(aviso AvisoAgenda) {
	datos, err := json.Marshal(aviso)
	if err != nil {
		slog.Error("No se pudo serializar el aviso de agenda", "error", err)
		return
	}
	select {
	case h.broadcast <- datos:
	default:
		slog.Warn("Canal de avisos lleno, se descarta el aviso", "tipo", aviso.Tipo)
	}
}

// AgendaWSHandler conecta un monitor al hub (GET /api/agenda/ws).
func AgendaWSHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("No se pudo abrir el websocket", "error", err)
		return
	}

	client := &monitorClient{hub: HubAgenda, conn: conn, send: make(chan []byte, 16)}
	HubAgenda.register <- client

	go client.writePump()
	go client.readPump()
}

func (cl *monitorClient) writePump() {
	defer cl.conn.Close()
	for mensaje := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := cl.conn.WriteMessage(websocket.TextMessage, mensaje); err != nil {
			return
		}
	}
	// El hub cerró el canal.
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump descarta todo lo que llegue: el monitor es de solo lectura.
// Leer es necesario igual para detectar el cierre de la conexión.
func (cl *monitorClient) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
