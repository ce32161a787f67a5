package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSMessage WebSocket消息结构
//
// Type 为 "odds_refresh" 或 "ticket_sent"，MatchID 用于客户端按比赛过滤。
type WSMessage struct {
	Type    string      `json:"type"`
	MatchID string      `json:"matchId,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Client WebSocket客户端
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu       sync.Mutex      // 过滤器在读循环里更新，在Hub广播时读取
	types    map[string]bool // 消息类型过滤器
	matchIDs map[string]bool // 比赛ID过滤器
}

// Hub WebSocket Hub，向看板前端推送报价刷新和派票事件
type Hub struct {
	logger     zerolog.Logger
	clients    map[*Client]bool
	broadcast  chan *WSMessage
	register   chan *Client
	unregister chan *Client
}

// NewHub 创建新的Hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *WSMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run 运行Hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug().Int("clients", len(h.clients)).Msg("ws client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.logger.Debug().Int("clients", len(h.clients)).Msg("ws client unregistered")

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.Error().Err(err).Msg("failed to marshal ws message")
				continue
			}
			for client := range h.clients {
				if !client.shouldReceive(message) {
					continue
				}
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast 把消息排入广播队列
func (h *Hub) Broadcast(message *WSMessage) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn().Str("type", message.Type).Msg("ws broadcast queue full, dropped")
	}
}

// shouldReceive 检查客户端的订阅过滤器
func (c *Client) shouldReceive(message *WSMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 没有设置过滤器时接收所有消息
	if len(c.types) == 0 && len(c.matchIDs) == 0 {
		return true
	}

	if len(c.types) > 0 {
		if _, ok := c.types[message.Type]; !ok {
			return false
		}
	}

	if len(c.matchIDs) > 0 {
		if message.MatchID == "" {
			return false
		}
		if _, ok := c.matchIDs[message.MatchID]; !ok {
			return false
		}
	}

	return true
}

// readPump 读取客户端消息（订阅指令）
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error().Err(err).Msg("ws read error")
			}
			break
		}
		c.handleMessage(message)
	}
}

// writePump 向客户端写入消息
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// handleMessage 处理订阅/退订指令
func (c *Client) handleMessage(message []byte) {
	var msg struct {
		Type     string   `json:"type"`
		Types    []string `json:"types"`
		MatchIDs []string `json:"matchIds"`
	}
	if err := json.Unmarshal(message, &msg); err != nil {
		c.hub.logger.Error().Err(err).Msg("failed to unmarshal ws client message")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Type {
	case "subscribe":
		c.types = make(map[string]bool)
		for _, t := range msg.Types {
			c.types[t] = true
		}
		c.matchIDs = make(map[string]bool)
		for _, id := range msg.MatchIDs {
			c.matchIDs[id] = true
		}

	case "unsubscribe":
		c.types = make(map[string]bool)
		c.matchIDs = make(map[string]bool)
	}
}

// handleWebSocket WebSocket连接处理
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("ws upgrade error")
		return
	}

	client := &Client{
		hub:      s.wsHub,
		conn:     conn,
		send:     make(chan []byte, 256),
		types:    make(map[string]bool),
		matchIDs: make(map[string]bool),
	}

	client.hub.register <- client

	// 欢迎消息
	welcome, _ := json.Marshal(&WSMessage{
		Type: "connected",
		Data: map[string]interface{}{"time": time.Now().Unix()},
	})
	client.send <- welcome

	go client.writePump()
	go client.readPump()
}
