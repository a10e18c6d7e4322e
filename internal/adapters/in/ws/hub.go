// Package ws is the inbound realtime adapter. It owns every live
// websocket, translates inbound terminal messages into commands, and
// implements the outbound event bus over the same sockets.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
)

const (
	// sendBuffer bounds the per-connection outbound queue. A consumer
	// that falls further behind loses events instead of stalling the bus.
	sendBuffer = 64

	writeTimeout = 10 * time.Second

	eventRegisterCustomer = "register_customer"
)

// envelope is the inbound message frame. Stage commands and customer
// registration both address an order by id.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type orderRef struct {
	OrderID int64 `json:"orderId"`
}

type client struct {
	conn *websocket.Conn
	send chan ports.Event
}

// Hub upgrades incoming websocket requests, runs one reader and one
// writer goroutine per connection, and fans events out to connected
// terminals. It satisfies ports.EventBus.
type Hub struct {
	upgrader   websocket.Upgrader
	store      ports.OrderStore
	advance    commands.AdvanceOrderCommandHandler
	register   commands.RegisterConnectionCommandHandler
	disconnect commands.DisconnectCommandHandler
	logger     *slog.Logger

	mu      sync.RWMutex
	clients map[kernel.ConnectionID]*client
}

var _ ports.EventBus = (*Hub)(nil)

// NewHub creates the hub. The store supplies the order snapshot sent to
// every terminal on connect. Command handlers are wired afterwards via
// Attach, since they in turn publish through the hub.
func NewHub(store ports.OrderStore, logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// Terminals are served from the same origin in production;
			// the kiosk build connects from a file origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		store:   store,
		logger:  logger.With("component", "ws_hub"),
		clients: make(map[kernel.ConnectionID]*client),
	}
}

// Attach wires the command handlers inbound messages dispatch to. Must
// be called before the hub accepts connections.
func (h *Hub) Attach(
	advance commands.AdvanceOrderCommandHandler,
	register commands.RegisterConnectionCommandHandler,
	disconnect commands.DisconnectCommandHandler,
) {
	h.advance = advance
	h.register = register
	h.disconnect = disconnect
}

// Handle upgrades the request and serves the connection until the peer
// closes it or a read fails.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	connID := kernel.NewConnectionID()
	cl := &client{conn: conn, send: make(chan ports.Event, sendBuffer)}

	h.mu.Lock()
	h.clients[connID] = cl
	h.mu.Unlock()

	go h.writeLoop(cl)

	ctx := c.Request().Context()
	h.sendSnapshot(ctx, cl)
	h.readLoop(ctx, connID, cl)

	return nil
}

// Broadcast enqueues the event for every connected terminal.
func (h *Hub) Broadcast(_ context.Context, event ports.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, cl := range h.clients {
		h.enqueue(connID, cl, event)
	}
}

// Unicast enqueues the event for one connection. Unknown ids are
// dropped silently; the caller cannot tell a departed terminal from a
// slow one anyway.
//
// The enqueue must happen under the read lock: drop closes the send
// channel only after removing the client under the write lock, so a
// send done while the lock is held can never hit a closed channel.
func (h *Hub) Unicast(_ context.Context, connID kernel.ConnectionID, event ports.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cl, ok := h.clients[connID]
	if !ok {
		return
	}

	h.enqueue(connID, cl, event)
}

func (h *Hub) enqueue(connID kernel.ConnectionID, cl *client, event ports.Event) {
	select {
	case cl.send <- event:
	default:
		h.logger.Warn("dropping event for slow consumer",
			"connectionID", connID, "event", event.Name)
	}
}

func (h *Hub) sendSnapshot(ctx context.Context, cl *client) {
	views, err := h.store.All(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "order snapshot failed", "error", err)
		return
	}

	select {
	case cl.send <- ports.Event{Name: ports.EventInitialOrders, Data: views}:
	default:
	}
}

func (h *Hub) writeLoop(cl *client) {
	for event := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := cl.conn.WriteJSON(event); err != nil {
			_ = cl.conn.Close()
			// Keep draining so enqueue never blocks; the reader notices
			// the closed socket and tears the client down.
			for range cl.send {
			}
			return
		}
	}
	_ = cl.conn.Close()
}

func (h *Hub) readLoop(ctx context.Context, connID kernel.ConnectionID, cl *client) {
	defer h.drop(ctx, connID, cl)

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.logger.WarnContext(ctx, "malformed message", "connectionID", connID, "error", err)
			continue
		}

		h.dispatch(ctx, connID, env)
	}
}

func (h *Hub) dispatch(ctx context.Context, connID kernel.ConnectionID, env envelope) {
	var ref orderRef
	if err := json.Unmarshal(env.Data, &ref); err != nil {
		h.logger.WarnContext(ctx, "malformed message data",
			"connectionID", connID, "event", env.Event, "error", err)
		return
	}
	orderID := order.ID(ref.OrderID)

	if target, ok := order.StageForCommand(env.Event); ok {
		cmd, err := commands.NewAdvanceOrderCommand(orderID, target)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid transition message",
				"connectionID", connID, "event", env.Event, "error", err)
			return
		}
		if err := h.advance.Handle(ctx, cmd); err != nil {
			h.logger.ErrorContext(ctx, "transition failed",
				"connectionID", connID, "event", env.Event, "error", err)
		}
		return
	}

	if env.Event == eventRegisterCustomer {
		cmd, err := commands.NewRegisterConnectionCommand(orderID, connID)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid registration message",
				"connectionID", connID, "error", err)
			return
		}
		if err := h.register.Handle(ctx, cmd); err != nil {
			h.logger.ErrorContext(ctx, "registration failed",
				"connectionID", connID, "error", err)
		}
		return
	}

	h.logger.WarnContext(ctx, "unknown event", "connectionID", connID, "event", env.Event)
}

// drop removes the connection from the hub and releases any customer
// registrations bound to it.
func (h *Hub) drop(ctx context.Context, connID kernel.ConnectionID, cl *client) {
	h.mu.Lock()
	delete(h.clients, connID)
	h.mu.Unlock()

	close(cl.send)

	cmd, err := commands.NewDisconnectCommand(connID)
	if err != nil {
		return
	}
	if err := h.disconnect.Handle(ctx, cmd); err != nil {
		h.logger.ErrorContext(ctx, "disconnect cleanup failed",
			"connectionID", connID, "error", err)
	}
}
