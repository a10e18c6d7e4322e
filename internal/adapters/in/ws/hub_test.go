package ws_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatery/internal/adapters/in/ws"
	"eatery/internal/adapters/out/memory"
	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/metrics"
)

type spyNotifier struct {
	mu    sync.Mutex
	calls []order.ID
}

func (n *spyNotifier) NotifyReady(_ context.Context, orderID order.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, orderID)
}

func (n *spyNotifier) Calls() []order.ID {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]order.ID(nil), n.calls...)
}

type fixture struct {
	hub      *ws.Hub
	store    *memory.OrderStore
	live     *memory.LiveConnectionRegistry
	notifier *spyNotifier
	server   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := memory.NewOrderStore(nil)
	live := memory.NewLiveConnectionRegistry()
	notifier := &spyNotifier{}
	m := metrics.New()

	hub := ws.NewHub(store, logger)
	hub.Attach(
		commands.NewAdvanceOrderCommandHandler(store, hub, notifier, live, m, logger),
		commands.NewRegisterConnectionCommandHandler(live, logger),
		commands.NewDisconnectCommandHandler(live, logger),
	)

	e := echo.New()
	e.GET("/ws", hub.Handle)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &fixture{hub: hub, store: store, live: live, notifier: notifier, server: server}
}

func (f *fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func (f *fixture) submit(t *testing.T, name string, price float64, quantity int) order.View {
	t.Helper()

	item, err := order.NewItem(name, price, quantity)
	require.NoError(t, err)
	view, err := f.store.Append(t.Context(), []order.Item{item})
	require.NoError(t, err)

	return view
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))

	return f
}

func sendFrame(t *testing.T, conn *websocket.Conn, event string, orderID order.ID) {
	t.Helper()

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": event,
		"data":  map[string]any{"orderId": int64(orderID)},
	}))
}

func TestHub_SnapshotOnConnect(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	conn := f.dial(t)

	first := readFrame(t, conn)
	assert.Equal(t, ports.EventInitialOrders, first.Event)

	var views []order.View
	require.NoError(t, json.Unmarshal(first.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, submitted.ID, views[0].ID)
	assert.Equal(t, order.Cooking.String(), views[0].Status)
}

func TestHub_StageCommandBroadcasts(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	kitchen := f.dial(t)
	cashier := f.dial(t)
	readFrame(t, kitchen)
	readFrame(t, cashier)

	sendFrame(t, kitchen, "cooking_complete", submitted.ID)

	update := readFrame(t, cashier)
	assert.Equal(t, order.AwaitingPayment.EntryEvent(), update.Event)

	var view order.View
	require.NoError(t, json.Unmarshal(update.Data, &view))
	assert.Equal(t, submitted.ID, view.ID)
	assert.Equal(t, order.AwaitingPayment.String(), view.Status)

	require.Eventually(t, func() bool {
		return len(f.notifier.Calls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, submitted.ID, f.notifier.Calls()[0])
}

func TestHub_RepeatedStageCommandIsSilent(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	kitchen := f.dial(t)
	readFrame(t, kitchen)

	sendFrame(t, kitchen, "cooking_complete", submitted.ID)
	readFrame(t, kitchen) // first transition broadcast

	// The repeat must produce no broadcast and no second alert, and the
	// connection must stay usable.
	sendFrame(t, kitchen, "cooking_complete", submitted.ID)
	sendFrame(t, kitchen, "confirm_payment", submitted.ID)

	update := readFrame(t, kitchen)
	assert.Equal(t, order.Served.EntryEvent(), update.Event)

	var view order.View
	require.NoError(t, json.Unmarshal(update.Data, &view))
	assert.Equal(t, order.Served.String(), view.Status)
	assert.Len(t, f.notifier.Calls(), 1)
}

func TestHub_RegisterCustomerReceivesReceipt(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	customer := f.dial(t)
	readFrame(t, customer)

	sendFrame(t, customer, "register_customer", submitted.ID)
	require.Eventually(t, func() bool {
		_, ok := f.live.Find(context.Background(), submitted.ID)
		return ok
	}, time.Second, 5*time.Millisecond)

	kitchen := f.dial(t)
	readFrame(t, kitchen)
	sendFrame(t, kitchen, "cooking_complete", submitted.ID)
	readFrame(t, customer) // broadcast of the kitchen transition
	sendFrame(t, kitchen, "confirm_payment", submitted.ID)

	// The customer sees the broadcast plus a targeted receipt.
	events := map[string]bool{}
	for range 2 {
		received := readFrame(t, customer)
		events[received.Event] = true
	}
	assert.True(t, events[order.Served.EntryEvent()])
	assert.True(t, events[ports.EventPaymentConfirmed])
}

func TestHub_DisconnectReleasesRegistration(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	customer := f.dial(t)
	readFrame(t, customer)
	sendFrame(t, customer, "register_customer", submitted.ID)
	require.Eventually(t, func() bool {
		_, ok := f.live.Find(context.Background(), submitted.ID)
		return ok
	}, time.Second, 5*time.Millisecond)

	customer.Close()

	require.Eventually(t, func() bool {
		_, ok := f.live.Find(context.Background(), submitted.ID)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

// Unicasts must be safe against the connection being torn down
// concurrently: the hub may never send on a channel the teardown path
// has closed.
func TestHub_UnicastDuringDisconnect(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	for range 50 {
		customer := f.dial(t)
		readFrame(t, customer)
		sendFrame(t, customer, "register_customer", submitted.ID)

		var connID kernel.ConnectionID
		require.Eventually(t, func() bool {
			var ok bool
			connID, ok = f.live.Find(context.Background(), submitted.ID)
			return ok
		}, time.Second, time.Millisecond)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for range 200 {
				f.hub.Unicast(context.Background(), connID, ports.Event{
					Name: ports.EventOrderReady,
					Data: submitted.ID,
				})
			}
		}()

		customer.Close()
		<-done
	}
}

func TestHub_UnknownEventKeepsConnectionAlive(t *testing.T) {
	f := newFixture(t)
	submitted := f.submit(t, "Ramen", 500, 1)

	conn := f.dial(t)
	readFrame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	sendFrame(t, conn, "reticulate_splines", submitted.ID)
	sendFrame(t, conn, "cooking_complete", submitted.ID)

	update := readFrame(t, conn)
	assert.Equal(t, order.AwaitingPayment.EntryEvent(), update.Event)
}
