package cmd

import (
	"log/slog"

	httpin "eatery/internal/adapters/in/http"
	"eatery/internal/adapters/in/ws"
	"eatery/internal/adapters/out/memory"
	"eatery/internal/adapters/out/webpush"
	"eatery/internal/core/application/services"
	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/application/usecases/queries"
	"eatery/internal/core/ports"
	"eatery/internal/jobs"
	"eatery/internal/pkg/metrics"
)

type CompositionRoot struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	store   *memory.OrderStore
	live    *memory.LiveConnectionRegistry
	push    *memory.PushSubscriptionRegistry
	hub     *ws.Hub
	router  *services.NotificationRouter
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	// Without VAPID credentials the service still runs; customers just
	// get no push alerts, only live ones.
	var sender ports.PushSender
	if config.VAPIDPublicKey == "" || config.VAPIDPrivateKey == "" || config.PushSubscriber == "" {
		logger.Warn("VAPID credentials are not configured, push notifications disabled")
	} else {
		webpushSender, err := webpush.NewSender(
			config.PushSubscriber, config.VAPIDPublicKey, config.VAPIDPrivateKey)
		if err != nil {
			return CompositionRoot{}, err
		}
		sender = webpushSender
	}

	store := memory.NewOrderStore(nil)
	live := memory.NewLiveConnectionRegistry()
	push := memory.NewPushSubscriptionRegistry()
	m := metrics.New()
	hub := ws.NewHub(store, logger)

	root := CompositionRoot{
		logger:  logger,
		metrics: m,
		store:   store,
		live:    live,
		push:    push,
		hub:     hub,
		router:  services.NewNotificationRouter(live, push, hub, sender, m, logger),
	}

	// The hub dispatches inbound terminal messages to handlers that in
	// turn publish through the hub, so handlers attach after creation.
	hub.Attach(
		root.CreateAdvanceOrderCommandHandler(),
		root.CreateRegisterConnectionCommandHandler(),
		root.CreateDisconnectCommandHandler(),
	)

	return root, nil
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.store, c.hub, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(
		c.store, c.hub, c.router, c.live, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateRegisterConnectionCommandHandler() commands.RegisterConnectionCommandHandler {
	return commands.NewRegisterConnectionCommandHandler(c.live, c.logger)
}

func (c *CompositionRoot) CreateSubscribePushCommandHandler() commands.SubscribePushCommandHandler {
	return commands.NewSubscribePushCommandHandler(c.push, c.logger)
}

func (c *CompositionRoot) CreateDisconnectCommandHandler() commands.DisconnectCommandHandler {
	return commands.NewDisconnectCommandHandler(c.live, c.logger)
}

func (c *CompositionRoot) CreateGetDailySalesQueryHandler() (queries.GetDailySalesQueryHandler, error) {
	return queries.NewGetDailySalesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	dailySales, err := c.CreateGetDailySalesQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateSubscribePushCommandHandler(),
		dailySales,
	), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	dailySales, err := c.CreateGetDailySalesQueryHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(dailySales, c.logger), nil
}
