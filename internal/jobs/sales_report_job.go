package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"eatery/internal/core/application/usecases/queries"
)

// SalesReportJob periodically logs the running sales aggregate for the
// current day, so the operator has an hourly trace of revenue without
// polling the API.
type SalesReportJob struct {
	handler queries.GetDailySalesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSalesReportJob creates the job. Uses GetDailySalesQueryHandler to
// compute the aggregate on every tick.
func NewSalesReportJob(handler queries.GetDailySalesQueryHandler, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sales_report_job"),
	}
}

// Start begins the sales report job to run at the top of every hour.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDailySalesQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Hourly sales report",
			"date", report.Date,
			"totalRevenue", report.TotalRevenue,
			"totalItems", report.TotalItems,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running hourly)")
	return nil
}

// Stop stops the sales report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
