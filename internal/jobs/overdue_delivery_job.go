package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob watches accepted orders and reports the ones whose
// delivery estimate has run out. It is observation only: an overdue order
// stays Accepted until the customer confirms delivery or someone cancels it.
type OverdueDeliveryJob struct {
	uowFactory commands.OrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
	now        func() time.Time
}

// NewOverdueDeliveryJob creates a job that scans for overdue deliveries
// once a minute.
func NewOverdueDeliveryJob(uowFactory commands.OrderUoWFactory, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "overdue_delivery_job"),
		now:        time.Now,
	}
}

// Start begins the overdue delivery job to run every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAllAcceptedUndelivered(ctx)
	if err != nil {
		return err
	}

	now := j.now()
	for _, o := range orders {
		acceptedAt := o.AcceptedAt()
		if acceptedAt == nil {
			continue
		}

		deadline := acceptedAt.Add(time.Duration(o.TimeToDeliver()) * time.Minute)
		if now.After(deadline) {
			j.logger.WarnContext(ctx, "Order delivery is overdue",
				"order_id", o.ID().String(),
				"accepted_at", acceptedAt,
				"time_to_deliver_minutes", o.TimeToDeliver(),
				"overdue_by", now.Sub(deadline).Round(time.Second).String(),
			)
		}
	}

	return nil
}
