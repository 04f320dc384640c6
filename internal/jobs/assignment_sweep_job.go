package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// assignmentSweepSchedule runs the sweep every five seconds, which bounds
// how long an out-for-delivery order waits before agents can see it.
const assignmentSweepSchedule = "*/5 * * * * *"

// AssignmentSweepJob opens delivery assignments for out-for-delivery orders
// that have none.
type AssignmentSweepJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.CreateAssignmentCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAssignmentSweepJob creates the sweep job.
func NewAssignmentSweepJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.CreateAssignmentCommandHandler,
	logger *slog.Logger,
) *AssignmentSweepJob {
	return &AssignmentSweepJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "assignment_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *AssignmentSweepJob) Start() error {
	_, err := j.cron.AddFunc(assignmentSweepSchedule, func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "assignment sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "assignment sweep job started")
	return nil
}

// Stop stops the sweep.
func (j *AssignmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "assignment sweep job stopped")
}

func (j *AssignmentSweepJob) sweep(ctx context.Context) error {
	orders, err := j.uncoveredOrders(ctx)
	if err != nil {
		return err
	}

	// One failing order must not hold the rest of the pool back a cycle.
	for _, o := range orders {
		if err := j.open(ctx, o); err != nil {
			j.logger.ErrorContext(ctx, "assignment sweep skipped order",
				slog.String("order_id", o.ID().String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (j *AssignmentSweepJob) uncoveredOrders(ctx context.Context) ([]*order.Order, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllDispatchable(ctx)
}

func (j *AssignmentSweepJob) open(ctx context.Context, o *order.Order) error {
	cmd, err := commands.NewCreateAssignmentCommand(kernel.NewUUID(), o.ID())
	if err != nil {
		return err
	}

	_, err = j.handler.Handle(ctx, cmd)
	if err == nil {
		return nil
	}

	// Another sweep run covered the order between the read and this call.
	if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrInvalidTransition) {
		return nil
	}

	return err
}
