package jobs

import (
	"fmt"
	"log/slog"

	"pharmacy/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentSweepJob *AssignmentSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderUoWFactory commands.OrderUoWFactory,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentSweepJob: NewAssignmentSweepJob(orderUoWFactory, createAssignmentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentSweepJob.Stop()
}
