package cmd

import (
	"renum/internal/adapters/storage"
	"renum/internal/ports"
	"renum/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ExecutorService *services.ExecutorService
	HistoryService  *services.HistoryService
	PlannerService  *services.PlannerService

	// Internal - for cleanup only
	historyRepo ports.HistoryRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The history repository is an explicitly passed handle; callers control
// its location through flags, env, or settings.
func NewContainer(historyPath string) (*Container, error) {
	historyRepo, err := storage.NewJSONRepository(historyPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		ExecutorService: services.NewExecutorService(historyRepo),
		HistoryService:  services.NewHistoryService(historyRepo),
		PlannerService:  services.NewPlannerService(),
		historyRepo:     historyRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.historyRepo != nil {
		return c.historyRepo.Close()
	}
	return nil
}
