package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"ordercompletion/internal/adapters/out/notification"
	"ordercompletion/internal/adapters/out/postgres"
	"ordercompletion/internal/core/application/usecases/commands"
	"ordercompletion/internal/core/application/usecases/queries"
	"ordercompletion/internal/core/domain/services"
	"ordercompletion/internal/core/ports"
	"ordercompletion/internal/jobs"
	"ordercompletion/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs            Config
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	notificationClient ports.NotificationClient
	logger             *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notificationClient, err := notification.NewClient(notification.ClientSettings{
		BaseURL:      configs.NotificationsAddress,
		RetryCount:   configs.NotificationRetryCount,
		RetryTimeout: time.Duration(configs.NotificationRetryTimeout) * time.Second,
	}, http.DefaultClient, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:            configs,
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		notificationClient: notificationClient,
		logger:             logger,
	}, nil
}

func (c *CompositionRoot) CreateCompleteOrdersCommandHandler() commands.CompleteOrdersCommandHandler {
	// A unit of work without Begin serves as a plain repository on the main
	// connection. The completion workflow is deliberately not transactional:
	// it spans external notification calls.
	repository := c.uowFactory.Create().OrderRepository()

	engine := services.NewRequirementEngine(c.logger,
		services.NewFullyDeliveredRequirement(),
		services.NewOrderAgeRequirement(clock.NewSystemClock()),
		services.NewNotFinishedRequirement(),
	)

	return commands.NewCompleteOrdersCommandHandler(repository, c.notificationClient, engine, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepJob := jobs.NewCompletionSweepJob(
		c.CreateCompleteOrdersCommandHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
		c.configs.CompletionSweepSchedule,
		c.logger,
	)
	return jobs.NewJobManager(sweepJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
