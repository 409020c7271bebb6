package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/sequencerepo"
	"shop/internal/adapters/out/push"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sequences  ports.SequenceAllocator
	pricing    services.PricingService
	banPolicy  services.BanPolicy
	publisher  ports.OrderEventPublisher
	dispatcher ports.NotificationDispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	pricing, err := services.NewPricingService(config.FreeShippingThreshold, config.FlatDeliveryFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("configure pricing: %w", err)
	}

	banPolicy, err := services.NewBanPolicy(config.BanThreshold)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("configure ban policy: %w", err)
	}

	// A broker outage must not keep the service from starting; the status
	// change handler treats a nil publisher as "do not publish".
	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		kafkaPublisher, pubErr := kafka.NewOrderEventPublisher(config.KafkaHost, config.KafkaOrderChangedTopic)
		if pubErr != nil {
			return CompositionRoot{}, fmt.Errorf("configure kafka publisher: %w", pubErr)
		}
		publisher = kafkaPublisher
	}

	dispatcher, err := push.NewFCMDispatcher(ctx, config.FCMProjectID, config.FCMCredentialsFile, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("configure push dispatcher: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sequences:  sequencerepo.NewGormSequenceAllocator(gormDB),
		pricing:    pricing,
		banPolicy:  banPolicy,
		publisher:  publisher,
		dispatcher: dispatcher,
		timeout:    config.OperationTimeout,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.sequences, c.pricing, c.logger, c.timeout)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.ChangeOrderStatusUoWFactory = FuncChangeOrderStatusUoWFactory(func() commands.ChangeOrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.banPolicy, c.publisher, c.logger, c.timeout)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayNotificationsCommandHandler(f, c.dispatcher, c.logger, c.timeout)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB, c.timeout)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncChangeOrderStatusUoWFactory func() commands.ChangeOrderStatusUoW

func (f FuncChangeOrderStatusUoWFactory) Create() commands.ChangeOrderStatusUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
