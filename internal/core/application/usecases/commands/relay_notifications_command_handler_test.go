package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/customer"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayNotificationRepository struct{ mock.Mock }

func (m *MockRelayNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRelayNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRelayNotificationRepository) GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockRelayCustomerRepository struct{ mock.Mock }

func (m *MockRelayCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockRelayCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockRelayUoW struct{ mock.Mock }

func (m *MockRelayUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRelayUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRelayUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRelayUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockRelayUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockRelayUoWFactory struct{ mock.Mock }

func (m *MockRelayUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, recipient *customer.Customer, msg *notification.Notification) error {
	args := m.Called(ctx, recipient, msg)
	return args.Error(0)
}

func queuedNotification(t *testing.T, customerID kernel.UUID) *notification.Notification {
	t.Helper()

	n, err := notification.NewNotification(
		kernel.NewUUID(), customerID, kernel.NewUUID(), 42, order.Shipped)
	require.NoError(t, err)

	return n
}

func TestRelayNotificationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)

	customerID := kernel.NewUUID()
	recipient := testCustomer(t, customerID, false)
	first := queuedNotification(t, customerID)
	second := queuedNotification(t, customerID)

	notificationRepo := new(MockRelayNotificationRepository)
	customerRepo := new(MockRelayCustomerRepository)
	uow := new(MockRelayUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllUnsent", ctx, 50).
			Return([]*notification.Notification{first, second}, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(recipient, nil).Once(),
		notificationRepo.On("Update", ctx, first).Return(nil).Once(),
		notificationRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", ctx, recipient, first).Return(nil).Once()
	dispatcher.On("Dispatch", ctx, recipient, second).Return(nil).Once()

	factory := new(MockRelayUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayNotificationsCommandHandler(factory, dispatcher, testLogger(), commands.DefaultOperationTimeout)
	err := handler.Handle(ctx, commands.NewRelayNotificationsCommand())

	require.NoError(t, err)
	assert.True(t, first.IsSent())
	assert.True(t, second.IsSent())
	// the recipient is loaded once for both messages
	customerRepo.AssertNumberOfCalls(t, "Get", 1)

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestRelayNotificationsCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := testContext(t)

	notificationRepo := new(MockRelayNotificationRepository)
	uow := new(MockRelayUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllUnsent", ctx, 50).
			Return([]*notification.Notification{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRelayUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)

	handler := commands.NewRelayNotificationsCommandHandler(factory, dispatcher, testLogger(), commands.DefaultOperationTimeout)
	err := handler.Handle(ctx, commands.NewRelayNotificationsCommand())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoNotificationsFound)
	dispatcher.AssertNotCalled(t, "Dispatch", ctx, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRelayNotificationsCommandHandler_Handle_DeliveryFailureDoesNotFailBatch(t *testing.T) {
	ctx := testContext(t)

	customerID := kernel.NewUUID()
	recipient := testCustomer(t, customerID, false)
	msg := queuedNotification(t, customerID)

	notificationRepo := new(MockRelayNotificationRepository)
	customerRepo := new(MockRelayCustomerRepository)
	uow := new(MockRelayUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllUnsent", ctx, 50).
			Return([]*notification.Notification{msg}, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(recipient, nil).Once(),
		notificationRepo.On("Update", ctx, msg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Dispatch", ctx, recipient, msg).
		Return(errors.New("push service unavailable")).Once()

	factory := new(MockRelayUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayNotificationsCommandHandler(factory, dispatcher, testLogger(), commands.DefaultOperationTimeout)
	err := handler.Handle(ctx, commands.NewRelayNotificationsCommand())

	require.NoError(t, err)
	// the message stays claimed even though delivery failed
	assert.True(t, msg.IsSent())
	dispatcher.AssertExpectations(t)
}

func TestRelayNotificationsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RelayNotificationsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRelayNotificationsCommandIsNotConstructed)
}

func TestRelayNotificationsCommandHandler_Handle_DeadlineExpiry(t *testing.T) {
	uow := new(MockRelayUoW)
	uow.On("Begin", mock.MatchedBy(func(opCtx context.Context) bool {
		_, ok := opCtx.Deadline()
		return ok
	})).Return(context.DeadlineExceeded).Once()

	factory := new(MockRelayUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := new(MockNotificationDispatcher)

	handler := commands.NewRelayNotificationsCommandHandler(
		factory, dispatcher, testLogger(), commands.DefaultOperationTimeout)
	err := handler.Handle(t.Context(), commands.NewRelayNotificationsCommand())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
