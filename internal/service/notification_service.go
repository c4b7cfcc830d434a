// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/logger"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"
	"exam-prep-be/pkg/events"
	pktNats "exam-prep-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationMessage)
	Broadcast(notification dto.NotificationMessage)
}

// NotificationService turns bus events into websocket pushes. Order and
// ticket activity goes to admins; ticket replies go back to the owner.
type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	if s.delivery == nil {
		return nil
	}

	payload := event.Payload()

	switch event.EventType() {
	case events.TypeOrderCreated:
		return s.notifyAdmins(ctx, event, "New Order", fmt.Sprintf("A new order was placed (%v)", payload["order_id"]))

	case events.TypeOrderCompleted:
		return s.notifyAdmins(ctx, event, "Order Completed", fmt.Sprintf("Order %v was paid", payload["order_id"]))

	case events.TypeOrderFailed:
		return s.notifyAdmins(ctx, event, "Order Failed", fmt.Sprintf("Order %v failed", payload["order_id"]))

	case events.TypeOrderRefunded:
		return s.notifyAdmins(ctx, event, "Order Refunded", fmt.Sprintf("Order %v was refunded", payload["order_id"]))

	case events.TypeTicketCreated:
		return s.notifyAdmins(ctx, event, "New Support Ticket", fmt.Sprintf("%v", payload["subject"]))

	case events.TypeTicketReplied:
		// goes to the ticket owner, when they have an account
		if uidStr, ok := payload["user_id"].(string); ok && uidStr != "" {
			if uid, err := uuid.Parse(uidStr); err == nil {
				s.delivery.Send(uid, buildNotification(event, "Support Reply", "Your support ticket has a new reply"))
			}
		}
		return nil
	}

	return nil
}

func (s *NotificationService) notifyAdmins(ctx context.Context, event events.Event, title, message string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admins, err := uow.UserRepository().FindAll(ctx, specification.Filter("role", entity.UserRoleAdmin))
	if err != nil {
		s.logger.Error("NotificationService", "Failed to resolve admin recipients", map[string]interface{}{"error": err})
		return err
	}

	notif := buildNotification(event, title, message)
	for _, admin := range admins {
		s.delivery.Send(admin.Id, notif)
	}
	return nil
}

func buildNotification(event events.Event, title, message string) dto.NotificationMessage {
	return dto.NotificationMessage{
		Id:        uuid.New(),
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   message,
		Metadata:  event.Payload(),
		CreatedAt: time.Now(),
	}
}
