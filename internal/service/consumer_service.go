// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/pkg/mailer"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal email job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing email job %s for %s", payload.TemplateKey, payload.ToEmail)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	tmpl, err := uow.EmailTemplateRepository().FindOne(ctx, specification.KeyIs{Key: payload.TemplateKey})
	if err != nil {
		log.Printf("[ERROR] Failed to load email template %s: %v", payload.TemplateKey, err)
		msg.Nack() // Retriable
		return
	}
	if tmpl == nil {
		log.Printf("[ERROR] Email template not found: %s", payload.TemplateKey)
		msg.Ack() // Template deleted? No point retrying.
		return
	}

	if err := cs.emailService.SendTemplate(payload.ToEmail, tmpl, payload.Data); err != nil {
		log.Printf("[ERROR] Failed to send %s email to %s: %v", payload.TemplateKey, payload.ToEmail, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Email %s sent to %s", payload.TemplateKey, payload.ToEmail)
	msg.Ack()
}
