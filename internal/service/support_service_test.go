package service

import (
	"context"
	"errors"
	"testing"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedAdmin(store *fakeStore, email string) *entity.User {
	admin := seedUser(store, email)
	admin.Role = entity.UserRoleAdmin
	return admin
}

func openTicket(t *testing.T, svc ISupportService, userId *uuid.UUID) *dto.SubmissionResponse {
	t.Helper()
	orderId := uuid.New()
	sub, err := svc.CreateSubmission(context.Background(), userId, &dto.CreateSubmissionRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Topic:   dto.TopicBilling,
		Subject: "Wrong charge",
		Message: "I was charged twice.",
		OrderId: &orderId,
	})
	assert.NoError(t, err)
	return sub
}

func TestCreateSubmissionOpensTicket(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)

	sub := openTicket(t, svc, &user.Id)
	assert.Equal(t, string(entity.TicketStatusOpen), sub.Status)
	assert.False(t, sub.IsRead)
	assert.Len(t, factory.store.submissions, 1)
}

func TestCreateSubmissionAnonymous(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSupportService(factory, nil, nil)

	sub := openTicket(t, svc, nil)
	assert.Equal(t, string(entity.TicketStatusOpen), sub.Status)
	assert.Nil(t, factory.store.submissions[0].UserId)
}

func TestReplyStatusTransitions(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	admin := seedAdmin(factory.store, "admin@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	reply, err := svc.Reply(context.Background(), sub.Id, admin.Id, &dto.TicketReplyRequest{Message: "Looking into it."})
	assert.NoError(t, err)
	assert.True(t, reply.IsAdmin)
	assert.Equal(t, entity.TicketStatusReplied, factory.store.submissions[0].Status)

	reply, err = svc.Reply(context.Background(), sub.Id, user.Id, &dto.TicketReplyRequest{Message: "Any update?"})
	assert.NoError(t, err)
	assert.False(t, reply.IsAdmin)
	assert.Equal(t, entity.TicketStatusOpen, factory.store.submissions[0].Status)
}

func TestReplyClosedTicket(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	err := svc.Close(context.Background(), sub.Id)
	assert.NoError(t, err)

	_, err = svc.Reply(context.Background(), sub.Id, user.Id, &dto.TicketReplyRequest{Message: "Hello?"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestSetStatusReopensClosedTicket(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	admin := seedAdmin(factory.store, "admin@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	err := svc.Close(context.Background(), sub.Id)
	assert.NoError(t, err)

	_, err = svc.Reply(context.Background(), sub.Id, user.Id, &dto.TicketReplyRequest{Message: "Hello?"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	err = svc.SetStatus(context.Background(), sub.Id, entity.TicketStatusOpen)
	assert.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, factory.store.submissions[0].Status)

	// A reopened ticket takes replies again.
	reply, err := svc.Reply(context.Background(), sub.Id, admin.Id, &dto.TicketReplyRequest{Message: "Reopened, following up."})
	assert.NoError(t, err)
	assert.True(t, reply.IsAdmin)
	assert.Equal(t, entity.TicketStatusReplied, factory.store.submissions[0].Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	err := svc.SetStatus(context.Background(), sub.Id, entity.TicketStatus("archived"))
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	err = svc.SetStatus(context.Background(), uuid.New(), entity.TicketStatusClosed)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestReplyNotOwner(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	other := seedUser(factory.store, "bob@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	_, err := svc.Reply(context.Background(), sub.Id, other.Id, &dto.TicketReplyRequest{Message: "Me too."})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestGetSubmissionOwnership(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	other := seedUser(factory.store, "bob@example.com")
	admin := seedAdmin(factory.store, "admin@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	_, err := svc.GetSubmission(context.Background(), sub.Id, &user.Id)
	assert.NoError(t, err)

	_, err = svc.GetSubmission(context.Background(), sub.Id, &other.Id)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))

	_, err = svc.GetSubmission(context.Background(), sub.Id, &admin.Id)
	assert.NoError(t, err)

	// nil requester skips the ownership check.
	_, err = svc.GetSubmission(context.Background(), sub.Id, nil)
	assert.NoError(t, err)
}

func TestGetSubmissionIncludesThread(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	admin := seedAdmin(factory.store, "admin@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	_, err := svc.Reply(context.Background(), sub.Id, admin.Id, &dto.TicketReplyRequest{Message: "On it."})
	assert.NoError(t, err)

	got, err := svc.GetSubmission(context.Background(), sub.Id, &user.Id)
	assert.NoError(t, err)
	assert.Len(t, got.Replies, 1)
	assert.Equal(t, "On it.", got.Replies[0].Message)
}

func TestCloseIdempotent(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	assert.NoError(t, svc.Close(context.Background(), sub.Id))
	assert.NoError(t, svc.Close(context.Background(), sub.Id))
	assert.Equal(t, entity.TicketStatusClosed, factory.store.submissions[0].Status)
}

func TestMarkReadIdempotent(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)
	sub := openTicket(t, svc, &user.Id)

	assert.NoError(t, svc.MarkRead(context.Background(), sub.Id))
	assert.NoError(t, svc.MarkRead(context.Background(), sub.Id))
	assert.True(t, factory.store.submissions[0].IsRead)
}

func TestGetAllSubmissionsStatusFilter(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSupportService(factory, nil, nil)
	first := openTicket(t, svc, &user.Id)
	openTicket(t, svc, &user.Id)

	assert.NoError(t, svc.Close(context.Background(), first.Id))

	page, err := svc.GetAllSubmissions(context.Background(), "open", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.GetAllSubmissions(context.Background(), "", 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}
