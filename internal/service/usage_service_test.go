package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedPaper(store *fakeStore, downloadable bool) *entity.Paper {
	p := &entity.Paper{
		Id:           uuid.New(),
		CategoryId:   uuid.New(),
		Title:        "Past Paper 2023",
		Year:         2023,
		Downloadable: downloadable,
	}
	store.papers = append(store.papers, p)
	return p
}

func seedQuestion(store *fakeStore, categoryId uuid.UUID, active bool) *entity.Question {
	q := &entity.Question{
		Id:         uuid.New(),
		CategoryId: categoryId,
		Text:       "What is 2+2?",
		Answer:     "4",
		IsActive:   active,
	}
	store.questions = append(store.questions, q)
	return q
}

// subscribe puts the user on a plan carrying a bounded monthly
// download quota.
func subscribe(store *fakeStore, userId uuid.UUID, limit int) *entity.Plan {
	plan := &entity.Plan{Id: uuid.New(), Name: "Premium", Slug: "premium", IsActive: true}
	plan.Features = []entity.PlanFeature{
		{Id: uuid.New(), PlanId: plan.Id, Text: "downloads", IsQuota: true, Key: QuotaKeyDownloads, Limit: limit, Period: entity.QuotaPeriodMonthly},
	}
	store.plans = append(store.plans, plan)
	store.history = append(store.history, &entity.UserPlan{
		Id:               uuid.New(),
		UserId:           userId,
		PlanId:           plan.Id,
		PlanName:         plan.Name,
		SubscriptionDate: time.Now().AddDate(0, 0, -3),
		Status:           entity.UserPlanStatusCurrent,
	})
	return plan
}

func TestRecordDownloadWithoutPlan(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, true)

	svc := NewUsageService(factory)

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestRecordDownloadNotDownloadable(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, false)
	subscribe(factory.store, user.Id, 5)

	svc := NewUsageService(factory)

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestRecordDownloadUnknownPaper(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	subscribe(factory.store, user.Id, 5)

	svc := NewUsageService(factory)

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: uuid.New()})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestRecordDownloadQuotaExhausted(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, true)
	subscribe(factory.store, user.Id, 2)

	svc := NewUsageService(factory)

	for i := 0; i < 2; i++ {
		_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
		assert.NoError(t, err)
	}

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Len(t, factory.store.downloads, 2)
}

func TestRecordDownloadUnlimited(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, true)
	subscribe(factory.store, user.Id, entity.UnlimitedQuota)

	svc := NewUsageService(factory)

	for i := 0; i < 10; i++ {
		res, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
		assert.NoError(t, err)
		assert.Equal(t, paper.Id, res.PaperId)
	}
	assert.Len(t, factory.store.downloads, 10)
}

func TestGetUsageReportsQuotas(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, true)
	subscribe(factory.store, user.Id, 5)

	svc := NewUsageService(factory)

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
	assert.NoError(t, err)

	overview, err := svc.GetUsage(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Premium", overview.PlanName)
	assert.Len(t, overview.Quotas, 1)
	assert.Equal(t, QuotaKeyDownloads, overview.Quotas[0].Key)
	assert.Equal(t, 1, overview.Quotas[0].Used)
	assert.Equal(t, 5, overview.Quotas[0].Limit)
	assert.False(t, overview.Quotas[0].Unlimited)
}

func TestGetUsageCountsBookmarksAcrossPlanChanges(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	plan := &entity.Plan{Id: uuid.New(), Name: "Premium", Slug: "premium", IsActive: true}
	plan.Features = []entity.PlanFeature{
		{Id: uuid.New(), PlanId: plan.Id, Text: "bookmarks", IsQuota: true, Key: QuotaKeyBookmarks, Limit: 10, Period: entity.QuotaPeriodLifetime},
	}
	factory.store.plans = append(factory.store.plans, plan)
	factory.store.history = append(factory.store.history, &entity.UserPlan{
		Id:               uuid.New(),
		UserId:           user.Id,
		PlanId:           plan.Id,
		PlanName:         plan.Name,
		SubscriptionDate: time.Now(),
		Status:           entity.UserPlanStatusCurrent,
	})

	// Bookmarked two months ago, under a previous plan.
	factory.store.bookmarks = append(factory.store.bookmarks, &entity.Bookmark{
		Id:         uuid.New(),
		UserId:     user.Id,
		QuestionId: uuid.New(),
		CreatedAt:  time.Now().AddDate(0, -2, 0),
	})

	svc := NewUsageService(factory)

	overview, err := svc.GetUsage(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.Len(t, overview.Quotas, 1)
	assert.Equal(t, QuotaKeyBookmarks, overview.Quotas[0].Key)
	assert.Equal(t, 1, overview.Quotas[0].Used)
}

func TestGetUsageUnlimitedQuota(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	paper := seedPaper(factory.store, true)
	subscribe(factory.store, user.Id, entity.UnlimitedQuota)

	svc := NewUsageService(factory)

	_, err := svc.RecordDownload(context.Background(), user.Id, &dto.RecordDownloadRequest{PaperId: paper.Id})
	assert.NoError(t, err)

	overview, err := svc.GetUsage(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.Len(t, overview.Quotas, 1)
	assert.True(t, overview.Quotas[0].Unlimited)
	assert.Equal(t, entity.UnlimitedQuota, overview.Quotas[0].Limit)
}

func TestGetUsageWithoutPlan(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewUsageService(factory)

	overview, err := svc.GetUsage(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.Empty(t, overview.PlanName)
	assert.Empty(t, overview.Quotas)
}

func TestCreateBookmarkDuplicate(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	question := seedQuestion(factory.store, uuid.New(), true)

	svc := NewUsageService(factory)

	_, err := svc.CreateBookmark(context.Background(), user.Id, &dto.CreateBookmarkRequest{QuestionId: question.Id})
	assert.NoError(t, err)

	_, err = svc.CreateBookmark(context.Background(), user.Id, &dto.CreateBookmarkRequest{QuestionId: question.Id})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestCreateBookmarkUnknownQuestion(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewUsageService(factory)

	_, err := svc.CreateBookmark(context.Background(), user.Id, &dto.CreateBookmarkRequest{QuestionId: uuid.New()})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteBookmarkScopedToOwner(t *testing.T) {
	factory := newFakeFactory()
	owner := seedUser(factory.store, "alice@example.com")
	other := seedUser(factory.store, "bob@example.com")
	question := seedQuestion(factory.store, uuid.New(), true)

	svc := NewUsageService(factory)

	created, err := svc.CreateBookmark(context.Background(), owner.Id, &dto.CreateBookmarkRequest{QuestionId: question.Id})
	assert.NoError(t, err)

	err = svc.DeleteBookmark(context.Background(), other.Id, created.Id)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = svc.DeleteBookmark(context.Background(), owner.Id, created.Id)
	assert.NoError(t, err)
	assert.Empty(t, factory.store.bookmarks)
}
