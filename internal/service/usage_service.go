// FILE: internal/service/usage_service.go
package service

import (
	"context"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Quota feature keys.
const (
	QuotaKeyDownloads = "paper_downloads"
	QuotaKeyBookmarks = "bookmarks"
)

type IUsageService interface {
	GetUsage(ctx context.Context, userId uuid.UUID) (*dto.UsageOverviewResponse, error)

	CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, userId, bookmarkId uuid.UUID) error
	GetBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error)

	// RecordDownload charges one unit against the download quota and
	// returns Conflict once a bounded limit is consumed.
	RecordDownload(ctx context.Context, userId uuid.UUID, req *dto.RecordDownloadRequest) (*dto.DownloadResponse, error)
}

type usageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUsageService(uowFactory unitofwork.RepositoryFactory) IUsageService {
	return &usageService{uowFactory: uowFactory}
}

// quotaContext is the user's current plan record plus its quota features.
type quotaContext struct {
	record *entity.UserPlan
	plan   *entity.Plan
}

func (s *usageService) currentQuota(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*quotaContext, error) {
	record, err := uow.PlanHistoryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.StatusIs{Status: string(entity.UserPlanStatusCurrent)},
	)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Lapsed(time.Now()) {
		return &quotaContext{}, nil
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: record.PlanId})
	if err != nil {
		return nil, err
	}
	return &quotaContext{record: record, plan: plan}, nil
}

func (s *usageService) countUsage(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, feature *entity.PlanFeature, subscriptionStart time.Time) (int64, error) {
	switch feature.Key {
	case QuotaKeyDownloads:
		since := entity.PeriodStart(feature.Period, subscriptionStart, time.Now())
		return uow.UsageRepository().CountDownloads(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.CreatedAfter{Cutoff: since},
		)
	case QuotaKeyBookmarks:
		// Bookmarks count against the quota for the account's lifetime,
		// surviving plan changes.
		return uow.UsageRepository().CountBookmarks(ctx,
			specification.UserOwnedBy{UserID: userId},
		)
	default:
		return 0, nil
	}
}

func (s *usageService) GetUsage(ctx context.Context, userId uuid.UUID) (*dto.UsageOverviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	qc, err := s.currentQuota(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	res := &dto.UsageOverviewResponse{Quotas: []dto.QuotaUsageResponse{}}
	if qc.plan == nil {
		return res, nil
	}
	res.PlanName = qc.plan.Name

	now := time.Now()
	for i := range qc.plan.Features {
		f := &qc.plan.Features[i]
		if !f.IsQuota {
			continue
		}
		used := int64(0)
		if !f.Unlimited() {
			used, err = s.countUsage(ctx, uow, userId, f, qc.record.SubscriptionDate)
			if err != nil {
				return nil, err
			}
		}
		res.Quotas = append(res.Quotas, dto.QuotaUsageResponse{
			Key:       f.Key,
			Used:      int(used),
			Limit:     f.Limit,
			Unlimited: f.Unlimited(),
			ResetDate: entity.PeriodReset(f.Period, now),
		})
	}
	return res, nil
}

func (s *usageService) CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.QuestionId})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question")
	}

	existing, err := uow.UsageRepository().FindBookmarks(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("question_id", req.QuestionId),
	)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperror.Conflict("question already bookmarked")
	}

	bookmark := &entity.Bookmark{
		Id:         uuid.New(),
		UserId:     userId,
		QuestionId: req.QuestionId,
		CreatedAt:  time.Now(),
	}
	if err := uow.UsageRepository().CreateBookmark(ctx, bookmark); err != nil {
		return nil, err
	}
	return toBookmarkResponse(bookmark), nil
}

func (s *usageService) DeleteBookmark(ctx context.Context, userId, bookmarkId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmarks, err := uow.UsageRepository().FindBookmarks(ctx,
		specification.ByID{ID: bookmarkId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(bookmarks) == 0 {
		return apperror.NotFound("bookmark")
	}
	return uow.UsageRepository().DeleteBookmark(ctx, bookmarkId)
}

func (s *usageService) GetBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	bookmarks, err := uow.UsageRepository().FindBookmarks(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.BookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		res[i] = toBookmarkResponse(b)
	}
	return res, nil
}

func (s *usageService) RecordDownload(ctx context.Context, userId uuid.UUID, req *dto.RecordDownloadRequest) (*dto.DownloadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paper, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: req.PaperId})
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, apperror.NotFound("paper")
	}
	if !paper.Downloadable {
		return nil, apperror.Forbidden("paper is not downloadable")
	}

	qc, err := s.currentQuota(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if qc.plan == nil {
		return nil, apperror.Forbidden("an active plan is required to download papers")
	}

	feature := qc.plan.QuotaFeature(QuotaKeyDownloads)
	if feature == nil {
		return nil, apperror.Forbidden("your plan does not include paper downloads")
	}
	if !feature.Unlimited() {
		used, err := s.countUsage(ctx, uow, userId, feature, qc.record.SubscriptionDate)
		if err != nil {
			return nil, err
		}
		if used >= int64(feature.Limit) {
			return nil, apperror.Conflict("download quota exhausted for this period")
		}
	}

	download := &entity.Download{
		Id:        uuid.New(),
		UserId:    userId,
		PaperId:   req.PaperId,
		CreatedAt: time.Now(),
	}
	if err := uow.UsageRepository().CreateDownload(ctx, download); err != nil {
		return nil, err
	}
	return &dto.DownloadResponse{
		Id:        download.Id,
		PaperId:   download.PaperId,
		CreatedAt: download.CreatedAt,
	}, nil
}

func toBookmarkResponse(b *entity.Bookmark) *dto.BookmarkResponse {
	return &dto.BookmarkResponse{
		Id:         b.Id,
		QuestionId: b.QuestionId,
		CreatedAt:  b.CreatedAt,
	}
}
