package mapper

import (
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"
)

type UsageMapper struct{}

func NewUsageMapper() *UsageMapper {
	return &UsageMapper{}
}

func (m *UsageMapper) BookmarkToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	return &entity.Bookmark{
		Id:         b.Id,
		UserId:     b.UserId,
		QuestionId: b.QuestionId,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *UsageMapper) BookmarkToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}
	return &model.Bookmark{
		Id:         b.Id,
		UserId:     b.UserId,
		QuestionId: b.QuestionId,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *UsageMapper) DownloadToEntity(d *model.Download) *entity.Download {
	if d == nil {
		return nil
	}
	return &entity.Download{
		Id:        d.Id,
		UserId:    d.UserId,
		PaperId:   d.PaperId,
		CreatedAt: d.CreatedAt,
	}
}

func (m *UsageMapper) DownloadToModel(d *entity.Download) *model.Download {
	if d == nil {
		return nil
	}
	return &model.Download{
		Id:        d.Id,
		UserId:    d.UserId,
		PaperId:   d.PaperId,
		CreatedAt: d.CreatedAt,
	}
}
