package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adSlideRepository struct {
	db *gorm.DB
}

// NewAdSlideRepository returns a GORM-backed repository.AdSlideRepository.
func NewAdSlideRepository(db *gorm.DB) repository.AdSlideRepository {
	return &adSlideRepository{db: db}
}

func (repo *adSlideRepository) List(ctx context.Context) ([]*entity.AdSlide, error) {
	var slideMs []model.AdSlideModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&slideMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ads")
	}

	slides := make([]*entity.AdSlide, 0, len(slideMs))
	for i := range slideMs {
		slides = append(slides, toAdSlideDomain(&slideMs[i]))
	}

	return slides, nil
}

func (repo *adSlideRepository) Create(ctx context.Context, slide *entity.AdSlide) error {
	if err := repo.db.WithContext(ctx).Create(fromAdSlideDomain(slide)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad")
	}

	return nil
}

func (repo *adSlideRepository) Update(ctx context.Context, slide *entity.AdSlide) (*entity.AdSlide, error) {
	var slideM model.AdSlideModel
	result := repo.db.WithContext(ctx).
		Model(&slideM).
		Clauses(clause.Returning{}).
		Where("id = ?", slide.ID).
		Updates(map[string]any{
			"title":    slide.Title,
			"subtitle": slide.Subtitle,
			"image":    slide.Image,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ad")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrAdNotFound
	}

	return toAdSlideDomain(&slideM), nil
}

func (repo *adSlideRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdSlideModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ad")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAdNotFound
	}

	return nil
}

func (repo *adSlideRepository) ReplaceAll(ctx context.Context, slides []*entity.AdSlide) error {
	db := repo.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.AdSlideModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear ads")
	}
	if len(slides) == 0 {
		return nil
	}

	slideMs := make([]*model.AdSlideModel, 0, len(slides))
	for _, slide := range slides {
		slideMs = append(slideMs, fromAdSlideDomain(slide))
	}
	if err := db.Create(slideMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert ads")
	}

	return nil
}

func toAdSlideDomain(slideM *model.AdSlideModel) *entity.AdSlide {
	return &entity.AdSlide{
		ID:       slideM.ID,
		Title:    slideM.Title,
		Subtitle: slideM.Subtitle,
		Image:    slideM.Image,
	}
}

func fromAdSlideDomain(slide *entity.AdSlide) *model.AdSlideModel {
	return &model.AdSlideModel{
		ID:       slide.ID,
		Title:    slide.Title,
		Subtitle: slide.Subtitle,
		Image:    slide.Image,
	}
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository returns a GORM-backed repository.NoticeRepository.
func NewNoticeRepository(db *gorm.DB) repository.NoticeRepository {
	return &noticeRepository{db: db}
}

func (repo *noticeRepository) List(ctx context.Context) ([]*entity.Notice, error) {
	var noticeMs []model.NoticeModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&noticeMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notices")
	}

	notices := make([]*entity.Notice, 0, len(noticeMs))
	for i := range noticeMs {
		notices = append(notices, &entity.Notice{ID: noticeMs[i].ID, Text: noticeMs[i].Text})
	}

	return notices, nil
}

func (repo *noticeRepository) Create(ctx context.Context, notice *entity.Notice) error {
	noticeM := &model.NoticeModel{ID: notice.ID, Text: notice.Text}
	if err := repo.db.WithContext(ctx).Create(noticeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNoticeAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notice")
	}

	return nil
}

func (repo *noticeRepository) Update(ctx context.Context, notice *entity.Notice) (*entity.Notice, error) {
	var noticeM model.NoticeModel
	result := repo.db.WithContext(ctx).
		Model(&noticeM).
		Clauses(clause.Returning{}).
		Where("id = ?", notice.ID).
		Update("text", notice.Text)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notice")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNoticeNotFound
	}

	return &entity.Notice{ID: noticeM.ID, Text: noticeM.Text}, nil
}

func (repo *noticeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoticeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notice")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNoticeNotFound
	}

	return nil
}

func (repo *noticeRepository) ReplaceAll(ctx context.Context, notices []*entity.Notice) error {
	db := repo.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.NoticeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear notices")
	}
	if len(notices) == 0 {
		return nil
	}

	noticeMs := make([]*model.NoticeModel, 0, len(notices))
	for _, notice := range notices {
		noticeMs = append(noticeMs, &model.NoticeModel{ID: notice.ID, Text: notice.Text})
	}
	if err := db.Create(noticeMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNoticeAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert notices")
	}

	return nil
}
