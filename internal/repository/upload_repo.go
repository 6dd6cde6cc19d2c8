package repository

import (
	"context"
	"time"

	"hireme/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	UserID      int64     `gorm:"column:user_id;index;not null"`
	StorageKey  string    `gorm:"column:storage_key;not null"`
	ContentType string    `gorm:"column:content_type;not null"`
	Size        int64     `gorm:"column:size;not null"`
	Ready       bool      `gorm:"column:ready;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (uploadModel) TableName() string { return "uploads" }

func toDomainUpload(m uploadModel) *domain.Upload {
	return &domain.Upload{
		ID:          m.ID,
		UserID:      m.UserID,
		StorageKey:  m.StorageKey,
		ContentType: m.ContentType,
		Size:        m.Size,
		Ready:       m.Ready,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := uploadModel{
		ID:          u.ID,
		UserID:      u.UserID,
		StorageKey:  u.StorageKey,
		ContentType: u.ContentType,
		Size:        u.Size,
		Ready:       u.Ready,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = *toDomainUpload(m)
	return nil
}

// GetByID returns nil, nil for unknown references.
func (r *UploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	var m uploadModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUpload(m), nil
}

func (r *UploadRepository) MarkReady(ctx context.Context, id string, size int64) error {
	return r.db.WithContext(ctx).
		Model(&uploadModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"ready": true, "size": size}).Error
}

// ListPendingBefore returns reservations that never completed, oldest first.
func (r *UploadRepository) ListPendingBefore(ctx context.Context, before time.Time, limit int) ([]*domain.Upload, error) {
	var rows []uploadModel
	if err := r.db.WithContext(ctx).
		Where("ready = ? AND created_at < ?", false, before).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Upload, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainUpload(m))
	}
	return out, nil
}

func (r *UploadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&uploadModel{}).Error
}
