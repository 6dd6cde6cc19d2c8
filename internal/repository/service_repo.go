package repository

import (
	"context"
	"time"

	"hireme/internal/domain"
	"hireme/internal/pkg/utils"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ProviderID   int64     `gorm:"column:provider_id;index;not null"`
	Title        string    `gorm:"column:title;not null"`
	Description  string    `gorm:"column:description;type:text;not null"`
	Category     string    `gorm:"column:category;index;not null"`
	Price        float64   `gorm:"column:price;not null"`
	Location     string    `gorm:"column:location;index;not null"`
	Availability *string   `gorm:"column:availability"`
	Photos       string    `gorm:"column:photos;type:text;not null;default:'[]'"`
	IsActive     bool      `gorm:"column:is_active;index;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:           m.ID,
		ProviderID:   m.ProviderID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Price:        m.Price,
		Location:     m.Location,
		Availability: m.Availability,
		Photos:       utils.StringToPhotos(m.Photos),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	return serviceModel{
		ID:           s.ID,
		ProviderID:   s.ProviderID,
		Title:        s.Title,
		Description:  s.Description,
		Category:     s.Category,
		Price:        s.Price,
		Location:     s.Location,
		Availability: s.Availability,
		Photos:       utils.PhotosToString(s.Photos),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toDomainServices(models []serviceModel) []*domain.Service {
	out := make([]*domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainService(m))
	}
	return out
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainService(m)
	return nil
}

// GetByID returns the service whether active or not; nil, nil when absent.
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainService(m), nil
}

// Update overwrites the editable fields. provider_id and is_active are kept.
func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	m.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).
		Model(&serviceModel{ID: s.ID}).
		Select("title", "description", "category", "price", "location", "availability", "photos", "updated_at").
		Updates(&m).Error
	if err != nil {
		return err
	}
	s.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ServiceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()}).Error
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return r.find(r.db.WithContext(ctx).Where("is_active = ?", true))
}

func (r *ServiceRepository) ListActiveByCategory(ctx context.Context, category string) ([]*domain.Service, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ? AND is_active = ?", category, true))
}

func (r *ServiceRepository) ListActiveByLocation(ctx context.Context, location string) ([]*domain.Service, error) {
	return r.find(r.db.WithContext(ctx).Where("location = ? AND is_active = ?", location, true))
}

// ListByProvider includes inactive services.
func (r *ServiceRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error) {
	return r.find(r.db.WithContext(ctx).Where("provider_id = ?", providerID))
}

func (r *ServiceRepository) find(q *gorm.DB) ([]*domain.Service, error) {
	var models []serviceModel
	if err := q.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainServices(models), nil
}
