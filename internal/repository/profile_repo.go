package repository

import (
	"context"
	"time"

	"hireme/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;uniqueIndex;not null"`
	Name        string    `gorm:"column:name;not null"`
	Bio         *string   `gorm:"column:bio;type:text"`
	Location    *string   `gorm:"column:location"`
	ContactInfo *string   `gorm:"column:contact_info"`
	PhotoRef    *string   `gorm:"column:photo_ref"`
	IsProvider  bool      `gorm:"column:is_provider;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainProfile(m profileModel) *domain.Profile {
	return &domain.Profile{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Bio:         m.Bio,
		Location:    m.Location,
		ContactInfo: m.ContactInfo,
		PhotoRef:    m.PhotoRef,
		IsProvider:  m.IsProvider,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProfileModel(p *domain.Profile) profileModel {
	return profileModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Bio:         p.Bio,
		Location:    p.Location,
		ContactInfo: p.ContactInfo,
		PhotoRef:    p.PhotoRef,
		IsProvider:  p.IsProvider,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	m := toProfileModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProfile(m)
	return nil
}

// GetByUserID returns nil, nil when the user has no profile.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var m profileModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainProfile(m), nil
}

// Update overwrites every mutable column, including NULLs for cleared optionals.
// user_id and is_provider are never touched.
func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	m := toProfileModel(p)
	m.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).
		Model(&profileModel{ID: p.ID}).
		Select("name", "bio", "location", "contact_info", "photo_ref", "updated_at").
		Updates(&m).Error
	if err != nil {
		return err
	}
	p.UpdatedAt = m.UpdatedAt
	return nil
}
