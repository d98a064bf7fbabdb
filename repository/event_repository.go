package repository

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(e *entity.Event) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) Update(e *entity.Event) error {
	return r.DB.Save(e).Error
}

// Delete removes the row for good; a soft-deleted event would keep its slug
// locked under the unique index.
func (r *EventRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Event{}, id).Error
}

func (r *EventRepository) Get(id uint) (*entity.Event, error) {
	var e entity.Event
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// FindBySlug probes slug uniqueness and serves the public portfolio page.
// Returns gorm.ErrRecordNotFound when the slug is free.
func (r *EventRepository) FindBySlug(slug string) (*entity.Event, error) {
	var e entity.Event
	if err := r.DB.Where("slug = ?", slug).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) List(category string) ([]entity.Event, error) {
	q := r.DB.Order("event_date DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entity.Event
	err := q.Find(&out).Error
	return out, err
}
