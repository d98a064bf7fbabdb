package services

import (
	"errors"
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("an event with this title already exists")

type EventService struct {
	Repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{Repo: repo}
}

// ----- DTOs from Controller -----

type CreateEventReq struct {
	Title              string     `json:"title" binding:"required"`
	Location           string     `json:"location"`
	Pax                int        `json:"pax"`
	EventDate          *time.Time `json:"eventDate"`
	Category           string     `json:"category"`
	Images             []string   `json:"images"`
	FeaturedImageIndex int        `json:"featuredImageIndex"`
	Flavors            []string   `json:"flavors"`
}

func (req *CreateEventReq) validate() error {
	if req.FeaturedImageIndex < 0 || (len(req.Images) > 0 && req.FeaturedImageIndex >= len(req.Images)) {
		return validationError("featuredImageIndex out of range")
	}
	return nil
}

// checkSlug mirrors the expense date pre-check: not-found means free.
func (s *EventService) checkSlug(sl string, excludeID uint) error {
	existing, err := s.Repo.FindBySlug(sl)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != excludeID {
		return ErrSlugTaken
	}
	return nil
}

func (s *EventService) Create(req *CreateEventReq) (*entity.Event, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	sl := slug.Make(req.Title)
	if err := s.checkSlug(sl, 0); err != nil {
		return nil, err
	}

	e := entity.Event{
		Title:              req.Title,
		Slug:               sl,
		Location:           req.Location,
		Pax:                req.Pax,
		Category:           req.Category,
		Images:             req.Images,
		FeaturedImageIndex: req.FeaturedImageIndex,
		Flavors:            req.Flavors,
	}
	if req.EventDate != nil {
		e.EventDate = *req.EventDate
	}
	if err := s.Repo.Create(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventService) Update(id uint, req *CreateEventReq) (*entity.Event, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}

	sl := slug.Make(req.Title)
	if err := s.checkSlug(sl, id); err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Slug = sl
	existing.Location = req.Location
	existing.Pax = req.Pax
	existing.Category = req.Category
	existing.Images = req.Images
	existing.FeaturedImageIndex = req.FeaturedImageIndex
	existing.Flavors = req.Flavors
	if req.EventDate != nil {
		existing.EventDate = *req.EventDate
	}
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *EventService) List(category string) ([]entity.Event, error) {
	return s.Repo.List(category)
}

func (s *EventService) Detail(id uint) (*entity.Event, error) {
	return s.Repo.Get(id)
}

func (s *EventService) BySlug(sl string) (*entity.Event, error) {
	return s.Repo.FindBySlug(sl)
}

func (s *EventService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
