package services

import (
	"errors"
	"testing"

	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/gosimple/slug"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(repository.NewEventRepository(newTestDB(t)))
}

func TestCreateEventSlugifiesTitle(t *testing.T) {
	svc := newEventService(t)

	e, err := svc.Create(&CreateEventReq{
		Title:    "Mika & Rio's Wedding!",
		Category: "wedding",
		Images:   []string{"a.jpg", "b.jpg"},
		Flavors:  []string{"ube", "mango"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Slug != slug.Make("Mika & Rio's Wedding!") {
		t.Errorf("slug = %q", e.Slug)
	}
	if e.Slug == "" || e.Slug == e.Title {
		t.Errorf("title was not slugified: %q", e.Slug)
	}

	got, err := svc.BySlug(e.Slug)
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if got.ID != e.ID {
		t.Errorf("BySlug returned id %d, want %d", got.ID, e.ID)
	}
}

func TestCreateEventRejectsDuplicateSlug(t *testing.T) {
	svc := newEventService(t)

	if _, err := svc.Create(&CreateEventReq{Title: "Summer Fair"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(&CreateEventReq{Title: "Summer Fair"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestCreateEventValidatesFeaturedIndex(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.Create(&CreateEventReq{
		Title:              "Gallery Night",
		Images:             []string{"a.jpg"},
		FeaturedImageIndex: 3,
	})
	if err == nil {
		t.Error("out-of-range featured index accepted")
	}
}

func TestRecreateEventAfterDelete(t *testing.T) {
	svc := newEventService(t)

	e, err := svc.Create(&CreateEventReq{Title: "Winter Market"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The slug is free again once its event is gone.
	if _, err := svc.Create(&CreateEventReq{Title: "Winter Market"}); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}

func TestUpdateEventAllowsOwnSlug(t *testing.T) {
	svc := newEventService(t)

	e, err := svc.Create(&CreateEventReq{Title: "Autumn Pop-up", Pax: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(e.ID, &CreateEventReq{Title: "Autumn Pop-up", Pax: 60})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Pax != 60 {
		t.Errorf("pax = %d, want 60", updated.Pax)
	}
}
