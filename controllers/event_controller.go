package controllers

import (
	"errors"
	"strconv"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct {
	Service *services.EventService
}

func NewEventController(service *services.EventService) *EventController {
	return &EventController{Service: service}
}

func (ec *EventController) Create(c *gin.Context) {
	var req services.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	event, err := ec.Service.Create(&req)
	if errors.Is(err, services.ErrSlugTaken) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, event)
}

func (ec *EventController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	event, err := ec.Service.Update(uint(id), &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "event not found")
		return
	}
	if errors.Is(err, services.ErrSlugTaken) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, event)
}

func (ec *EventController) List(c *gin.Context) {
	items, err := ec.Service.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ec *EventController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	event, err := ec.Service.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "event not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, event)
}

// GET /portfolio/events/:slug — public portfolio page.
func (ec *EventController) BySlug(c *gin.Context) {
	event, err := ec.Service.BySlug(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "event not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, event)
}

func (ec *EventController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := ec.Service.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "event not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
