package controllers

import (
	"errors"
	"strconv"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpenseController struct {
	Service *services.ExpenseService
}

func NewExpenseController(service *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Service: service}
}

func (ec *ExpenseController) Create(c *gin.Context) {
	var req services.CreateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	expense, err := ec.Service.Create(&req)
	if errors.Is(err, services.ErrExpenseDateTaken) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, expense)
}

func (ec *ExpenseController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	expense, err := ec.Service.Update(uint(id), &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "expense not found")
		return
	}
	if errors.Is(err, services.ErrExpenseDateTaken) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, expense)
}

func (ec *ExpenseController) List(c *gin.Context) {
	items, err := ec.Service.List(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (ec *ExpenseController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	expense, err := ec.Service.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "expense not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, expense)
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := ec.Service.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "expense not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
