package controllers

import (
	"errors"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/SuperEjay/pos-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Service.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	u, err := ac.Service.Me(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}

func (ac *AuthController) CreateStaff(c *gin.Context) {
	var req services.CreateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Service.CreateStaff(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, u)
}

func (ac *AuthController) ListStaff(c *gin.Context) {
	users, err := ac.Service.ListStaff()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}
