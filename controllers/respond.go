package controllers

import (
	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
)

// serviceError maps a service failure onto the response: correctable input
// gets a 400, anything else is a 500.
func serviceError(c *gin.Context, err error) {
	if services.IsValidation(err) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
