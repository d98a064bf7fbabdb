package controllers

import (
	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

// GET /reports/sales?from=&to=
func (rc *ReportController) Sales(c *gin.Context) {
	from, to, err := services.ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	report, err := rc.Service.Sales(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/summary?from=&to= — sales vs expenses.
func (rc *ReportController) Summary(c *gin.Context) {
	from, to, err := services.ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	report, err := rc.Service.Summary(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}
