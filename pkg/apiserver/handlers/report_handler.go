package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

type ReportHandler struct {
	reports *service.ReportService
	logger  *zap.Logger
}

func NewReportHandler(reports *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

type reportRequest struct {
	PlanID                 int64   `json:"planId" binding:"required"`
	ReportingUserID        int64   `json:"reportingUserId" binding:"required"`
	AssessedByUserID       *int64  `json:"assessedByUserId"`
	Year                   int     `json:"year" binding:"required"`
	Quarter                int     `json:"quarter" binding:"required"`
	ActualValue            float64 `json:"actualValue"`
	AnalystAssessmentScore *int    `json:"analystAssessmentScore"`
}

type reportResponse struct {
	ID                     int64   `json:"id"`
	PlanID                 int64   `json:"planId"`
	ReportingUserID        int64   `json:"reportingUserId"`
	AssessedByUserID       *int64  `json:"assessedByUserId"`
	Year                   int     `json:"year"`
	Quarter                int     `json:"quarter"`
	ActualValue            float64 `json:"actualValue"`
	AnalystAssessmentScore *int    `json:"analystAssessmentScore"`
	CreatedAt              string  `json:"createdAt"`
}

func mapReport(report *model.QuarterlyReport) reportResponse {
	return reportResponse{
		ID:                     report.ID,
		PlanID:                 report.PlanID,
		ReportingUserID:        report.ReportingUserID,
		AssessedByUserID:       report.AssessedByUserID,
		Year:                   report.Year,
		Quarter:                report.Quarter,
		ActualValue:            report.ActualValue,
		AnalystAssessmentScore: report.AnalystAssessmentScore,
		CreatedAt:              formatTime(report.CreatedAt),
	}
}

func toReportInput(req reportRequest) service.ReportInput {
	return service.ReportInput{
		PlanID:                 req.PlanID,
		ReportingUserID:        req.ReportingUserID,
		AssessedByUserID:       req.AssessedByUserID,
		Year:                   req.Year,
		Quarter:                req.Quarter,
		ActualValue:            req.ActualValue,
		AnalystAssessmentScore: req.AnalystAssessmentScore,
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	report, err := h.reports.Create(c.Request.Context(), toReportInput(req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mapReport(report))
}

func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapReport(report))
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := make([]reportResponse, 0, len(reports))
	for i := range reports {
		response = append(response, mapReport(&reports[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	report, err := h.reports.Update(c.Request.Context(), id, toReportInput(req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapReport(report))
}

func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
