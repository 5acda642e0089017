package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

type PlanHandler struct {
	plans  *service.PlanService
	logger *zap.Logger
}

func NewPlanHandler(plans *service.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, logger: logger}
}

type planRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	TargetValue     float64 `json:"targetValue"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	ExecutorUserIDs []int64 `json:"executorUserIds" binding:"required"`
	CreatedByUserID int64   `json:"createdByUserId" binding:"required"`
}

type planResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TargetValue     float64 `json:"targetValue"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	ExecutorUserIDs []int64 `json:"executorUserIds"`
	CreatedByUserID int64   `json:"createdByUserId"`
	CreatedAt       string  `json:"createdAt"`
}

func mapPlan(plan *model.Plan) planResponse {
	return planResponse{
		ID:              plan.ID,
		Name:            plan.Name,
		Description:     plan.Description,
		TargetValue:     plan.TargetValue,
		StartDate:       formatDate(plan.StartDate),
		EndDate:         formatDate(plan.EndDate),
		ExecutorUserIDs: plan.ExecutorIDs(),
		CreatedByUserID: plan.CreatedByUserID,
		CreatedAt:       formatTime(plan.CreatedAt),
	}
}

func (h *PlanHandler) bind(c *gin.Context) (service.PlanInput, bool) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return service.PlanInput{}, false
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return service.PlanInput{}, false
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return service.PlanInput{}, false
	}
	return service.PlanInput{
		Name:            req.Name,
		Description:     req.Description,
		TargetValue:     req.TargetValue,
		StartDate:       startDate,
		EndDate:         endDate,
		ExecutorUserIDs: req.ExecutorUserIDs,
		CreatedByUserID: req.CreatedByUserID,
	}, true
}

func (h *PlanHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	plan, err := h.plans.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mapPlan(plan))
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	plan, err := h.plans.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapPlan(plan))
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := make([]planResponse, 0, len(plans))
	for i := range plans {
		response = append(response, mapPlan(&plans[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	plan, err := h.plans.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapPlan(plan))
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.plans.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
