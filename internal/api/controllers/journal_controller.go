package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retreatly/internal/models/request_models"
	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type JournalController struct {
	journalService services.JournalService
	recommender    services.RecommendationService
}

func NewJournalController(journalService services.JournalService, recommender services.RecommendationService) *JournalController {
	return &JournalController{
		journalService: journalService,
		recommender:    recommender,
	}
}

// SaveEntry godoc
// @Summary Save a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.SaveJournalEntryRequest true "Journal entry payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries [post]
func (j *JournalController) SaveEntry(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.SaveJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := j.journalService.SaveEntry(c.Request.Context(), userId, req.Content, req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Journal entry saved")
}

func (j *JournalController) ListEntries(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	entries, total, err := j.journalService.ListEntries(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"entries": entries, "total": total}, "Journal entries fetched")
}

// Analyze godoc
// @Summary Analyze journal text and recommend retreats
// @Description Extracts wellness keywords and returns retreat recommendations. Falls back to locally scored suggestions when the hosted recommender is unavailable.
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeJournalRequest true "Analysis payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/analyze [post]
func (j *JournalController) Analyze(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.AnalyzeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	analysis, err := j.recommender.AnalyzeJournal(c.Request.Context(), req.Content, req.Location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Analysis completed")
}
