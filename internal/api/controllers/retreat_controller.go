package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retreatly/internal/models/request_models"
	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type RetreatController struct {
	retreatService services.RetreatServiceInterface
}

func NewRetreatController(retreatService services.RetreatServiceInterface) *RetreatController {
	return &RetreatController{
		retreatService: retreatService,
	}
}

// CreateRetreat godoc
// @Summary Create a retreat listing
// @Tags Retreats
// @Accept json
// @Produce json
// @Param request body request_models.CreateRetreatRequest true "Retreat payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /retreats [post]
func (r *RetreatController) CreateRetreat(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateRetreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	retreat, err := r.retreatService.CreateRetreat(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat created successfully")
}

func (r *RetreatController) GetRetreatById(c *gin.Context) {
	retreatId := c.Param("id")
	if retreatId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Retreat ID is required")
		return
	}

	retreat, err := r.retreatService.GetRetreatDetail(c.Request.Context(), retreatId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreat, "Retreat fetched successfully")
}

func (r *RetreatController) ListRetreats(c *gin.Context) {
	category := c.Query("category")

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

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

	retreats, err := r.retreatService.ListRetreats(c.Request.Context(), category, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, retreats, "Retreats fetched successfully")
}

// SearchRetreats godoc
// @Summary Semantic search over retreat listings
// @Tags Retreats
// @Accept json
// @Produce json
// @Param request body request_models.RetreatSearchRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Router /retreats/search [post]
func (r *RetreatController) SearchRetreats(c *gin.Context) {
	var req request_models.RetreatSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	results, err := r.retreatService.SearchRetreats(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Search completed successfully")
}
