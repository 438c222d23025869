package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retreatly/internal/models/request_models"
	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type ForumController struct {
	forumService services.ForumServiceInterface
}

func NewForumController(forumService services.ForumServiceInterface) *ForumController {
	return &ForumController{
		forumService: forumService,
	}
}

func (f *ForumController) CreateSpace(c *gin.Context) {
	var req request_models.CreateForumSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	space, err := f.forumService.CreateSpace(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, space, "Space created")
}

func (f *ForumController) ListSpaces(c *gin.Context) {
	spaces, err := f.forumService.ListSpaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, spaces, "Spaces fetched")
}

func (f *ForumController) CreatePost(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := f.forumService.CreatePost(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created")
}

func (f *ForumController) ListPosts(c *gin.Context) {
	spaceId := c.Param("spaceId")
	if spaceId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Space ID is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	posts, err := f.forumService.ListPosts(c.Request.Context(), spaceId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched")
}

func (f *ForumController) DeletePost(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	postId := c.Param("id")
	if postId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	role := c.GetString("Role")

	if err := f.forumService.DeletePost(c.Request.Context(), userId, role, postId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted")
}
