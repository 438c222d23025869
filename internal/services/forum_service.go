package services

import (
	"context"

	"github.com/google/uuid"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type ForumServiceInterface interface {
	CreateSpace(ctx context.Context, request request_models.CreateForumSpaceRequest) (*response_models.ForumSpaceResponse, error)
	ListSpaces(ctx context.Context) ([]response_models.ForumSpaceResponse, error)
	CreatePost(ctx context.Context, authorId uuid.UUID, request request_models.CreateForumPostRequest) (*response_models.ForumPostResponse, error)
	ListPosts(ctx context.Context, spaceId string, page, pageSize int) ([]response_models.ForumPostResponse, error)
	DeletePost(ctx context.Context, requesterId uuid.UUID, requesterRole, postId string) error
}

type forumService struct {
	repo repositories.ForumRepository
}

func NewForumService(repo repositories.ForumRepository) ForumServiceInterface {
	return &forumService{repo: repo}
}

func (f *forumService) CreateSpace(ctx context.Context, request request_models.CreateForumSpaceRequest) (*response_models.ForumSpaceResponse, error) {
	space := &db_models.ForumSpace{
		Name:        request.Name,
		Description: request.Description,
	}

	if err := f.repo.CreateSpace(ctx, space); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ForumSpaceResponse{
		ID:          space.ID.String(),
		Name:        space.Name,
		Description: space.Description,
	}, nil
}

func (f *forumService) ListSpaces(ctx context.Context) ([]response_models.ForumSpaceResponse, error) {
	spaces, err := f.repo.ListSpaces(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ForumSpaceResponse, 0, len(spaces))
	for _, space := range spaces {
		count, err := f.repo.CountPostsInSpace(ctx, space.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		responses = append(responses, response_models.ForumSpaceResponse{
			ID:          space.ID.String(),
			Name:        space.Name,
			Description: space.Description,
			PostCount:   count,
		})
	}
	return responses, nil
}

func (f *forumService) CreatePost(ctx context.Context, authorId uuid.UUID, request request_models.CreateForumPostRequest) (*response_models.ForumPostResponse, error) {
	space, err := f.repo.GetSpaceByID(ctx, request.SpaceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if space == nil {
		return nil, utils.ErrForumSpaceNotFound
	}

	post := &db_models.ForumPost{
		SpaceID:  space.ID,
		AuthorID: authorId,
		Title:    request.Title,
		Body:     request.Body,
	}

	if err := f.repo.CreatePost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toForumPostResponse(*post)
	return &resp, nil
}

func (f *forumService) ListPosts(ctx context.Context, spaceId string, page, pageSize int) ([]response_models.ForumPostResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	space, err := f.repo.GetSpaceByID(ctx, spaceId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if space == nil {
		return nil, utils.ErrForumSpaceNotFound
	}

	posts, err := f.repo.ListPostsBySpace(ctx, spaceId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ForumPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toForumPostResponse(post))
	}
	return responses, nil
}

// DeletePost allows the author or an admin to remove a post.
func (f *forumService) DeletePost(ctx context.Context, requesterId uuid.UUID, requesterRole, postId string) error {
	post, err := f.repo.GetPostByID(ctx, postId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrForumPostNotFound
	}

	if post.AuthorID != requesterId && requesterRole != "admin" {
		return utils.ErrForumPostNotFound
	}

	if err := f.repo.DeletePost(ctx, postId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toForumPostResponse(post db_models.ForumPost) response_models.ForumPostResponse {
	return response_models.ForumPostResponse{
		ID:        post.ID.String(),
		SpaceID:   post.SpaceID.String(),
		AuthorID:  post.AuthorID.String(),
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: utils.FormatRFC3339PT(utils.FromUnixSecondsPT(post.CreatedAt)),
	}
}
