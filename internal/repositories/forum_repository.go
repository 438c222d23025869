package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

// ForumRepository is the explicit store for forum content. All reads go
// through here; there is no module-level cache of spaces or posts.
type ForumRepository interface {
	CreateSpace(ctx context.Context, space *db_models.ForumSpace) error
	GetSpaceByID(ctx context.Context, id string) (*db_models.ForumSpace, error)
	ListSpaces(ctx context.Context) ([]db_models.ForumSpace, error)
	CountPostsInSpace(ctx context.Context, spaceId string) (int64, error)

	CreatePost(ctx context.Context, post *db_models.ForumPost) error
	GetPostByID(ctx context.Context, id string) (*db_models.ForumPost, error)
	ListPostsBySpace(ctx context.Context, spaceId string, page, pageSize int) ([]db_models.ForumPost, error)
	DeletePost(ctx context.Context, id string) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (f *forumRepository) CreateSpace(ctx context.Context, space *db_models.ForumSpace) error {
	return f.db.WithContext(ctx).Create(space).Error
}

func (f *forumRepository) GetSpaceByID(ctx context.Context, id string) (*db_models.ForumSpace, error) {
	var space db_models.ForumSpace
	err := f.db.WithContext(ctx).First(&space, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &space, nil
}

func (f *forumRepository) ListSpaces(ctx context.Context) ([]db_models.ForumSpace, error) {
	var spaces []db_models.ForumSpace
	err := f.db.WithContext(ctx).Order("name ASC").Find(&spaces).Error
	if err != nil {
		return nil, err
	}
	return spaces, nil
}

func (f *forumRepository) CountPostsInSpace(ctx context.Context, spaceId string) (int64, error) {
	var count int64
	err := f.db.WithContext(ctx).
		Model(&db_models.ForumPost{}).
		Where("space_id = ?", spaceId).
		Count(&count).Error
	return count, err
}

func (f *forumRepository) CreatePost(ctx context.Context, post *db_models.ForumPost) error {
	return f.db.WithContext(ctx).Create(post).Error
}

func (f *forumRepository) GetPostByID(ctx context.Context, id string) (*db_models.ForumPost, error) {
	var post db_models.ForumPost
	err := f.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (f *forumRepository) ListPostsBySpace(ctx context.Context, spaceId string, page, pageSize int) ([]db_models.ForumPost, error) {
	var posts []db_models.ForumPost
	err := f.db.WithContext(ctx).
		Where("space_id = ?", spaceId).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (f *forumRepository) DeletePost(ctx context.Context, id string) error {
	return f.db.WithContext(ctx).Delete(&db_models.ForumPost{}, "id = ?", id).Error
}
