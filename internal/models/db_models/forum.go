package db_models

import "github.com/google/uuid"

type ForumSpace struct {
	BaseModel
	Name        string `gorm:"unique"`
	Description string

	Posts []ForumPost `gorm:"foreignKey:SpaceID"`
}

type ForumPost struct {
	BaseModel
	SpaceID  uuid.UUID
	AuthorID uuid.UUID
	Title    string
	Body     string
}
