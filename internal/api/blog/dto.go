package blogs

import (
	"blogapi/internal/entity"
	"time"
)

type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	AuthorID    string `json:"authorId" validate:"required,uuid"`
}

// UpdateBlogRequest only touches the fields that are present in the payload.
type UpdateBlogRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
	AuthorID    *string `json:"authorId" validate:"omitempty,uuid"`
}

type LikerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BlogResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	AuthorID    *string         `json:"authorId"`
	AuthorName  *string         `json:"authorName"`
	LikesCount  int             `json:"likesCount"`
	LikedBy     []LikerResponse `json:"likedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewBlogResponse attaches the computed likesCount to the blog and its likers.
func NewBlogResponse(blog entity.Blog) BlogResponse {
	likedBy := make([]LikerResponse, 0, len(blog.LikedBy))
	for _, liker := range blog.LikedBy {
		likedBy = append(likedBy, LikerResponse{ID: liker.ID, Name: liker.Name})
	}

	return BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		Status:      string(blog.Status),
		AuthorID:    blog.AuthorID,
		AuthorName:  blog.AuthorName,
		LikesCount:  len(likedBy),
		LikedBy:     likedBy,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}

func NewBlogListResponse(list []entity.Blog) []BlogResponse {
	res := make([]BlogResponse, 0, len(list))
	for _, blog := range list {
		res = append(res, NewBlogResponse(blog))
	}
	return res
}
