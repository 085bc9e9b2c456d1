package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/artemkap/goblog/backend/internal/models"
	"github.com/artemkap/goblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler handles HTTP requests related to embedded post comments
type CommentHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository // To resolve comment authors on read
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// GetComments returns one comment list per post, authors resolved
func (h *CommentHandler) GetComments(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		log.Printf("Failed to get comments: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get comments")
	}

	if err := resolveAuthors(c.Request().Context(), h.userRepository, posts); err != nil {
		log.Printf("Failed to resolve comment authors: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get comments")
	}

	comments := make([][]models.Comment, 0, len(posts))
	for _, p := range posts {
		if p.Comments == nil {
			comments = append(comments, []models.Comment{})
			continue
		}
		comments = append(comments, p.Comments)
	}

	return c.JSON(http.StatusOK, comments)
}

// AddComment atomically appends a comment to a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	comment := &models.Comment{
		ID:      uuid.NewString(),
		Text:    req.Text,
		Created: time.Now(),
		UserID:  authorID,
	}

	if err := h.postRepository.AddComment(c.Request().Context(), req.PostID, comment); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		log.Printf("Failed to add comment to post %s: %v", req.PostID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add comment")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteComment atomically pulls a comment from a post
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	postID := c.Param("id")

	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postRepository.RemoveComment(c.Request().Context(), postID, req.CommentID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		log.Printf("Failed to delete comment %s from post %s: %v", req.CommentID, postID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete comment")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// PostsByComment returns every post whose comments contain the given id
func (h *CommentHandler) PostsByComment(c echo.Context) error {
	var req models.PostsByCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	posts, err := h.postRepository.GetPostsByCommentID(c.Request().Context(), req.CommentID)
	if err != nil {
		log.Printf("Failed to get posts by comment %s: %v", req.CommentID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post")
	}

	return c.JSON(http.StatusOK, posts)
}
