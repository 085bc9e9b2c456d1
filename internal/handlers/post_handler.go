package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/artemkap/goblog/backend/internal/models"
	"github.com/artemkap/goblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageRemover deletes the file backing an image access path. Best-effort:
// an already-absent file is not an error.
type ImageRemover interface {
	Remove(imageURL string) error
}

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository // To resolve post and comment authors on read
	images         ImageRemover                // nil when uploads live in object storage
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, images ImageRemover) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		images:         images,
	}
}

// GetPosts retrieves all posts with their authors resolved
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		log.Printf("Failed to get all posts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get all posts")
	}

	if err := resolveAuthors(c.Request().Context(), h.userRepository, posts); err != nil {
		log.Printf("Failed to resolve post authors: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get all posts")
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a single post, atomically incrementing its view counter
func (h *PostHandler) GetPost(c echo.Context) error {
	postID := c.Param("id")

	post, err := h.postRepository.GetPostAndIncrementViews(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		log.Printf("Failed to get post %s: %v", postID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post")
	}

	posts := []models.Post{*post}
	if err := resolveAuthors(c.Request().Context(), h.userRepository, posts); err != nil {
		log.Printf("Failed to resolve post authors: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post")
	}

	return c.JSON(http.StatusOK, posts[0])
}

// GetTags returns one tag list per post
func (h *PostHandler) GetTags(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		log.Printf("Failed to get tags: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get tags")
	}

	tags := make([][]string, 0, len(posts))
	for _, p := range posts {
		if p.Tags == nil {
			tags = append(tags, []string{})
			continue
		}
		tags = append(tags, p.Tags)
	}

	return c.JSON(http.StatusOK, tags)
}

// CreatePost creates a new post authored by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req models.CreatePostRequest
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

	post := &models.Post{
		Title:    req.Title,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
		UserID:   authorID,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		log.Printf("Failed to create post: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusOK, post)
}

// UpdatePost replaces the mutable fields of an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	var req models.UpdatePostRequest
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

	post := &models.Post{
		Title:    req.Title,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
		UserID:   authorID,
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, post); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		log.Printf("Failed to update post %s: %v", postID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update post")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeletePost deletes a post and, best-effort, its uploaded image file. The
// file removal is awaited before the response so the outcome is
// deterministic; a file that is already gone is not an error.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		log.Printf("Failed to delete post %s: %v", postID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}

	if post.ImageURL != "" && h.images != nil {
		if err := h.images.Remove(post.ImageURL); err != nil {
			log.Printf("Failed to remove image for post %s: %v", postID, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
		}
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		log.Printf("Failed to delete post %s: %v", postID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// resolveAuthors fetches every referenced user in one query and attaches
// them to the posts and their embedded comments.
func resolveAuthors(ctx context.Context, userRepo repositories.UserRepository, posts []models.Post) error {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
		for _, cm := range p.Comments {
			if _, ok := seen[cm.UserID]; !ok {
				seen[cm.UserID] = struct{}{}
				ids = append(ids, cm.UserID)
			}
		}
	}

	users, err := userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range posts {
		if u, ok := users[posts[i].UserID]; ok {
			author := u
			posts[i].User = &author
		}
		for j := range posts[i].Comments {
			if u, ok := users[posts[i].Comments[j].UserID]; ok {
				commenter := u
				posts[i].Comments[j].User = &commenter
			}
		}
	}
	return nil
}
