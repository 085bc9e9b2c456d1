package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/artemkap/goblog/backend/internal/models"
	"github.com/artemkap/goblog/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errPermission = errors.New("permission denied")

// fakePostRepo is an in-memory PostRepository mirroring the Mongo
// implementation's matched/modified semantics.
type fakePostRepo struct {
	posts map[string]*models.Post
	order []string
	err   error
}

var _ repositories.PostRepository = (*fakePostRepo)(nil)

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	post.ID = primitive.NewObjectID()
	post.ViewsCount = 0
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Comments = []models.Comment{}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	cp := *post
	f.posts[post.ID.Hex()] = &cp
	f.order = append(f.order, post.ID.Hex())
	return nil
}

func (f *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Post, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.posts[id])
	}
	return out, nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) GetPostAndIncrementViews(_ context.Context, id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p.ViewsCount++
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Title = post.Title
	p.Text = post.Text
	p.ImageURL = post.ImageURL
	p.Tags = post.Tags
	p.UserID = post.UserID
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.posts, id)
	for i, pid := range f.order {
		if pid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePostRepo) AddComment(_ context.Context, postID string, comment *models.Comment) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Comments = append(p.Comments, *comment)
	return nil
}

func (f *fakePostRepo) RemoveComment(_ context.Context, postID, commentID string) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return repositories.ErrNotFound
	}
	kept := p.Comments[:0]
	removed := false
	for _, cm := range p.Comments {
		if cm.ID == commentID {
			removed = true
			continue
		}
		kept = append(kept, cm)
	}
	p.Comments = kept
	if !removed {
		return repositories.ErrNotFound
	}
	return nil
}

func (f *fakePostRepo) GetPostsByCommentID(_ context.Context, commentID string) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Post{}
	for _, id := range f.order {
		for _, cm := range f.posts[id].Comments {
			if cm.ID == commentID {
				out = append(out, *f.posts[id])
				break
			}
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	f.users[user.ID.Hex()] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := make(map[primitive.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id.Hex()]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

// fakeImageRemover records removed paths and can force a failure.
type fakeImageRemover struct {
	removed []string
	err     error
}

func (f *fakeImageRemover) Remove(imageURL string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, imageURL)
	return nil
}
