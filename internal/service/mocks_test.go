package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fotogram/internal/model"
)

// Function-field mocks: each test configures only the calls it cares
// about, and unconfigured calls return zero values or NotFound.

type mockUserRepository struct {
	createFn            func(ctx context.Context, user *model.User) error
	getByIDFn           func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn     func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn  func(ctx context.Context, username string) (bool, error)
	existsFn            func(ctx context.Context, id int64) (bool, error)
	listFn              func(ctx context.Context, offset, limit int) ([]model.User, error)
	getIDsByUsernamesFn func(ctx context.Context, usernames []string) ([]int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, offset, limit)
	}
	return []model.User{}, nil
}

func (m *mockUserRepository) GetIDsByUsernames(ctx context.Context, usernames []string) ([]int64, error) {
	if m.getIDsByUsernamesFn != nil {
		return m.getIDsByUsernamesFn(ctx, usernames)
	}
	return []int64{}, nil
}

type mockFollowRepository struct {
	createFn        func(ctx context.Context, followerID, followeeID int64) (bool, error)
	deleteFn        func(ctx context.Context, followerID, followeeID int64) error
	listFollowersFn func(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error)
	listFollowingFn func(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followeeID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followeeID)
	}
	return nil
}

func (m *mockFollowRepository) ListFollowers(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error) {
	if m.listFollowersFn != nil {
		return m.listFollowersFn(ctx, userID, offset, limit)
	}
	return []model.UserSummary{}, nil
}

func (m *mockFollowRepository) ListFollowing(ctx context.Context, userID int64, offset, limit int) ([]model.UserSummary, error) {
	if m.listFollowingFn != nil {
		return m.listFollowingFn(ctx, userID, offset, limit)
	}
	return []model.UserSummary{}, nil
}

type replaceTaggedUsersCall struct {
	PostID  int64
	UserIDs []int64
}

type replaceTagsCall struct {
	PostID int64
	TagIDs []int64
}

type mockPostRepository struct {
	insertFn             func(ctx context.Context, tx *sqlx.Tx, authorID int64, description *string, imageURL, imageKey string) (*model.Post, error)
	updateDescriptionFn  func(ctx context.Context, tx *sqlx.Tx, postID int64, description string) error
	getByIDFn            func(ctx context.Context, postID int64) (*model.Post, error)
	getTagsFn            func(ctx context.Context, postID int64) ([]string, error)
	getTaggedUsersFn     func(ctx context.Context, postID int64) ([]model.UserSummary, error)
	existsFn             func(ctx context.Context, postID int64) (bool, error)
	listFeedFn           func(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	listFollowingPostsFn func(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	listFollowerPostsFn  func(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)

	replaceTagsCalls        []replaceTagsCall
	replaceTaggedUsersCalls []replaceTaggedUsersCall
}

func (m *mockPostRepository) Insert(ctx context.Context, tx *sqlx.Tx, authorID int64, description *string, imageURL, imageKey string) (*model.Post, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, tx, authorID, description, imageURL, imageKey)
	}
	return &model.Post{ID: 1, AuthorID: authorID, Description: description, ImageURL: imageURL, ImageKey: imageKey}, nil
}

func (m *mockPostRepository) UpdateDescription(ctx context.Context, tx *sqlx.Tx, postID int64, description string) error {
	if m.updateDescriptionFn != nil {
		return m.updateDescriptionFn(ctx, tx, postID, description)
	}
	return nil
}

func (m *mockPostRepository) ReplaceTags(ctx context.Context, tx *sqlx.Tx, postID int64, tagIDs []int64) error {
	m.replaceTagsCalls = append(m.replaceTagsCalls, replaceTagsCall{PostID: postID, TagIDs: tagIDs})
	return nil
}

func (m *mockPostRepository) ReplaceTaggedUsers(ctx context.Context, tx *sqlx.Tx, postID int64, userIDs []int64) error {
	m.replaceTaggedUsersCalls = append(m.replaceTaggedUsersCalls, replaceTaggedUsersCall{PostID: postID, UserIDs: userIDs})
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) GetTags(ctx context.Context, postID int64) ([]string, error) {
	if m.getTagsFn != nil {
		return m.getTagsFn(ctx, postID)
	}
	return []string{}, nil
}

func (m *mockPostRepository) GetTaggedUsers(ctx context.Context, postID int64) ([]model.UserSummary, error) {
	if m.getTaggedUsersFn != nil {
		return m.getTaggedUsersFn(ctx, postID)
	}
	return []model.UserSummary{}, nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID)
	}
	return false, nil
}

func (m *mockPostRepository) ListFeed(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, userID, offset, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListFollowingPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	if m.listFollowingPostsFn != nil {
		return m.listFollowingPostsFn(ctx, userID, offset, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListFollowerPosts(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	if m.listFollowerPostsFn != nil {
		return m.listFollowerPostsFn(ctx, userID, offset, limit)
	}
	return []model.Post{}, nil
}

type mockTagRepository struct {
	ensureByTextFn func(ctx context.Context, tx *sqlx.Tx, texts []string) ([]int64, error)
}

func (m *mockTagRepository) EnsureByText(ctx context.Context, tx *sqlx.Tx, texts []string) ([]int64, error) {
	if m.ensureByTextFn != nil {
		return m.ensureByTextFn(ctx, tx, texts)
	}
	ids := make([]int64, len(texts))
	for i := range texts {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

type likeCreateCall struct {
	UserID int64
	PostID int64
}

type mockLikeRepository struct {
	createFn     func(ctx context.Context, userID, postID int64) (bool, error)
	listByPostFn func(ctx context.Context, postID int64) ([]model.Like, error)

	createCalls []likeCreateCall
}

func (m *mockLikeRepository) Create(ctx context.Context, userID, postID int64) (bool, error) {
	m.createCalls = append(m.createCalls, likeCreateCall{UserID: userID, PostID: postID})
	if m.createFn != nil {
		return m.createFn(ctx, userID, postID)
	}
	return true, nil
}

func (m *mockLikeRepository) ListByPost(ctx context.Context, postID int64) ([]model.Like, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return []model.Like{}, nil
}

type mockCommentRepository struct {
	createFn     func(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error)
	listByPostFn func(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, authorID, text)
	}
	return &model.Comment{ID: 1, PostID: postID, AuthorID: authorID, Comment: text}, nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID, offset, limit)
	}
	return []model.Comment{}, nil
}

type mockUploader struct {
	uploadFn func(ctx context.Context, dataURI string) (*UploadResult, error)
	deleteFn func(ctx context.Context, key string) error

	uploadCalls int
	deleteCalls []string
}

func (m *mockUploader) Upload(ctx context.Context, dataURI string) (*UploadResult, error) {
	m.uploadCalls++
	if m.uploadFn != nil {
		return m.uploadFn(ctx, dataURI)
	}
	return &UploadResult{URL: "https://cdn.example/posts/test.jpg", Key: "posts/test.jpg"}, nil
}

func (m *mockUploader) Delete(ctx context.Context, key string) error {
	m.deleteCalls = append(m.deleteCalls, key)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}
