package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
)

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")

	t.Run("blank text persists nothing", func(t *testing.T) {
		_, err := env.postSvc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Text: "   \n\t "})
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.EqualError(t, err, "empty text")
		assert.Equal(t, int64(0), env.postCount(t))
	})

	t.Run("unresolvable group persists nothing", func(t *testing.T) {
		missing := uint64(404)
		_, err := env.postSvc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Text: "hi", GroupID: &missing})
		assert.ErrorIs(t, err, ErrInvalidGroup)
		assert.EqualError(t, err, "invalid group")
		assert.Equal(t, int64(0), env.postCount(t))
	})

	t.Run("valid input creates the post", func(t *testing.T) {
		group := env.createGroup(t, "cats")
		post, err := env.postSvc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Text: "hello", GroupID: &group.ID})
		require.NoError(t, err)
		assert.Equal(t, "hello", post.Text)
		assert.Equal(t, "leo", post.Author.Username)
		require.NotNil(t, post.Group)
		assert.Equal(t, "cats", post.Group.Slug)
	})
}

func TestUpdatePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	other := env.createUser(t, "maria")
	post := env.createPost(t, author.ID, "original", time.Now())

	t.Run("non-author is rejected and nothing changes", func(t *testing.T) {
		_, err := env.postSvc.UpdatePost(ctx, other.ID, post.ID, &dto.PostBaseDTO{Text: "hijacked"})
		assert.ErrorIs(t, err, ErrNotPostAuthor)

		detail, err := env.postSvc.GetPostDetail(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", detail.Text)
	})

	t.Run("author edit keeps authorship", func(t *testing.T) {
		updated, err := env.postSvc.UpdatePost(ctx, author.ID, post.ID, &dto.PostBaseDTO{Text: "edited"})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Text)
		assert.Equal(t, author.ID, updated.Author.ID)
	})

	t.Run("edit is validated like creation", func(t *testing.T) {
		_, err := env.postSvc.UpdatePost(ctx, author.ID, post.ID, &dto.PostBaseDTO{Text: " "})
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := env.postSvc.UpdatePost(ctx, author.ID, 9999, &dto.PostBaseDTO{Text: "x"})
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	other := env.createUser(t, "maria")
	post := env.createPost(t, author.ID, "to delete", time.Now())

	err := env.postSvc.DeletePost(ctx, other.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotPostAuthor)
	assert.Equal(t, int64(1), env.postCount(t))

	require.NoError(t, env.postSvc.DeletePost(ctx, author.ID, post.ID))
	assert.Equal(t, int64(0), env.postCount(t))

	err = env.postSvc.DeletePost(ctx, author.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPostDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	commenter := env.createUser(t, "maria")
	post := env.createPost(t, author.ID, "discussed", time.Now())

	_, err := env.commentSvc.CreateComment(ctx, commenter.ID, post.ID, &dto.CommentBaseDTO{Text: "nice"})
	require.NoError(t, err)

	detail, err := env.postSvc.GetPostDetail(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "discussed", detail.Text)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice", detail.Comments[0].Text)
	assert.Equal(t, "maria", detail.Comments[0].Author.Username)

	_, err = env.postSvc.GetPostDetail(ctx, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
