package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/model"
)

func seedFeed(t *testing.T, env *testEnv, author *model.User, n int) {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		env.createPost(t, author.ID, fmt.Sprintf("post %02d", i), base.Add(time.Duration(i)*time.Minute))
	}
}

func TestHomeFeedPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	seedFeed(t, env, author, 13)

	t.Run("first page holds ten newest", func(t *testing.T) {
		feed, err := env.feedSvc.HomeFeed(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, feed.Items, 10)
		assert.Equal(t, 1, feed.Page)
		assert.Equal(t, 2, feed.PageCount)
		assert.Equal(t, int64(13), feed.TotalCount)
		assert.Equal(t, "post 12", feed.Items[0].Text)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		feed, err := env.feedSvc.HomeFeed(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, feed.Items, 3)
		assert.Equal(t, "post 00", feed.Items[2].Text)
	})

	t.Run("page past the end clamps to last", func(t *testing.T) {
		feed, err := env.feedSvc.HomeFeed(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, 2, feed.Page)
		assert.Len(t, feed.Items, 3)
	})

	t.Run("empty feed has one empty page", func(t *testing.T) {
		empty := newTestEnv(t)
		feed, err := empty.feedSvc.HomeFeed(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, feed.Items)
		assert.Equal(t, 1, feed.PageCount)
	})
}

func TestHomeFeedPageCaching(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	seedFeed(t, env, author, 3)

	payload, hit, err := env.feedSvc.HomeFeedPage(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	var feed dto.FeedPageDTO
	require.NoError(t, json.Unmarshal(payload, &feed))
	assert.Len(t, feed.Items, 3)

	// Posts are gone but the snapshot survives until the entry expires.
	require.NoError(t, env.db.Where("1 = 1").Delete(&model.Post{}).Error)

	stale, hit, err := env.feedSvc.HomeFeedPage(ctx, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, string(payload), string(stale))

	env.mr.FastForward(21 * time.Second)

	fresh, hit, err := env.feedSvc.HomeFeedPage(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, json.Unmarshal(fresh, &feed))
	assert.Empty(t, feed.Items)
}

func TestClearHomeFeedCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	seedFeed(t, env, author, 2)

	_, _, err := env.feedSvc.HomeFeedPage(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, env.db.Where("1 = 1").Delete(&model.Post{}).Error)
	require.NoError(t, env.feedSvc.ClearHomeFeedCache(ctx))

	payload, hit, err := env.feedSvc.HomeFeedPage(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	var feed dto.FeedPageDTO
	require.NoError(t, json.Unmarshal(payload, &feed))
	assert.Empty(t, feed.Items)
}

func TestGroupFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.createUser(t, "leo")
	cats := env.createGroup(t, "cats")

	now := time.Now()
	env.createGroupPost(t, author.ID, cats.ID, "in group", now)
	env.createPost(t, author.ID, "ungrouped", now)

	feed, err := env.feedSvc.GroupFeed(ctx, "cats", 1)
	require.NoError(t, err)
	require.NotNil(t, feed.Group)
	assert.Equal(t, "cats", feed.Group.Slug)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "in group", feed.Items[0].Text)

	_, err = env.feedSvc.GroupFeed(ctx, "nope", 1)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAuthorFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leo := env.createUser(t, "leo")
	maria := env.createUser(t, "maria")

	now := time.Now()
	env.createPost(t, leo.ID, "leo's", now)
	env.createPost(t, maria.ID, "maria's", now)

	feed, err := env.feedSvc.AuthorFeed(ctx, "leo", 1)
	require.NoError(t, err)
	assert.Equal(t, "leo", feed.Author.Username)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "leo's", feed.Items[0].Text)

	_, err = env.feedSvc.AuthorFeed(ctx, "ghost", 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowingFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reader := env.createUser(t, "reader")
	followed := env.createUser(t, "followed")
	stranger := env.createUser(t, "stranger")

	now := time.Now()
	env.createPost(t, followed.ID, "from followed", now)
	env.createPost(t, stranger.ID, "from stranger", now)

	t.Run("following nobody yields empty page", func(t *testing.T) {
		feed, err := env.feedSvc.FollowingFeed(ctx, reader.ID, 1)
		require.NoError(t, err)
		assert.Empty(t, feed.Items)
		assert.Equal(t, 1, feed.Page)
		assert.Equal(t, int64(0), feed.TotalCount)
	})

	t.Run("only followed authors appear", func(t *testing.T) {
		require.NoError(t, env.followSvc.Follow(ctx, reader.ID, "followed"))

		feed, err := env.feedSvc.FollowingFeed(ctx, reader.ID, 1)
		require.NoError(t, err)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "from followed", feed.Items[0].Text)
	})

	t.Run("unfollowing removes the author immediately", func(t *testing.T) {
		require.NoError(t, env.followSvc.Unfollow(ctx, reader.ID, "followed"))

		feed, err := env.feedSvc.FollowingFeed(ctx, reader.ID, 1)
		require.NoError(t, err)
		assert.Empty(t, feed.Items)
	})
}
