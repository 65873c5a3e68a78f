package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilia-Pringless/YaTube/internal/model"
)

func TestCreateFollowIsIdempotent(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	reader := seedUser(t, db, "reader")
	author := seedUser(t, db, "author")

	edge := &model.Follow{UserID: reader.ID, AuthorID: author.ID}
	require.NoError(t, repo.CreateFollow(ctx, edge))
	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{UserID: reader.ID, AuthorID: author.ID}))

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteFollowAbsentIsNoop(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepo(db)

	assert.NoError(t, repo.DeleteFollow(context.Background(), 1, 2))
}

func TestGetFollowedAuthorIDs(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	reader := seedUser(t, db, "reader")
	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	seedUser(t, db, "ignored")

	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{UserID: reader.ID, AuthorID: a.ID}))
	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{UserID: reader.ID, AuthorID: b.ID}))

	ids, err := repo.GetFollowedAuthorIDs(ctx, reader.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{a.ID, b.ID}, ids)

	none, err := repo.GetFollowedAuthorIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetFollow(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	reader := seedUser(t, db, "reader")
	author := seedUser(t, db, "author")

	got, err := repo.GetFollow(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{UserID: reader.ID, AuthorID: author.ID}))

	got, err = repo.GetFollow(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
