package repository

import (
	"context"
	"testing"

	"secretely/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Integration(t *testing.T) {
	repo := NewCommentRepository(testDB)
	posts := NewPostRepository(testDB)
	ctx := context.Background()

	author := uniqueUser("commenter")
	require.NoError(t, testDB.Create(author).Error)

	post := newSecretPost(&author.ID, true, "comment on this")
	require.NoError(t, posts.Create(ctx, post))

	t.Run("Create and ListByPost", func(t *testing.T) {
		first := &models.Comment{Text: "first", UserID: author.ID, PostID: post.ID}
		second := &models.Comment{Text: "second", UserID: author.ID, PostID: post.ID}
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		comments, err := repo.ListByPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Text)
		assert.Equal(t, "second", comments[1].Text)
		assert.Equal(t, author.ID, comments[0].UserID)
	})

	t.Run("Comment on missing post is invalid", func(t *testing.T) {
		err := repo.Create(ctx, &models.Comment{Text: "lost", UserID: author.ID, PostID: 999999})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInvalidRequest, appErr.Code)
	})

	t.Run("ListByPost empty when none", func(t *testing.T) {
		quiet := newSecretPost(&author.ID, true, "no comments here")
		require.NoError(t, posts.Create(ctx, quiet))

		comments, err := repo.ListByPost(ctx, quiet.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
