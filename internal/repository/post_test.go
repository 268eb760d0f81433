package repository

import (
	"context"
	"testing"

	"secretely/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecretPost(ownerID *uint, public bool, text string) *models.Post {
	return &models.Post{
		IsPublic: public,
		ClientIP: "203.0.113.7",
		Language: "en",
		Type:     models.PostTypeSecret,
		OwnerID:  ownerID,
		Secret:   &models.Secret{Text: text},
	}
}

func TestPostRepository_Integration(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	owner := uniqueUser("post_owner")
	require.NoError(t, testDB.Create(owner).Error)

	t.Run("Create secret writes envelope and extension atomically", func(t *testing.T) {
		post := newSecretPost(&owner.ID, true, "I still use tabs")
		require.NoError(t, repo.Create(ctx, post))
		require.NotZero(t, post.ID)

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Secret)
		assert.Equal(t, "I still use tabs", got.Secret.Text)
		assert.Equal(t, post.ID, got.Secret.PostID)
	})

	t.Run("Create anonymous secret has no owner", func(t *testing.T) {
		post := newSecretPost(nil, true, "anonymous confession")
		require.NoError(t, repo.Create(ctx, post))

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Nil(t, got.OwnerID)
	})

	t.Run("Create with dangling owner is invalid", func(t *testing.T) {
		bogus := uint(999999)
		err := repo.Create(ctx, newSecretPost(&bogus, true, "x"))
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInvalidRequest, appErr.Code)
	})

	t.Run("ListPublicSecrets excludes private ones", func(t *testing.T) {
		private := newSecretPost(&owner.ID, false, "private secret")
		require.NoError(t, repo.Create(ctx, private))

		posts, err := repo.ListPublicSecrets(ctx, 100, 0)
		require.NoError(t, err)
		for _, p := range posts {
			assert.True(t, p.IsPublic)
			assert.Equal(t, models.PostTypeSecret, p.Type)
			require.NotNil(t, p.Secret)
			assert.NotEqual(t, "private secret", p.Secret.Text)
		}
	})

	t.Run("ListSecretsByOwners", func(t *testing.T) {
		other := uniqueUser("post_other")
		require.NoError(t, testDB.Create(other).Error)
		require.NoError(t, repo.Create(ctx, newSecretPost(&other.ID, false, "friend-only secret")))

		posts, err := repo.ListSecretsByOwners(ctx, []uint{other.ID}, 10, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "friend-only secret", posts[0].Secret.Text)
		// The author is carried as an id only; the user row is not loaded.
		require.NotNil(t, posts[0].OwnerID)
		assert.Equal(t, other.ID, *posts[0].OwnerID)
		assert.Nil(t, posts[0].Owner)

		empty, err := repo.ListSecretsByOwners(ctx, nil, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("Create and list WYRs", func(t *testing.T) {
		post := &models.Post{
			IsPublic: true,
			ClientIP: "203.0.113.9",
			Language: "de",
			Type:     models.PostTypeWYR,
			OwnerID:  &owner.ID,
			WYR:      &models.WYR{OptionOne: "fly", OptionTwo: "teleport"},
		}
		require.NoError(t, repo.Create(ctx, post))

		posts, err := repo.ListWYRs(ctx, 100, 0)
		require.NoError(t, err)
		require.NotEmpty(t, posts)
		found := false
		for _, p := range posts {
			assert.Equal(t, models.PostTypeWYR, p.Type)
			require.NotNil(t, p.WYR)
			if p.ID == post.ID {
				found = true
				assert.Equal(t, "fly", p.WYR.OptionOne)
				assert.Equal(t, "teleport", p.WYR.OptionTwo)
			}
		}
		assert.True(t, found)
	})
}

func TestPostRepository_Likes(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	owner := uniqueUser("like_owner")
	liker := uniqueUser("liker")
	require.NoError(t, testDB.Create(owner).Error)
	require.NoError(t, testDB.Create(liker).Error)

	post := newSecretPost(&owner.ID, true, "likeable")
	require.NoError(t, repo.Create(ctx, post))

	t.Run("CountLikes zero when none", func(t *testing.T) {
		count, err := repo.CountLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("AddLike and count", func(t *testing.T) {
		require.NoError(t, repo.AddLike(ctx, &models.Like{UserID: liker.ID, PostID: post.ID}))

		count, err := repo.CountLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Second like by same user conflicts", func(t *testing.T) {
		err := repo.AddLike(ctx, &models.Like{UserID: liker.ID, PostID: post.ID})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("Like on missing post is invalid", func(t *testing.T) {
		err := repo.AddLike(ctx, &models.Like{UserID: liker.ID, PostID: 999999})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInvalidRequest, appErr.Code)
	})
}
