package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"secretely/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretPosting(t *testing.T) {
	app, _ := newTestApp(t)

	user, password := registerUser(t, app)
	token := issueToken(t, app, user.Email, password)

	t.Run("signed secret is attributed", func(t *testing.T) {
		req := authed(jsonRequest(http.MethodPost, "/posts/secrets/signed", SecretRequest{
			Text:     "signed secret",
			IsPublic: true,
		}), token)
		req.Header.Set("Accept-Language", "de-DE, en;q=0.8")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		require.NotNil(t, post.OwnerID)
		assert.Equal(t, user.ID, *post.OwnerID)
		assert.Equal(t, models.PostTypeSecret, post.Type)
		assert.Equal(t, "de-DE", post.Language)
		require.NotNil(t, post.Secret)
		assert.Equal(t, "signed secret", post.Secret.Text)
	})

	t.Run("signed secret requires a token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts/secrets/signed", SecretRequest{
			Text: "no token",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("anonymous secret has no owner even with a token", func(t *testing.T) {
		req := authed(jsonRequest(http.MethodPost, "/posts/secrets/anon", SecretRequest{
			Text:     "anonymous secret",
			IsPublic: true,
		}), token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Nil(t, post.OwnerID)
	})

	t.Run("absent language falls back to en", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts/secrets/anon", SecretRequest{
			Text:     "no language header",
			IsPublic: false,
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Equal(t, "en", post.Language)
	})

	t.Run("wildcard language falls back to en", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/posts/secrets/anon", SecretRequest{
			Text:     "wildcard language",
			IsPublic: false,
		})
		req.Header.Set("Accept-Language", "*")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Equal(t, "en", post.Language)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts/secrets/anon", SecretRequest{
			Text: "   ",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("public listing excludes private secrets", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/posts/public/secrets?limit=100", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var posts []models.Post
		decodeBody(t, resp, &posts)
		require.NotEmpty(t, posts)
		texts := make([]string, 0, len(posts))
		for _, p := range posts {
			assert.True(t, p.IsPublic)
			require.NotNil(t, p.Secret)
			texts = append(texts, p.Secret.Text)
		}
		assert.Contains(t, texts, "anonymous secret")
		assert.NotContains(t, texts, "no language header")
	})
}

func TestFriendsSecrets(t *testing.T) {
	app, _ := newTestApp(t)

	alice, alicePass := registerUser(t, app)
	bob, bobPass := registerUser(t, app)
	aliceToken := issueToken(t, app, alice.Email, alicePass)
	bobToken := issueToken(t, app, bob.Email, bobPass)

	// Bob posts a private signed secret.
	resp, err := app.Test(authed(jsonRequest(http.MethodPost, "/posts/secrets/signed", SecretRequest{
		Text:     "bob's private secret",
		IsPublic: false,
	}), bobToken))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("not visible before friendship", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodGet, "/posts/friends/secrets", nil), aliceToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var posts []models.Post
		decodeBody(t, resp, &posts)
		assert.Empty(t, posts)
	})

	t.Run("visible after acceptance", func(t *testing.T) {
		sendPath := fmt.Sprintf("/friends/%d", bob.ID)
		r, err := app.Test(authed(jsonRequest(http.MethodPost, sendPath, nil), aliceToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, r.StatusCode)
		r.Body.Close()

		acceptPath := fmt.Sprintf("/friends/%d/accept", alice.ID)
		r, err = app.Test(authed(jsonRequest(http.MethodPost, acceptPath, nil), bobToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusAccepted, r.StatusCode)
		r.Body.Close()

		resp, err := app.Test(authed(jsonRequest(http.MethodGet, "/posts/friends/secrets", nil), aliceToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()

		var posts []models.Post
		require.NoError(t, json.Unmarshal(body, &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "bob's private secret", posts[0].Secret.Text)

		// The author is identified by owner_id only; the user row (and its
		// email address) must never appear in the listing.
		require.NotNil(t, posts[0].OwnerID)
		assert.Equal(t, bob.ID, *posts[0].OwnerID)
		assert.NotContains(t, string(body), "email")
		assert.NotContains(t, string(body), bob.Email)
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/posts/friends/secrets", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestWYRPosting(t *testing.T) {
	app, _ := newTestApp(t)

	user, password := registerUser(t, app)
	token := issueToken(t, app, user.Email, password)

	t.Run("create and list without a token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts/wyrs", WYRRequest{
			OptionOne: "fight one horse-sized duck",
			OptionTwo: "fight a hundred duck-sized horses",
			IsPublic:  true,
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created models.Post
		decodeBody(t, resp, &created)
		assert.Equal(t, models.PostTypeWYR, created.Type)
		require.NotNil(t, created.WYR)
		assert.Nil(t, created.OwnerID)

		listResp, err := app.Test(jsonRequest(http.MethodGet, "/posts/wyrs?limit=100", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var posts []models.Post
		decodeBody(t, listResp, &posts)
		found := false
		for _, p := range posts {
			if p.ID == created.ID {
				found = true
				assert.Equal(t, "fight one horse-sized duck", p.WYR.OptionOne)
			}
		}
		assert.True(t, found)
	})

	t.Run("missing option is rejected", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPost, "/posts/wyrs", WYRRequest{
			OptionOne: "only one",
		}), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("token never attributes the post", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPost, "/posts/wyrs", WYRRequest{
			OptionOne: "a", OptionTwo: "b",
		}), token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created models.Post
		decodeBody(t, resp, &created)
		assert.Nil(t, created.OwnerID)
	})
}

func TestLikesAndComments(t *testing.T) {
	app, _ := newTestApp(t)

	user, password := registerUser(t, app)
	token := issueToken(t, app, user.Email, password)

	resp, err := app.Test(authed(jsonRequest(http.MethodPost, "/posts/secrets/signed", SecretRequest{
		Text:     "like me",
		IsPublic: true,
	}), token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post models.Post
	decodeBody(t, resp, &post)

	likePath := fmt.Sprintf("/posts/%d/likes", post.ID)
	commentPath := fmt.Sprintf("/posts/%d/comments", post.ID)

	t.Run("count starts at zero", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, likePath, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count LikeCountResponse
		decodeBody(t, resp, &count)
		assert.Zero(t, count.Count)
	})

	t.Run("like then count", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPut, likePath, nil), token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		countResp, err := app.Test(jsonRequest(http.MethodGet, likePath, nil))
		require.NoError(t, err)
		var count LikeCountResponse
		decodeBody(t, countResp, &count)
		assert.Equal(t, int64(1), count.Count)
	})

	t.Run("second like conflicts", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPut, likePath, nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("liking a missing post is not acceptable", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPut, "/posts/999999/likes", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	})

	t.Run("comment and list", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPost, commentPath, CommentRequest{
			Text: "first!",
		}), token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		listResp, err := app.Test(jsonRequest(http.MethodGet, commentPath, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		body, err := io.ReadAll(listResp.Body)
		require.NoError(t, err)
		listResp.Body.Close()

		var comments []models.Comment
		require.NoError(t, json.Unmarshal(body, &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, "first!", comments[0].Text)
		assert.Equal(t, user.ID, comments[0].UserID)
		assert.NotContains(t, string(body), "email")
	})

	t.Run("comment on missing post is not acceptable", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPost, "/posts/999999/comments", CommentRequest{
			Text: "void",
		}), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		resp, err := app.Test(authed(jsonRequest(http.MethodPost, commentPath, CommentRequest{}), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
