package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hariyo-app/hariyo/api"
	"github.com/hariyo-app/hariyo/board/application"
	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/i18n"
)

// ListPosts returns all posts sorted by recency, with rendered
// descriptions and the viewer's liked flags.
func (a *API) ListPosts(c *gin.Context) {
	views, err := a.posts.ListPostViews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	posts := make([]api.Post, 0, len(views))
	for _, v := range views {
		posts = append(posts, toAPIPost(v))
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost appends a new post. An empty title is rejected with a
// localized warning and the collection is unchanged.
func (a *API) CreatePost(c *gin.Context) {
	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := a.printer(c)
	post, first, err := a.posts.CreatePost(c.Request.Context(), proto.Title, proto.Description, proto.Image)
	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"warning": p.Sprintf(i18n.MsgEmptyPostTitle)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	toast := p.Sprintf(i18n.MsgPostCreated)
	if first {
		toast = p.Sprintf(i18n.MsgFirstPost)
	}

	c.JSON(http.StatusCreated, gin.H{
		"post":      toAPIPost(application.PostView{Post: post}),
		"toast":     toast,
		"celebrate": first,
	})
}

// ToggleLike flips the viewer's like for a post. A vanished post id is a
// quiet no-op.
func (a *API) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, liked, err := a.posts.ToggleLike(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":  toAPIPost(application.PostView{Post: *post, Liked: liked}),
		"liked": liked,
	})
}

func toAPIPost(v application.PostView) api.Post {
	return api.Post{
		ID:              v.Post.ID,
		Title:           v.Post.Title,
		Description:     v.Post.Description,
		DescriptionHTML: v.DescriptionHTML,
		Snippet:         v.Snippet,
		Image:           v.Post.Image,
		Likes:           v.Post.Likes,
		CreatedAt:       v.Post.CreatedAt,
		Author:          v.Post.Author,
		Liked:           v.Liked,
	}
}
