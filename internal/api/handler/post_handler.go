package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/metrics"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create publishes a post. Accepts multipart form data: text and body fields
// plus an optional image file uploaded to object storage first.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  domain.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input := ports.CreatePostInput{
		UserID: user.ID,
		Text:   c.FormValue("text"),
		Body:   c.FormValue("body"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
		}
		defer src.Close()
		input.Image = &ports.ImageUpload{
			Content:     src,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	post, err := h.postService.CreatePost(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// FriendFeed lists posts authored by the caller's friends, newest first.
//
// @Summary      Friend feed
// @Tags         posts
// @Produce      json
// @Success      200  {array}  ports.PostView
// @Router       /posts/friend-posts [get]
func (h *PostHandler) FriendFeed(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	posts, err := h.postService.FriendFeed(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ExploreFeed lists recent posts from users outside the caller's circle.
//
// @Summary      Explore feed
// @Tags         posts
// @Produce      json
// @Success      200  {array}  ports.PostView
// @Router       /posts/explore-posts [get]
func (h *PostHandler) ExploreFeed(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	posts, err := h.postService.ExploreFeed(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// UserProfile returns a user's public page with their posts.
//
// @Summary      User profile
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  ports.ProfileView
// @Failure      404  {object}  map[string]string
// @Router       /posts/user/{id} [get]
func (h *PostHandler) UserProfile(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	profile, err := h.postService.UserProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Like records a like on a post, at most once per user.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.postService.LikePost(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post liked"})
}

// AddComment attaches a comment to a post.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.postService.AddComment(c.Request().Context(), c.Param("id"), user.ID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments lists a post's comments, newest first.
//
// @Summary      List comments
// @Tags         posts
// @Produce      json
// @Param        id   path     string  true  "Post id"
// @Success      200  {array}  ports.CommentView
// @Failure      404  {object} map[string]string
// @Router       /posts/{id}/comments [get]
func (h *PostHandler) ListComments(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	comments, err := h.postService.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// LikeComment records a like on a comment, at most once per user.
//
// @Summary      Like a comment
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/comments/{id}/like [post]
func (h *PostHandler) LikeComment(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.postService.LikeComment(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment liked"})
}

// Delete removes a post. Only the author may delete.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// DeleteComment removes a comment. Only the author may delete.
//
// @Summary      Delete a comment
// @Tags         posts
// @Produce      json
// @Param        postId     path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /posts/{postId}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.postService.DeleteComment(c.Request().Context(), c.Param("postId"), c.Param("commentId"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted"})
}
