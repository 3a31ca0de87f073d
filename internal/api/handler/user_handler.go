package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/metrics"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

type UserHandler struct {
	friendService ports.FriendService
}

func NewUserHandler(friendService ports.FriendService) *UserHandler {
	return &UserHandler{friendService: friendService}
}

// Recommended lists onboarded users who are neither the caller nor already
// friends with the caller.
//
// @Summary      Recommended users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) Recommended(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	users, err := h.friendService.ListRecommended(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Friends lists the caller's friends.
//
// @Summary      List friends
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.PublicProfile
// @Router       /users/friends [get]
func (h *UserHandler) Friends(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	friends, err := h.friendService.ListFriends(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friends)
}

// SendFriendRequest creates a pending request to the user in the path.
//
// @Summary      Send a friend request
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Recipient user id"
// @Success      201  {object}  domain.FriendRequest
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/friend-request/{id} [post]
func (h *UserHandler) SendFriendRequest(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	request, err := h.friendService.SendRequest(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusCreated, request)
}

// AcceptFriendRequest accepts a pending request addressed to the caller.
//
// @Summary      Accept a friend request
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Friend request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/friend-request/{id}/accept [put]
func (h *UserHandler) AcceptFriendRequest(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.friendService.AcceptRequest(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "friend request accepted"})
}

// DeclineFriendRequest declines a pending request addressed to the caller.
//
// @Summary      Decline a friend request
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Friend request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/friend-request/{id}/decline [put]
func (h *UserHandler) DeclineFriendRequest(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.friendService.DeclineRequest(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("declined").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "friend request declined"})
}

// FriendRequests lists the caller's pending requests, both directions.
//
// @Summary      List friend requests
// @Tags         users
// @Produce      json
// @Success      200  {object}  ports.FriendRequestLists
// @Router       /users/friend-request [get]
func (h *UserHandler) FriendRequests(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	lists, err := h.friendService.ListRequests(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lists)
}

// OutgoingFriendRequests lists the caller's pending sent requests.
//
// @Summary      List outgoing friend requests
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.FriendRequestView
// @Router       /users/outgoing-friend-request [get]
func (h *UserHandler) OutgoingFriendRequests(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	outgoing, err := h.friendService.ListOutgoing(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outgoing)
}

// Search finds users by name, excluding the caller.
//
// @Summary      Search users
// @Tags         users
// @Produce      json
// @Param        query  query    string  true  "Name fragment"
// @Success      200    {array}  domain.User
// @Failure      400    {object} map[string]string
// @Router       /users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	users, err := h.friendService.SearchUsers(c.Request().Context(), user.ID, c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
