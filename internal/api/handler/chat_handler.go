package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

type ChatHandler struct {
	chat ports.ChatProvider
}

func NewChatHandler(chat ports.ChatProvider) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatTokenResponse struct {
	Token string `json:"token"`
}

// Token mints a client-side chat token for the session user.
//
// @Summary      Chat token
// @Tags         chat
// @Produce      json
// @Success      200  {object}  chatTokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /chat/token [get]
func (h *ChatHandler) Token(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	token, err := h.chat.CreateToken(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatTokenResponse{Token: token})
}
