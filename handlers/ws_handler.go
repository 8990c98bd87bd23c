package handlers

import (
	"errors"
	"net/http"

	"github.com/formbase/forms-go/middleware"
	"github.com/formbase/forms-go/response"
	"github.com/formbase/forms-go/services"
	ws "github.com/formbase/forms-go/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	service *services.FormService
}

func NewWSHandler(service *services.FormService) *WSHandler {
	return &WSHandler{service: service}
}

// WatchResponses godoc
// @Summary Stream new submissions for a form over a websocket
// @Description Browsers cannot set an Authorization header on a websocket
// @Description upgrade, so the JWT is passed as a token query parameter.
// @Tags responses
// @Param id path string true "Form ID"
// @Param token query string true "JWT"
// @Success 101 {string} string "Switching protocols"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /ws/forms/{id} [get]
func (h *WSHandler) WatchResponses(c *gin.Context) {
	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil || claims == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
		return
	}

	form, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	if form.CreatorID != claims.UserID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Only the form owner may do this"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sub := ws.Subscribe(form.ID, conn)
	defer sub.Close()

	// The feed is write-only; the read loop just detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
