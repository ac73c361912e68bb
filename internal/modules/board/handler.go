package board

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"petemporio/internal/domain"
	"petemporio/internal/pkg/jwt"
	"petemporio/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the frontend host is fixed
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/board", h.Connect)
}

// Connect upgrades the request to a websocket. Browsers cannot set an
// Authorization header on websocket dials, so the JWT comes in as a query
// parameter. Staff only.
func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}
	if claims.Role != domain.RoleEmployee && claims.Role != domain.RoleAdmin {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Staff only")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("board: websocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeConn(conn, claims.UserID)
}
