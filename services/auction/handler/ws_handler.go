package handler

import (
	"net/http"
	"time"

	"plate-auction/internal/auth"
	"plate-auction/internal/hub"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// closeInvalidToken is sent when a subscriber presents a bad token.
const closeInvalidToken = 4401

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TokenVerifier validates a bearer token into a principal.
type TokenVerifier interface {
	PrincipalFromBearer(token string) (auth.Principal, error)
}

// WSHandler upgrades live-update subscriptions. A connection is receive-idle
// after the handshake: the server only writes events, the read loop exists
// to detect the peer going away.
type WSHandler struct {
	hub      *hub.Hub
	verifier TokenVerifier
}

func NewWSHandler(h *hub.Hub, verifier TokenVerifier) *WSHandler {
	return &WSHandler{hub: h, verifier: verifier}
}

// SubscribePlatesHandler handles GET /ws/plates
func (h *WSHandler) SubscribePlatesHandler(c *gin.Context) {
	h.subscribe(c, hub.TopicPlates)
}

// SubscribeBidsHandler handles GET /ws/bids
func (h *WSHandler) SubscribeBidsHandler(c *gin.Context) {
	h.subscribe(c, hub.TopicBids)
}

func (h *WSHandler) subscribe(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Error("ws: failed to upgrade connection", map[string]any{
			"topic": topic,
			"error": err.Error(),
		})
		return
	}
	defer conn.Close()

	// The feed itself is public; a token, when presented, must be valid.
	if token := c.Query("token"); token != "" {
		if _, err := h.verifier.PrincipalFromBearer(token); err != nil {
			msg := websocket.FormatCloseMessage(closeInvalidToken, "invalid token")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			return
		}
	}

	id := h.hub.Subscribe(topic, conn)
	defer h.hub.Unsubscribe(topic, id)

	utils.Info("ws: subscriber connected", map[string]any{
		"topic":         topic,
		"subscriber_id": id,
	})

	// Drain until the peer disconnects. Inbound payloads carry no meaning.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	utils.Info("ws: subscriber disconnected", map[string]any{
		"topic":         topic,
		"subscriber_id": id,
	})
}
