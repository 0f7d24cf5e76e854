package player

import (
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/killallgit/podcastr/api/types"
	playerService "github.com/killallgit/podcastr/internal/services/player"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)


// WebSocket streams the session's player state. The current state is sent
// on connect, then every change.
// @Summary      Player state feed
// @Description  Websocket sending a player state JSON document after every change
// @Tags         player
// @Success      101 "Switching Protocols"
// @Router       /api/v1/player/ws [get]
func WebSocket(deps *types.Dependencies) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r, deps.AllowedOrigins)
		},
	}

	return func(c *gin.Context) {
		if deps.PlayerHub == nil {
			types.SendError(c, apperrors.ServiceUnavailable("player hub"))
			return
		}

		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WARN] Websocket upgrade failed for session %s: %v", sessionID, err)
			return
		}
		defer conn.Close()

		// the feed only carries changes made after the initial state
		var sub *playerService.Subscription
		initial := p.Watch(func() {
			sub = deps.PlayerHub.Subscribe(sessionID)
		})
		defer sub.Close()

		log.Printf("[DEBUG] Websocket connected for session %s", sessionID)

		if err := writeJSON(conn, initial); err != nil {
			return
		}

		done := make(chan struct{})
		go readPump(conn, done)

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case state, ok := <-sub.C:
				if !ok {
					return
				}
				if err := writeJSON(conn, state); err != nil {
					log.Printf("[DEBUG] Websocket write failed for session %s: %v", sessionID, err)
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				log.Printf("[DEBUG] Websocket closed for session %s", sessionID)
				return
			}
		}
	}
}

// originAllowed accepts requests without an Origin header, same-origin
// requests and the listed origins. "*" accepts any origin.
func originAllowed(r *http.Request, origins []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

func writeJSON(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// readPump drains client frames so control messages are handled. It closes
// done when the connection goes away.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
