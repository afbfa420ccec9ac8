package realtime

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler exposes the hub over a websocket endpoint.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS는 미들웨어에서 처리하므로 업그레이드 단계에서는 제한하지 않는다
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

const writeTimeout = 10 * time.Second

// Subscribe upgrades the connection and streams membership change events
// for one org unit until the client disconnects.
func (h *Handler) Subscribe(c *gin.Context) {
	orgUnitID := c.Param("id")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("웹소켓 업그레이드 실패", "org_unit_id", orgUnitID, "error", err)
		return
	}

	sub := h.hub.Subscribe(orgUnitID)
	defer h.hub.Unsubscribe(sub)
	defer conn.Close()

	// 클라이언트 종료 감지용 리더. 수신 메시지는 사용하지 않는다.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				slog.Debug("웹소켓 전송 실패", "org_unit_id", orgUnitID, "error", err)
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
