package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hireme/internal/events"
	"hireme/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Hub, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	jwtSvc := jwt.New("test-secret", time.Hour)

	r := gin.New()
	NewHandler(hub, jwtSvc, nil).RegisterRoutes(r.Group("/api/v1"))

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return srv, hub, jwtSvc
}

func wsURL(srv *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws?token=" + token
}

func waitOnline(t *testing.T, hub *Hub, userID int64) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.IsOnline(userID) }, 2*time.Second, 10*time.Millisecond)
}

func TestServeWS_DeliversEvents(t *testing.T) {
	srv, hub, jwtSvc := newTestServer(t)

	token, err := jwtSvc.GenerateToken(42, false)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer conn.Close()
	waitOnline(t, hub, 42)

	bus := events.NewLocalBus(hub)
	require.NoError(t, bus.Publish(context.Background(), events.Event{
		Type:       events.BookingCreated,
		Recipients: []int64{42, 7},
		Payload:    map[string]int{"id": 1},
	}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"booking.created","payload":{"id":1}}`, string(data))
}

func TestServeWS_RejectsMissingOrBadToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(wsURL(srv, "garbage"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_NewConnectionReplacesOld(t *testing.T) {
	srv, hub, jwtSvc := newTestServer(t)
	token, err := jwtSvc.GenerateToken(5, false)
	require.NoError(t, err)

	first, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer first.Close()
	waitOnline(t, hub, 5)

	second, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer second.Close()

	// the first socket is closed by the server
	_ = first.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = first.ReadMessage()
	assert.Error(t, err)

	assert.Eventually(t, func() bool { return hub.OnlineCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	hub.Deliver([]int64{5}, []byte(`{"type":"x","payload":null}`))

	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := second.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"x"`)
}
