package handlers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	appsvc "github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/domain/application"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/internal/repository/mock"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_PushesOnChange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	oldPoll := pollInterval
	pollInterval = 20 * time.Millisecond
	t.Cleanup(func() { pollInterval = oldPoll })

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockApp := mock.NewMockApplicationRepo(ctrl)

	var mu sync.Mutex
	current := []application.Application{{ID: 1, UserID: 5, Status: application.StatusPending}}
	mockApp.EXPECT().List(gomock.Any()).DoAndReturn(func(f application.ListFilter) ([]application.Application, error) {
		if assert.NotNil(t, f.UserID) {
			assert.Equal(t, uint(5), *f.UserID)
		}
		mu.Lock()
		defer mu.Unlock()
		return append([]application.Application(nil), current...), nil
	}).AnyTimes()

	h := NewApplicationHandler(appsvc.NewApplicationService(&repository.Repos{Application: mockApp}))
	done := make(chan struct{})
	r := gin.New()
	r.GET("/ws/applications", func(c *gin.Context) {
		c.Set("claims", &types.Claims{UserID: 5, Role: "user"})
		c.Next()
	}, func(c *gin.Context) {
		defer close(done)
		h.Stream(c)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/applications", nil)
	require.NoError(t, err)

	var got []application.Application
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	require.Len(t, got, 1)
	assert.Equal(t, application.StatusPending, got[0].Status)

	// unchanged polls send nothing, so the next frame is the update
	time.Sleep(5 * pollInterval)
	mu.Lock()
	current = []application.Application{{ID: 1, UserID: 5, Status: application.StatusProcessing, Feedback: "in review"}}
	mu.Unlock()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	require.Len(t, got, 1)
	assert.Equal(t, application.StatusProcessing, got[0].Status)
	assert.Equal(t, "in review", got[0].Feedback)

	require.NoError(t, conn.Close())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after the client left")
	}
}
