package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/infrastructure/websocket"
	notification_http "github.com/TuaBBL/beatbookingslive/internal/modules/notification/interfaces/http"
)

type userFinderMock struct{ mock.Mock }

func (m *userFinderMock) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *userFinderMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type notificationRepoMock struct{ mock.Mock }

func (m *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *notificationRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *notificationRepoMock) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *notificationRepoMock) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *notificationRepoMock) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type handlerFixture struct {
	users   *userFinderMock
	hub     *websocket.Hub
	handler *notification_http.NotificationHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	users := new(userFinderMock)
	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	service := application.NewNotificationService(new(notificationRepoMock), hub)
	return &handlerFixture{
		users:   users,
		hub:     hub,
		handler: notification_http.NewNotificationHandler(service, hub, users),
	}
}

func authedRequest(method, target string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserId, userID)
	return req.WithContext(ctx)
}

func TestSubscribe_MissingAccountRejected(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()

	f.users.On("Exists", mock.Anything, userID).Return(false, nil)

	rec := httptest.NewRecorder()
	f.handler.Subscribe(rec, authedRequest(http.MethodGet, "/ws", userID))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "account no longer exists")
}

func TestSubscribe_AccountLookupFailure(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()

	f.users.On("Exists", mock.Anything, userID).Return(false, assert.AnError)

	rec := httptest.NewRecorder()
	f.handler.Subscribe(rec, authedRequest(http.MethodGet, "/ws", userID))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubscribe_ExistingAccountUpgrades(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()

	f.users.On("Exists", mock.Anything, userID).Return(true, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyUserId, userID)
		f.handler.Subscribe(w, r.WithContext(ctx))
	}))
	defer ts.Close()

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	f.hub.SendToUser(userID, []byte("hello"))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(msg))
}
