package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// stubRecorder captures audit events synchronously.
type stubRecorder struct {
	events []audit.Event
}

func (r *stubRecorder) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

// asActor injects a resolved actor the way AuthMiddleware would.
func asActor(a actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActor, a)
		c.Next()
	}
}

var adminActor = actor.Actor{ID: 1, Role: actor.RoleAdmin}
