package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
)

// WorkerChecker reports whether a worker account still exists.
type WorkerChecker interface {
	WorkerExists(id uint64) (bool, error)
}

// RequireAuth lets a request through only when its session names a worker that
// still exists. Sessions of deleted workers are cleared and answered with 401.
func RequireAuth(workers WorkerChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		workerID, ok := toWorkerID(session.Get(constants.ContextKeyUserID))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		exists, err := workers.WorkerExists(workerID)
		if err != nil {
			Logger(c).Error("failed to resolve session worker", "worker_id", workerID, "error", err)
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}
		if !exists {
			session.Clear()
			if err := session.Save(); err != nil {
				Logger(c).Warn("failed to clear stale session", "worker_id", workerID, "error", err)
			}
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, workerID)
		c.Next()
	}
}

// GetUserID retrieves the current worker ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toWorkerID(userID)
}

// toWorkerID normalises the id types a session store may hand back.
func toWorkerID(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, v > 0
	case uint:
		return uint64(v), v > 0
	case int:
		return uint64(v), v > 0
	case int64:
		return uint64(v), v > 0
	case float64:
		// JSON-serialized session stores decode numbers as float64
		return uint64(v), v >= 1
	default:
		return 0, false
	}
}
