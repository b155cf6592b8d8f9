package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler answers GET / with a plain liveness string.
func (hb *HandlerBundle) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "from server")
}

// HealthHandler reports the last database ping.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	if hb.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	st := hb.Health.Status()
	status, code := "ok", http.StatusOK
	if !st.Mongo {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "mongo": st.Mongo, "checkedAt": st.CheckedAt})
}
