package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	intdb "github.com/julenag/bot/internal/db"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bot api running"})
}

// SystemHandler exposes DB-backed probes; it holds the pool handle instead
// of reaching for a package global.
type SystemHandler struct {
	DB *sql.DB
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected")
		return
	}
	if !intdb.HasTable(h.DB, "trip_requests") {
		respondError(c, http.StatusInternalServerError, "schema_missing", "trip_requests table not found")
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM trip_requests").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_error", "database query failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "trip_requests_in_db": count})
}
