package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"applyai-backend/internal/qabank"
	"applyai-backend/internal/resumes"
	"applyai-backend/internal/shared/config"
	"applyai-backend/internal/shared/server/middleware"
	"applyai-backend/internal/shared/server/respond"
)

const (
	appName    = "ApplyAI"
	appVersion = "0.1.0"
)

// RouterDeps carries the handlers and shared resources the router needs.
type RouterDeps struct {
	Config        config.Config
	DB            *sql.DB
	ResumeHandler *resumes.Handler
	QAHandler     *qabank.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     deps.Config.CORSAllowOrigin,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	r.GET("/health", healthHandler)
	r.GET("/db-test", dbTestHandler(deps.DB))

	root := r.Group("")
	deps.ResumeHandler.RegisterRoutes(root)
	deps.QAHandler.RegisterRoutes(root)

	return r
}

func healthHandler(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":    "ok",
		"app":       appName,
		"version":   appVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// dbTestHandler runs a one-row sample query to prove connectivity.
func dbTestHandler(database *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database == nil {
			respond.Error(c, http.StatusInternalServerError, "db_unavailable", "Database connection failed", "no database configured")
			return
		}

		rows, err := database.QueryContext(c.Request.Context(), `SELECT id, created_at FROM resumes LIMIT 1`)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "db_unavailable", "Database connection failed", err.Error())
			return
		}
		defer rows.Close()

		data := []gin.H{}
		for rows.Next() {
			var id string
			var createdAt time.Time
			if err := rows.Scan(&id, &createdAt); err != nil {
				respond.Error(c, http.StatusInternalServerError, "db_unavailable", "Database connection failed", err.Error())
				return
			}
			data = append(data, gin.H{"id": id, "createdAt": createdAt})
		}
		if err := rows.Err(); err != nil {
			respond.Error(c, http.StatusInternalServerError, "db_unavailable", "Database connection failed", err.Error())
			return
		}

		respond.OK(c, gin.H{
			"status":  "ok",
			"message": "Database connected successfully!",
			"tables":  gin.H{"resumes": "accessible"},
			"data":    data,
		})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
