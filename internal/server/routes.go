package server

import (
	"context"
	"net/http"
	"time"

	"github.com/702greens/farmos/internal/models"
	"github.com/702greens/farmos/internal/notify"
	"github.com/702greens/farmos/internal/store"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up the API and the embedded log form.
func registerRoutes(router *gin.Engine, st *store.Store, notifier *notify.Notifier) {
	if page, err := formFS.ReadFile("public/index.html"); err == nil {
		router.GET("/", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		})
	}

	router.GET("/logs", handleListLogs(st))
	router.GET("/logs/today", handleTodayLog(st))
	router.POST("/logs", handleSubmitLog(st, notifier))
	router.GET("/health", handleHealth())
}

func handleListLogs(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := st.ListRecent(c.Request.Context(), store.DefaultRecentLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

func handleTodayLog(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		log, err := st.GetByDate(c.Request.Context(), models.Today())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if log == nil {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, log)
	}
}

func handleSubmitLog(st *store.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.DailyLog
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if payload.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
			return
		}
		date, err := models.NormalizeDate(payload.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		payload.Date = date
		// Surrogate key and creation time are owned by the store, whatever
		// the client sent.
		payload.ID = 0
		payload.CreatedAt = time.Time{}

		id, err := st.Upsert(c.Request.Context(), &payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Fire-and-forget: the pipeline gets its own snapshot and a fresh
		// context so it can outlive this request. Its outcome never reaches
		// this caller.
		snapshot := payload
		go notifier.Run(context.Background(), &snapshot)

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
