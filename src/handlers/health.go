package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/cache"
)

// DatabaseChecker is the part of database.Database the health checks need
type DatabaseChecker interface {
	Health(ctx context.Context) error
	Stats() map[string]int32
}

// HealthHandler handles health check requests
type HealthHandler struct {
	db          DatabaseChecker
	cache       cache.Store
	environment string
	version     string
	// hideInternals drops error text and host details from public output
	hideInternals bool
	startTime     time.Time
	now           func() time.Time
}

// NewHealthHandler creates a new health handler. store may be nil. In
// production, dependency errors and the hostname are left out.
func NewHealthHandler(db DatabaseChecker, store cache.Store, environment, version string, isProduction bool) *HealthHandler {
	return &HealthHandler{
		db:            db,
		cache:         store,
		environment:   environment,
		version:       version,
		hideInternals: isProduction,
		startTime:     time.Now(),
		now:           time.Now,
	}
}

// HandleWelcome handles GET /
func (hh *HealthHandler) HandleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Welcome to NS SiteCraft Solutions API",
		"version":       hh.version,
		"documentation": "/api/health",
	})
}

// HandleHealth returns a cheap liveness summary
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "NS SiteCraft API is running",
		"timestamp":   hh.now().UTC().Format(time.RFC3339),
		"environment": hh.environment,
	})
}

// HandleDetailed returns dependency, memory and host information
func (hh *HealthHandler) HandleDetailed(c *gin.Context) {
	ctx := c.Request.Context()

	start := time.Now()
	dbErr := hh.db.Health(ctx)
	database := gin.H{
		"status":  "connected",
		"latency": time.Since(start).String(),
		"pool":    hh.db.Stats(),
	}
	if dbErr != nil {
		database["status"] = "disconnected"
		if !hh.hideInternals {
			database["error"] = dbErr.Error()
		}
	}

	cacheStatus := "disabled"
	if hh.cache != nil {
		cacheStatus = "connected"
		if err := hh.cache.Ping(ctx); err != nil {
			cacheStatus = "disconnected"
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	uptime := hh.now().Sub(hh.startTime)

	system := gin.H{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
		"goroutines": runtime.NumGoroutine(),
		"goVersion":  runtime.Version(),
	}
	if !hh.hideInternals {
		hostname, _ := os.Hostname()
		system["hostname"] = hostname
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"status":      "healthy",
		"timestamp":   hh.now().UTC().Format(time.RFC3339),
		"environment": hh.environment,
		"version":     hh.version,
		"database":    database,
		"cache":       gin.H{"status": cacheStatus},
		"memory": gin.H{
			"alloc":     megabytes(mem.Alloc),
			"heapInUse": megabytes(mem.HeapInuse),
			"sys":       megabytes(mem.Sys),
			"numGC":     mem.NumGC,
		},
		"uptime": gin.H{
			"seconds":   int64(uptime.Seconds()),
			"formatted": formatUptime(uptime),
		},
		"system": system,
	})
}

// HandleReady returns readiness status (for load balancers)
func (hh *HealthHandler) HandleReady(c *gin.Context) {
	if err := hh.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"ready":   false,
			"message": "Database not connected",
		})
		return
	}
	if hh.cache != nil {
		if err := hh.cache.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"ready":   false,
				"message": "Cache not connected",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ready":   true,
		"message": "Service is ready to accept traffic",
	})
}

// HandleLive answers as long as the process can serve requests
func (hh *HealthHandler) HandleLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"alive":   true,
		"message": "Service is alive",
	})
}

func megabytes(b uint64) string {
	return fmt.Sprintf("%dMB", b/1024/1024)
}

// formatUptime renders d as "1d 2h 3m 4s", skipping zero units
func formatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}
