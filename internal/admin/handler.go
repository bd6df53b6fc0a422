// srikarboske | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/s225280351srikarboske/project/internal/core"
)

// Handler serves the operational endpoints behind the admin dashboard's
// system page: portfolio counts plus process and pool stats.
type Handler struct {
	db         core.DBTX
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
}

type HandlerConfig struct {
	DB         core.DBTX
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		db:         cfg.DB,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/overview", h.GetOverview)
		r.Get("/stats", h.GetSystemStats)
	})
}

// GetOverview returns row counts across the portfolio. A count that fails is
// reported as -1 rather than failing the whole page.
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := OverviewResponse{
		Properties:         h.count(ctx, `SELECT COUNT(*) FROM properties`),
		OccupiedProperties: h.count(ctx, `SELECT COUNT(*) FROM properties WHERE status = 'OCCUPIED'`),
		Tenants:            h.count(ctx, `SELECT COUNT(*) FROM addtenants`),
		Customers:          h.count(ctx, `SELECT COUNT(*) FROM customers WHERE is_deleted = FALSE`),
		OpenIssues:         h.count(ctx, `SELECT COUNT(*) FROM issues WHERE status <> 'RESOLVED'`),
		Messages:           h.count(ctx, `SELECT COUNT(*) FROM messages`),
	}

	core.OK(w, response)
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := SystemStatsResponse{
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
			NumGC:        memStats.NumGC,
		},
		Database: h.getDBStats(),
		Redis:    h.getRedisStats(),
	}

	core.OK(w, response)
}

func (h *Handler) count(ctx context.Context, query string) int64 {
	var n int64
	if err := h.db.GetContext(ctx, &n, query); err != nil {
		return -1
	}
	return n
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}

type OverviewResponse struct {
	Properties         int64 `json:"properties"`
	OccupiedProperties int64 `json:"occupiedProperties"`
	Tenants            int64 `json:"tenants"`
	Customers          int64 `json:"customers"`
	OpenIssues         int64 `json:"openIssues"`
	Messages           int64 `json:"messages"`
}

type SystemStatsResponse struct {
	Runtime  RuntimeStats    `json:"runtime"`
	Database *DBPoolStats    `json:"database,omitempty"`
	Redis    *RedisPoolStats `json:"redis,omitempty"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc"`
	MemSys       uint64 `json:"mem_sys"`
	NumGC        uint32 `json:"num_gc"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
}
