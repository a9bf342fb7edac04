package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/nerrad567/device-inventory/internal/device"
)

// SystemMetrics is the response of GET /api/v1/metrics.
type SystemMetrics struct {
	Timestamp     string         `json:"timestamp"`
	Version       string         `json:"version"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Runtime       RuntimeMetrics `json:"runtime"`
	WebSocket     WSMetrics      `json:"websocket"`
	Devices       device.Stats   `json:"devices"`
}

// RuntimeMetrics contains Go runtime statistics.
type RuntimeMetrics struct {
	Goroutines    int     `json:"goroutines"`
	MemoryAllocMB float64 `json:"memory_alloc_mb"`
	NumGC         uint32  `json:"num_gc"`
}

// WSMetrics contains WebSocket hub statistics.
type WSMetrics struct {
	ConnectedClients int `json:"connected_clients"`
}

const bytesPerMB = 1024 * 1024

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.manager.Stats(r.Context())
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, http.StatusOK, SystemMetrics{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Version:       s.version,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Runtime: RuntimeMetrics{
			Goroutines:    runtime.NumGoroutine(),
			MemoryAllocMB: float64(mem.Alloc) / bytesPerMB,
			NumGC:         mem.NumGC,
		},
		WebSocket: WSMetrics{ConnectedClients: s.hub.ClientCount()},
		Devices:   stats,
	})
}
