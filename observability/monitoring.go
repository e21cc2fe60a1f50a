// Package observability aggregates runtime metrics for the health endpoint.
// Counters are atomic so the request path never takes a lock.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthStats is the payload served by /health.
type HealthStats struct {
	Status              string  `json:"status"`
	UptimeSeconds       int64   `json:"uptime_seconds"`
	ComplaintsProcessed uint64  `json:"complaints_processed"`
	ChatTurns           uint64  `json:"chat_turns"`
	FallbackReplies     uint64  `json:"fallback_replies"`
	RejectedUploads     uint64  `json:"rejected_uploads"`
	AllocMemMb          uint64  `json:"alloc_mem_mb"`
	RssMb               uint64  `json:"rss_mb"`
	CPUPercent          float64 `json:"cpu_percent"`
	NumGC               uint32  `json:"num_gc"`
	NumGoroutine        int     `json:"num_goroutine"`
}

type MonitoringManager struct {
	log       *slog.Logger
	startedAt time.Time
	proc      *process.Process

	complaintsProcessed uint64
	chatTurns           uint64
	fallbackReplies     uint64
	rejectedUploads     uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// Health still answers without OS process metrics, just poorer.
		log.Warn("Process metrics unavailable", "error", err)
	}
	return &MonitoringManager{
		log:       log,
		startedAt: time.Now(),
		proc:      proc,
	}
}

func (mm *MonitoringManager) IncrComplaintsProcessed() {
	atomic.AddUint64(&mm.complaintsProcessed, 1)
}

func (mm *MonitoringManager) IncrChatTurns() {
	atomic.AddUint64(&mm.chatTurns, 1)
}

func (mm *MonitoringManager) IncrFallbackReplies() {
	atomic.AddUint64(&mm.fallbackReplies, 1)
}

func (mm *MonitoringManager) IncrRejectedUploads() {
	atomic.AddUint64(&mm.rejectedUploads, 1)
}

// Snapshot collects the counters plus Go runtime and OS process metrics.
func (mm *MonitoringManager) Snapshot() HealthStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := HealthStats{
		Status:              "ok",
		UptimeSeconds:       int64(time.Since(mm.startedAt).Seconds()),
		ComplaintsProcessed: atomic.LoadUint64(&mm.complaintsProcessed),
		ChatTurns:           atomic.LoadUint64(&mm.chatTurns),
		FallbackReplies:     atomic.LoadUint64(&mm.fallbackReplies),
		RejectedUploads:     atomic.LoadUint64(&mm.rejectedUploads),
		AllocMemMb:          m.Alloc / 1024 / 1024,
		NumGC:               m.NumGC,
		NumGoroutine:        runtime.NumGoroutine(),
	}

	if mm.proc != nil {
		if memInfo, err := mm.proc.MemoryInfo(); err == nil {
			stats.RssMb = memInfo.RSS / 1024 / 1024
		}
		if cpu, err := mm.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}
	return stats
}
