package perf

import (
	"sync/atomic"
	"time"
)

// Monitor tracks frame timing for the debug overlay. All counters are
// atomics so the overlay can read while the update loop writes.
type Monitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame
	totalTime  atomic.Uint64 // nanoseconds, sum of all frames

	startTime time.Time
}

// NewMonitor creates a monitor with its uptime clock started.
func NewMonitor() *Monitor {
	return &Monitor{startTime: time.Now()}
}

// FrameTimer measures one frame; obtain via StartFrame, finish with EndFrame.
type FrameTimer struct {
	monitor   *Monitor
	startTime time.Time
}

// StartFrame begins timing a frame.
func (m *Monitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: m, startTime: time.Now()}
}

// EndFrame records the elapsed frame time.
func (t *FrameTimer) EndFrame() {
	elapsed := uint64(time.Since(t.startTime).Nanoseconds())
	t.monitor.frameTime.Store(elapsed)
	t.monitor.totalTime.Add(elapsed)
	t.monitor.frameCount.Add(1)
}

// Stats is a point-in-time reading for display.
type Stats struct {
	FrameCount   uint64
	LastFrameMs  float64
	AvgFrameMs   float64
	UptimeSecond float64
}

// Snapshot returns the current statistics.
func (m *Monitor) Snapshot() Stats {
	count := m.frameCount.Load()
	stats := Stats{
		FrameCount:   count,
		LastFrameMs:  float64(m.frameTime.Load()) / 1e6,
		UptimeSecond: time.Since(m.startTime).Seconds(),
	}
	if count > 0 {
		stats.AvgFrameMs = float64(m.totalTime.Load()) / float64(count) / 1e6
	}
	return stats
}
