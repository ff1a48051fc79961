package perf

import (
	"testing"
	"time"
)

func TestMonitorRecordsFrames(t *testing.T) {
	m := NewMonitor()

	for i := 0; i < 3; i++ {
		timer := m.StartFrame()
		time.Sleep(time.Millisecond)
		timer.EndFrame()
	}

	stats := m.Snapshot()
	if stats.FrameCount != 3 {
		t.Errorf("expected 3 frames recorded, got %d", stats.FrameCount)
	}
	if stats.LastFrameMs <= 0 {
		t.Errorf("expected positive last frame time, got %v", stats.LastFrameMs)
	}
	if stats.AvgFrameMs <= 0 {
		t.Errorf("expected positive average frame time, got %v", stats.AvgFrameMs)
	}
}

func TestEmptyMonitorSnapshot(t *testing.T) {
	m := NewMonitor()
	stats := m.Snapshot()
	if stats.FrameCount != 0 || stats.AvgFrameMs != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
