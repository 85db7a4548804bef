package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettleTrackerReportsQuietFiles(t *testing.T) {
	tracker := newSettleTracker(50 * time.Millisecond)

	tracker.Touch("dump-1-0")
	tracker.Touch("dump-1-0")
	tracker.Touch("dump-1-1")

	settled := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case filePath := <-tracker.Settled():
			settled[filePath] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for files to settle")
		}
	}

	assert.True(t, settled["dump-1-0"])
	assert.True(t, settled["dump-1-1"])
}

func TestSettleTrackerRearmsOnActivity(t *testing.T) {
	tracker := newSettleTracker(200 * time.Millisecond)

	tracker.Touch("dump-1-0")
	time.Sleep(100 * time.Millisecond)
	tracker.Touch("dump-1-0")

	select {
	case <-tracker.Settled():
		t.Fatal("settled while writes were still arriving")
	case <-time.After(150 * time.Millisecond):
	}

	select {
	case filePath := <-tracker.Settled():
		assert.Equal(t, "dump-1-0", filePath)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for file to settle")
	}
}
