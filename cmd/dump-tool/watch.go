package main

import (
	"os"
	"os/signal"
	"path"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/babarinde/mezzio-swoole/pkg/inspect"
)

var settleDelay = 500 * time.Millisecond

// settleTracker delays acting on a file until it has seen no activity for a
// while, so a dump is only summarized after its writer is done with it.
type settleTracker struct {
	delay   time.Duration
	mutex   sync.Mutex
	pending map[string]*time.Timer
	settled chan string
}

func newSettleTracker(delay time.Duration) *settleTracker {
	return &settleTracker{
		delay:   delay,
		pending: make(map[string]*time.Timer),
		settled: make(chan string, 16),
	}
}

// Touch arms the timer for filePath, or rearms it while writes keep arriving.
// Once the delay passes without another Touch the path is sent on Settled.
func (s *settleTracker) Touch(filePath string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if timer, ok := s.pending[filePath]; ok {
		timer.Reset(s.delay)
		return
	}

	s.pending[filePath] = time.AfterFunc(s.delay, func() {
		s.mutex.Lock()
		delete(s.pending, filePath)
		s.mutex.Unlock()

		s.settled <- filePath
	})
}

func (s *settleTracker) Settled() <-chan string {
	return s.settled
}

func runWatch(cmd *cobra.Command, args []string) {
	opts := loadOptions(cmd)

	dir := opts.StoreDir
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.WithError(err).WithField("dir", dir).Error("Failed to create watch directory")
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.WithError(err).Error("Failed to create watcher")
		return
	}
	defer watcher.Close()

	if err = watcher.Add(dir); err != nil {
		logrus.WithError(err).WithField("dir", dir).Error("Failed to watch directory")
		return
	}

	logrus.WithField("dir", dir).Info("Watching for new dumps")

	tracker := newSettleTracker(settleDelay)

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				tracker.Touch(event.Name)
			}
		case filePath := <-tracker.Settled():
			stream, err := openStream(filePath)
			if err != nil {
				logrus.WithError(err).WithField("file", filePath).Error("Failed to open dump")
				continue
			}

			emitInfo(inspect.Describe(path.Base(filePath), stream, opts.PreviewBytes), opts.Format)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(watchErr).Error("Watcher failed")
		case <-signalChannel:
			return
		}
	}
}
