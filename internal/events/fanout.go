package events

import (
	"context"
	"fmt"

	"github.com/nerrad567/device-inventory/internal/device"
)

// Logger is the logging interface used by notifiers.
type Logger interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Fanout delivers every change to each registered notifier in order.
// A panicking notifier is logged and skipped; the rest still run.
type Fanout struct {
	notifiers []device.Notifier
	logger    Logger
}

// NewFanout returns a fanout over notifiers. nil entries are dropped.
func NewFanout(notifiers ...device.Notifier) *Fanout {
	f := &Fanout{logger: noopLogger{}}
	for _, n := range notifiers {
		f.Add(n)
	}
	return f
}

// Add registers another notifier. Not safe to call concurrently with
// DeviceChanged; wire everything before serving.
func (f *Fanout) Add(n device.Notifier) {
	if n != nil {
		f.notifiers = append(f.notifiers, n)
	}
}

// SetLogger sets the logger for recovered notifier panics.
func (f *Fanout) SetLogger(logger Logger) {
	f.logger = logger
}

// Len returns the number of registered notifiers.
func (f *Fanout) Len() int {
	return len(f.notifiers)
}

// DeviceChanged implements device.Notifier.
func (f *Fanout) DeviceChanged(ctx context.Context, change device.Change) {
	for _, n := range f.notifiers {
		f.deliver(ctx, n, change)
	}
}

func (f *Fanout) deliver(ctx context.Context, n device.Notifier, change device.Change) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("notifier panic recovered",
				"notifier", fmt.Sprintf("%T", n),
				"device_id", change.Device.ID,
				"panic", r,
			)
		}
	}()
	n.DeviceChanged(ctx, change)
}
