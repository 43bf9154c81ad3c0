package wirebuf

import (
	"os"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/rs/zerolog"
)

// DefaultLargeTransferThreshold is the cumulative byte count past which the
// large-transfer notification fires.
const DefaultLargeTransferThreshold = 256 << 20 // 256 MiB

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLogger replaces the logger used by the default large-transfer notifier.
func SetLogger(l zerolog.Logger) { logger = l }

func logLargeTransfer(total int64) {
	logger.Warn().Int64("bytes", total).Msg("very large transfer; this may run out of memory")
}

// TransferMonitor aggregates the bytes moved through every sink and source
// attached to it and fires a notification at most once when the total
// crosses the threshold. It replaces a hidden process-wide flag with shared
// state that callers inject explicitly; DefaultMonitor preserves the
// once-per-process behaviour for instances that don't override it.
//
// The counter and latch are safe for concurrent crossing from multiple
// instances; everything else in this package is single-goroutine.
type TransferMonitor struct {
	threshold int64
	total     *xsync.Counter
	warned    atomic.Bool
	notify    func(total int64)
}

// DefaultMonitor is shared by all instances that are not given their own
// monitor, so the notification fires at most once per process.
var DefaultMonitor = NewTransferMonitor(DefaultLargeTransferThreshold, nil)

// NewTransferMonitor creates a monitor with the given threshold and notify
// hook. A non-positive threshold selects the default; a nil hook logs a
// warning through the package logger.
func NewTransferMonitor(threshold int64, notify func(total int64)) *TransferMonitor {
	if threshold <= 0 {
		threshold = DefaultLargeTransferThreshold
	}
	if notify == nil {
		notify = logLargeTransfer
	}
	return &TransferMonitor{
		threshold: threshold,
		total:     xsync.NewCounter(),
		notify:    notify,
	}
}

// Account adds n transferred bytes and fires the notification if the total
// has crossed the threshold and no other instance got there first.
func (m *TransferMonitor) Account(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.total.Add(int64(n))
	if m.warned.Load() {
		return
	}
	if m.total.Value() > m.threshold && m.warned.CompareAndSwap(false, true) {
		m.notify(m.total.Value())
	}
}

// Total returns the bytes accounted so far across all attached instances.
func (m *TransferMonitor) Total() int64 { return m.total.Value() }

// Threshold returns the configured notification threshold.
func (m *TransferMonitor) Threshold() int64 { return m.threshold }

// Warned reports whether the notification has fired.
func (m *TransferMonitor) Warned() bool { return m.warned.Load() }
