package track

import "time"

// Observer receives connector activity, typically to export metrics.
// Calls are made outside the connector lock.
type Observer interface {
	AnchorsSet(count int)
	SegmentsComputed(count int, elapsed time.Duration)
	StaleReportDropped()
	BarrierTimedOut()
}

type nopObserver struct{}

func (nopObserver) AnchorsSet(int) {}
func (nopObserver) SegmentsComputed(int, time.Duration) {}
func (nopObserver) StaleReportDropped() {}
func (nopObserver) BarrierTimedOut() {}
