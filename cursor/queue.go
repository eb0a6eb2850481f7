package cursor

import (
	"sync/atomic"

	"github.com/lixenwraith/gazekit/parameter"
)

// SampleQueue is a lock-free MPSC ring buffer for controller samples
// Thread-Safety:
//   - Push: Lock-free CAS, multiple device goroutines OK
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest samples overwritten when full; only the freshest
// readings matter to the pick loop, so dropped backlog is harmless
type SampleQueue struct {
	samples   [parameter.SampleQueueSize]Sample
	published [parameter.SampleQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                          // Read index
	tail      atomic.Uint64                          // Write index
}

func NewSampleQueue() *SampleQueue {
	sq := &SampleQueue{}
	sq.head.Store(0)
	sq.tail.Store(0)
	return sq
}

// Push adds a sample using lock-free CAS with published flags
// Safe for concurrent producers. O(1) amortized
func (sq *SampleQueue) Push(s Sample) {
	for {
		currentTail := sq.tail.Load()
		nextTail := currentTail + 1

		if sq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.SampleBufferMask

			sq.samples[idx] = s
			sq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread samples
			currentHead := sq.head.Load()
			if nextTail-currentHead > parameter.SampleQueueSize {
				sq.head.CompareAndSwap(currentHead, nextTail-parameter.SampleQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending samples in FIFO order and advances head
// Single-consumer design (frame loop). Checks published flags for safety
func (sq *SampleQueue) Consume() []Sample {
	for {
		currentHead := sq.head.Load()
		currentTail := sq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.SampleQueueSize {
			maxAvailable = parameter.SampleQueueSize
			currentHead = currentTail - parameter.SampleQueueSize
		}

		result := make([]Sample, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.SampleBufferMask

			if !sq.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, sq.samples[idx])
			sq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if sq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
