package utils

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID int64

// NewID returns a timestamp-based record id, unique within the process even
// when two records are created in the same nanosecond tick.
func NewID() string {
	for {
		prev := atomic.LoadInt64(&lastID)
		next := time.Now().UnixNano()
		if next <= prev {
			next = prev + 1
		}
		if atomic.CompareAndSwapInt64(&lastID, prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}
