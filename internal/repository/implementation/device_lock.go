package implementation

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// deviceLocks serializes mutations per device with a fixed set of stripes.
type deviceLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *deviceLocks) lock(deviceID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(deviceID))
	m := &l.stripes[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
