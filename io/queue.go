package io

// Queue implements a circular buffer of values.
// It operates as a FIFO queue with a fixed capacity and separate read/write
// positions. A zero Capacity grows without bound.
type Queue struct {
	Capacity int // Capacity in values.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []int64
}

var _ Channel = (*Queue)(nil)

// NewQueue creates a queue holding the given values.
func NewQueue(values ...int64) (queue *Queue) {
	queue = &Queue{}
	for _, value := range values {
		queue.Send(value)
	}
	return
}

// Rewind resets the queue to empty, resetting indices and
// reinitializing the data buffer.
func (queue *Queue) Rewind() {
	queue.ReadIndex = 0
	queue.WriteIndex = 0
	queue.Size = 0
	queue.Data = make([]int64, queue.Capacity)
}

// Len returns the number of queued values.
func (queue *Queue) Len() int {
	return queue.Size
}

// Receive returns the oldest value, if any.
// The buffer wraps around at its length.
func (queue *Queue) Receive() (value int64, ok bool, err error) {
	if queue.Size == 0 {
		return
	}

	value = queue.Data[queue.ReadIndex]
	queue.ReadIndex++
	if queue.ReadIndex == len(queue.Data) {
		queue.ReadIndex = 0
	}
	queue.Size--
	ok = true

	return
}

// Send writes a value at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (queue *Queue) Send(value int64) (err error) {
	if queue.Capacity > 0 && queue.Size >= queue.Capacity {
		err = ErrChannelFull
		return
	}

	if queue.Size == len(queue.Data) {
		queue.grow()
	}

	queue.Data[queue.WriteIndex] = value

	queue.WriteIndex++
	if queue.WriteIndex == len(queue.Data) {
		queue.WriteIndex = 0
	}
	queue.Size++

	return
}

// Values returns the queued values, oldest first, without removing them.
func (queue *Queue) Values() (values []int64) {
	values = make([]int64, 0, queue.Size)
	for n := range queue.Size {
		values = append(values, queue.Data[(queue.ReadIndex+n)%len(queue.Data)])
	}
	return
}

// grow enlarges the buffer, unwrapping the queued values to its start.
func (queue *Queue) grow() {
	size := max(2*len(queue.Data), 8)
	if queue.Capacity > 0 {
		size = min(size, queue.Capacity)
	}

	data := make([]int64, size)
	copy(data, queue.Values())
	queue.Data = data
	queue.ReadIndex = 0
	queue.WriteIndex = queue.Size
}
