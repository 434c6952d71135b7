// Package queue provides a simple FIFO queue. Q is based on a
// power-of-2 sized ring buffer which doubles its capacity when
// full. Q is *not* thread safe.
package queue
