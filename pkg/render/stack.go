package render

import (
	"sync"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	rootCapacity   = 4096
	nestedCapacity = 1024

	// Buffers that grew beyond this are left to the GC instead of the pool.
	maxPooledCapacity = 64 << 10
)

var nestedPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, nestedCapacity)
		return &b
	},
}

func getNested() []byte {
	return (*nestedPool.Get().(*[]byte))[:0]
}

func putNested(b []byte) {
	if cap(b) == 0 || cap(b) > maxPooledCapacity {
		return
	}
	b = b[:0]
	nestedPool.Put(&b)
}

// bufferStack holds the root buffer and the capture buffers of the
// nested producers currently running. Writes go to the top frame.
type bufferStack struct {
	frames [][]byte
}

func newBufferStack() *bufferStack {
	s := &bufferStack{frames: make([][]byte, 1, 8)}
	s.frames[0] = make([]byte, 0, rootCapacity)
	return s
}

// push makes a fresh buffer current and returns the handle pop expects.
func (s *bufferStack) push() int {
	s.frames = append(s.frames, getNested())
	return len(s.frames) - 1
}

// pop removes the frame created by the matching push and returns its
// content. The caller owns the returned slice and should hand it back
// with putNested when done.
func (s *bufferStack) pop(handle int) []byte {
	top := len(s.frames) - 1
	if handle != top || handle == 0 {
		panic(errors.New("E104").
			WithDetailf("pop of frame %d while frame %d is current", handle, top))
	}
	b := s.frames[top]
	s.frames[top] = nil
	s.frames = s.frames[:top]
	return b
}

// current returns the buffer writes go to.
func (s *bufferStack) current() []byte {
	return s.frames[len(s.frames)-1]
}

func (s *bufferStack) write(p []byte) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], p...)
}

func (s *bufferStack) writeString(str string) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], str...)
}

func (s *bufferStack) writeByte(c byte) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], c)
}

// appendFunc lets fn append to the current buffer in place.
func (s *bufferStack) appendFunc(fn func([]byte) []byte) {
	top := len(s.frames) - 1
	s.frames[top] = fn(s.frames[top])
}

// depth is the number of capture frames above the root.
func (s *bufferStack) depth() int {
	return len(s.frames) - 1
}

// reset drops every capture frame and empties the root.
func (s *bufferStack) reset() {
	for i := len(s.frames) - 1; i > 0; i-- {
		putNested(s.frames[i])
		s.frames[i] = nil
	}
	s.frames = s.frames[:1]
	s.frames[0] = s.frames[0][:0]
}
