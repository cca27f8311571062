package terminal

import (
	"io"
	"sync"
	"time"

	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// readBufferSize bounds a single read; one keystroke is at most a few dozen bytes.
const readBufferSize = 256

// byteSource waits for raw input with a deadline.
type byteSource interface {
	// ReadTimeout returns the bytes available within timeout, or nil on timeout.
	ReadTimeout(timeout time.Duration) ([]byte, error)
}

// Input implements monitor.InputSource over a raw-mode terminal.
// A read can carry several keys (e.g. press and release together), so
// decoded events are queued and handed out one per Poll.
type Input struct {
	src     byteSource
	pending []monitor.KeyEvent
}

func newInput(src byteSource) *Input {
	return &Input{src: src}
}

// NewReaderInput polls an arbitrary reader via a background read loop.
func NewReaderInput(r io.Reader) *Input {
	return newInput(newReaderSource(r))
}

// Poll waits up to timeout for one key event. Queued events are returned
// immediately without waiting.
func (in *Input) Poll(timeout time.Duration) (monitor.KeyEvent, bool, error) {
	if ev, ok := in.pop(); ok {
		return ev, true, nil
	}

	data, err := in.src.ReadTimeout(timeout)
	if len(data) > 0 {
		in.pending = append(in.pending, DecodeKeys(data)...)
	}
	if err != nil {
		return monitor.KeyEvent{}, false, err
	}

	ev, ok := in.pop()
	return ev, ok, nil
}

func (in *Input) pop() (monitor.KeyEvent, bool) {
	if len(in.pending) == 0 {
		return monitor.KeyEvent{}, false
	}
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, true
}

type chunk struct {
	data []byte
	err  error
}

// readerSource turns a blocking reader into a deadline-aware source using
// one background goroutine. Used where poll(2) isn't available for ttys.
type readerSource struct {
	r      io.Reader
	once   sync.Once
	chunks chan chunk
	done   error // sticky error once the reader has failed
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{r: r, chunks: make(chan chunk, 16)}
}

// start launches the read loop. It cannot be cancelled: once nobody polls
// and chunks is full it blocks for good, and it ends with the process.
func (s *readerSource) start() {
	go func() {
		buf := make([]byte, readBufferSize)
		for {
			n, err := s.r.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				s.chunks <- chunk{data: data}
			}
			if err != nil {
				s.chunks <- chunk{err: err}
				close(s.chunks)
				return
			}
		}
	}()
}

func (s *readerSource) ReadTimeout(timeout time.Duration) ([]byte, error) {
	if s.done != nil {
		return nil, s.done
	}
	s.once.Do(s.start)

	if timeout <= 0 {
		select {
		case c, ok := <-s.chunks:
			return s.receive(c, ok)
		default:
			return nil, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case c, ok := <-s.chunks:
		return s.receive(c, ok)
	case <-timer.C:
		return nil, nil
	}
}

func (s *readerSource) receive(c chunk, ok bool) ([]byte, error) {
	if !ok {
		s.done = io.EOF
		return nil, s.done
	}
	if c.err != nil {
		s.done = c.err
		return nil, c.err
	}
	return c.data, nil
}
