//go:build linux

package terminal

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fdSource waits on the terminal with poll(2), so no goroutine is involved.
type fdSource struct {
	fd  int
	buf []byte
}

func newFileSource(f *os.File) byteSource {
	return &fdSource{fd: int(f.Fd()), buf: make([]byte, readBufferSize)}
}

func (s *fdSource) ReadTimeout(timeout time.Duration) ([]byte, error) {
	// Round up so a sub-millisecond budget still waits instead of spinning.
	ms := int((timeout + time.Millisecond - 1) / time.Millisecond)
	if timeout <= 0 {
		ms = 0
	}

	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	revents := fds[0].Revents
	if revents&unix.POLLNVAL != 0 {
		return nil, fmt.Errorf("poll stdin: invalid descriptor")
	}
	if revents&unix.POLLIN == 0 && revents&(unix.POLLHUP|unix.POLLERR) != 0 {
		return nil, io.EOF
	}

	r, err := unix.Read(s.fd, s.buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if r == 0 {
		return nil, io.EOF
	}

	data := make([]byte, r)
	copy(data, s.buf[:r])
	return data, nil
}
