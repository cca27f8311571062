//go:build !linux

package terminal

import "os"

// poll(2) rejects tty descriptors on some platforms (notably macOS), so
// fall back to a background reader.
func newFileSource(f *os.File) byteSource {
	return newReaderSource(f)
}
