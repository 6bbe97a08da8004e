// Package fingerprint computes content digests used for duplicate detection.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

const bufferSize = 32 * 1024

// Error reports a failed fingerprint attempt. The path is carried so the
// caller can exclude it from the result set and log the event.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fingerprint %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// File computes the 64-bit xxHash of the file's full byte content and
// returns it hex-encoded. Any I/O failure, including the file disappearing
// mid-scan, comes back as *Error; retry policy belongs to the caller.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}
	defer f.Close()

	h := xxhash.New()
	buf := make([]byte, bufferSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &Error{Path: path, Err: err}
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
