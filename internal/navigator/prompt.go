package navigator

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// ErrInterrupted is returned by a prompt aborted by the user.
var ErrInterrupted = errors.New("interrupted by user")

// lineReader delivers input lines on a channel so a prompt can wait for a
// line, an interrupt and cancellation at once.
type lineReader struct {
	lines chan string
	stop  chan struct{}
	once  sync.Once

	mu  sync.Mutex
	err error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		stop:  make(chan struct{}),
	}
	go lr.run(r)
	return lr
}

func (lr *lineReader) run(r io.Reader) {
	defer close(lr.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lr.lines <- scanner.Text():
		case <-lr.stop:
			return
		}
	}

	lr.mu.Lock()
	lr.err = scanner.Err()
	lr.mu.Unlock()
}

// Err returns the read error that ended input, or nil for a clean EOF.
func (lr *lineReader) Err() error {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.err
}

// Close releases the reader goroutine if it is waiting to deliver a line.
func (lr *lineReader) Close() {
	lr.once.Do(func() { close(lr.stop) })
}
