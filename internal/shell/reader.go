package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// lineReader reads lines on a helper goroutine so a blocked read can be
// abandoned when the context is cancelled.
type lineReader struct {
	in    io.Reader
	lines chan lineResult
	done  chan struct{}
	err   error

	startOnce sync.Once
	closeOnce sync.Once
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		in:    in,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

func (r *lineReader) start() {
	go func() {
		br := bufio.NewReader(r.in)
		for {
			line, err := br.ReadString('\n')
			if err == nil || (errors.Is(err, io.EOF) && line != "") {
				// Lines have no length limit; a final line without a
				// terminator is still delivered before EOF.
				select {
				case r.lines <- lineResult{text: strings.TrimRight(line, "\r\n")}:
				case <-r.done:
					return
				}
				if err == nil {
					continue
				}
			}
			select {
			case r.lines <- lineResult{err: err}:
			case <-r.done:
			}
			return
		}
	}()
}

// ReadLine returns the next line without its terminator. Once the input
// ends every later call returns the same error.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.startOnce.Do(r.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-r.lines:
		if res.err != nil {
			r.err = res.err
		}
		return res.text, res.err
	}
}

// Close releases the reader goroutine unless it is blocked inside a read
// of the underlying input.
func (r *lineReader) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}
