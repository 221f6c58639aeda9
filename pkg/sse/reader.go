// Package sse reads the data lines of a text/event-stream response body.
package sse

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Done is the sentinel data payload OpenAI-compatible APIs send last.
const Done = "[DONE]"

// ErrStop can be returned by a callback to end reading without error.
var ErrStop = errors.New("sse: stop")

const maxLineSize = 1024 * 1024

// Read calls fn with the payload of every event in r. Multi-line data fields
// are joined with "\n"; comments and other fields are ignored.
func Read(r io.Reader, fn func(data string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var data []string
	flush := func() error {
		if len(data) == 0 {
			return nil
		}
		payload := strings.Join(data, "\n")
		data = data[:0]
		return fn(payload)
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if err := flush(); err != nil {
				return stop(err)
			}
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return stop(flush())
}

func stop(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
