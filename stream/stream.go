// Package stream decodes newline-delimited JSON into a channel, so the
// trackfilter CLI can start building tracks before the whole fixture
// has been read off disk.
package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
)

// NDJSON reads one JSON value per line from in, emitting each on the
// returned channel. It scans line by line rather than decoding
// straight off the reader: a json.Decoder that hits a malformed value
// never advances past it, so re-decoding after a non-EOF error just
// re-reads the same bad bytes forever. Splitting on newlines first
// means a bad line is read and discarded exactly once, and the line
// after it is still reachable.
func NDJSON[T any](ctx context.Context, in io.Reader) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var element T
			if err := json.Unmarshal(line, &element); err != nil {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- element:
			}
		}
	}()
	return out
}
