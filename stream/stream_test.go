package stream

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNDJSONSkipsMalformedLineAndContinues(t *testing.T) {
	in := strings.NewReader("{\"n\":1}\nnot json\n{\"n\":2}\n")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got []json.RawMessage
	for raw := range NDJSON[json.RawMessage](ctx, in) {
		got = append(got, raw)
	}
	if ctx.Err() != nil {
		t.Fatal("NDJSON did not return; a malformed line hung the decode")
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (the malformed line should be skipped, not hang or abort)", len(got))
	}
	if string(got[0]) != `{"n":1}` || string(got[1]) != `{"n":2}` {
		t.Fatalf("got %v", got)
	}
}

func TestNDJSONSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("{\"n\":1}\n\n   \n{\"n\":2}\n")
	ctx := context.Background()
	var got []json.RawMessage
	for raw := range NDJSON[json.RawMessage](ctx, in) {
		got = append(got, raw)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}
