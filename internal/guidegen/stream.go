// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guidegen

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/myvision/guide-engine/pkg/types"
)

// eventKind tags the server-sent event variants the stream decoder cares
// about. Anything unrecognised is passed through as eventOther and ignored.
type eventKind int

const (
	eventOther eventKind = iota
	eventDelta
	eventStop
)

type streamEvent struct {
	kind eventKind
	text string
}

// ssePayload is the subset of the Anthropic streaming event body we decode.
type ssePayload struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

// Stream is an in-flight streaming generation. Drain Fragments, then check
// Err before trusting the accumulated content.
type Stream struct {
	fragments chan string
	err       error
	done      chan struct{}
}

// Fragments delivers text deltas in arrival order. The channel closes when
// the stream ends, whether normally or on error.
func (s *Stream) Fragments() <-chan string { return s.fragments }

// Err reports the terminal stream error, if any. Valid only after Fragments
// is closed.
func (s *Stream) Err() error {
	<-s.done
	return s.err
}

// GenerateStream starts a streaming generation call. Fragments arrive on the
// returned stream as the model produces them.
func (c *Client) GenerateStream(ctx context.Context, req types.GenerationRequest) (*Stream, error) {
	body, err := c.do(ctx, req, true)
	if err != nil {
		return nil, &StreamingError{Err: err}
	}

	s := &Stream{
		fragments: make(chan string),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer close(s.fragments)
		defer body.Close()

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			ev := parseEvent(scanner.Text())
			switch ev.kind {
			case eventDelta:
				select {
				case s.fragments <- ev.text:
				case <-ctx.Done():
					s.err = &StreamingError{Err: ctx.Err()}
					return
				}
			case eventStop:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.err = &StreamingError{Err: err}
		}
	}()

	return s, nil
}

// parseEvent decodes one SSE line. Only "data:" lines carry payloads; event
// name lines and blanks are framing.
func parseEvent(line string) streamEvent {
	data, ok := strings.CutPrefix(line, "data:")
	if !ok {
		return streamEvent{kind: eventOther}
	}
	var payload ssePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &payload); err != nil {
		return streamEvent{kind: eventOther}
	}
	switch payload.Type {
	case "content_block_delta":
		if payload.Delta.Type == "text_delta" {
			return streamEvent{kind: eventDelta, text: payload.Delta.Text}
		}
	case "message_stop":
		return streamEvent{kind: eventStop}
	}
	return streamEvent{kind: eventOther}
}

// Collect runs a streaming generation to completion, invoking onFragment for
// each delta as it arrives, and folds the fragments into a complete result.
// An exhausted stream with no content is a *StreamingError.
func (c *Client) Collect(ctx context.Context, req types.GenerationRequest, onFragment func(string)) (*types.GenerationResult, error) {
	stream, err := c.GenerateStream(ctx, req)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for fragment := range stream.Fragments() {
		sb.WriteString(fragment)
		if onFragment != nil {
			onFragment(fragment)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	if sb.Len() == 0 {
		return nil, &StreamingError{Err: errors.New("no content received from streaming API")}
	}

	return c.result(req, sb.String()), nil
}
