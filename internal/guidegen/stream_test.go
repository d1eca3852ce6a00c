// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guidegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/myvision/guide-engine/pkg/types"
)

func sseHandler(fragments []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: message_start\n")
		fmt.Fprint(w, "data: {\"type\":\"message_start\"}\n\n")
		for _, f := range fragments {
			fmt.Fprint(w, "event: content_block_delta\n")
			fmt.Fprintf(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":%q}}\n\n", f)
		}
		fmt.Fprint(w, "event: message_stop\n")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	}
}

func TestGenerateStreamOrder(t *testing.T) {
	fragments := []string{"# Voiceover", " Basics", "\n\nStep one."}
	c := testClient(t, sseHandler(fragments))

	stream, err := c.GenerateStream(context.Background(), types.GenerationRequest{Topic: "VoiceOver basics"})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	var got []string
	for f := range stream.Fragments() {
		got = append(got, f)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}

	if len(got) != len(fragments) {
		t.Fatalf("got %d fragments, want %d", len(got), len(fragments))
	}
	for i := range fragments {
		if got[i] != fragments[i] {
			t.Errorf("fragment %d = %q, want %q", i, got[i], fragments[i])
		}
	}
}

func TestCollect(t *testing.T) {
	c := testClient(t, sseHandler([]string{"Hello", ", ", "world"}))

	var seen []string
	res, err := c.Collect(context.Background(), types.GenerationRequest{Topic: "TalkBack gestures"}, func(f string) {
		seen = append(seen, f)
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if res.Content != "Hello, world" {
		t.Errorf("content = %q", res.Content)
	}
	if strings.Join(seen, "") != "Hello, world" {
		t.Errorf("callback saw %q", strings.Join(seen, ""))
	}
	if res.Title != "Talkback Gestures - Learning Guide" {
		t.Errorf("title = %q", res.Title)
	}
}

func TestCollectEmptyStream(t *testing.T) {
	c := testClient(t, sseHandler(nil))

	_, err := c.Collect(context.Background(), types.GenerationRequest{Topic: "ZoomText"}, nil)
	var streamErr *StreamingError
	if !errors.As(err, &streamErr) {
		t.Fatalf("error = %v, want *StreamingError", err)
	}
	if !strings.Contains(err.Error(), "no content received") {
		t.Errorf("error = %v", err)
	}
}

func TestCollectIgnoresUnknownEvents(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"type\":\"content_block_start\",\"content_block\":{\"type\":\"text\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"ok\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"ping\"}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	})

	res, err := c.Collect(context.Background(), types.GenerationRequest{Topic: "Dictation"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if res.Content != "ok" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestGenerateStreamHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GenerateStream(context.Background(), types.GenerationRequest{Topic: "JAWS"})
	var streamErr *StreamingError
	if !errors.As(err, &streamErr) {
		t.Fatalf("error = %v, want *StreamingError", err)
	}
	if !strings.Contains(err.Error(), "failed to stream guide generation") {
		t.Errorf("error = %v", err)
	}
}
