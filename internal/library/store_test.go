// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	for i, topic := range []string{"VoiceOver basics", "JAWS shortcuts", "NVDA setup"} {
		err := s.Record(ctx, Entry{
			Title:     topic + " - Learning Guide",
			Topic:     topic,
			GuideType: "learning",
			Format:    "markdown",
			Path:      "/tmp/guide" + topic + ".md",
			Size:      1024,
			Created:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Topic != "NVDA setup" {
		t.Errorf("newest first: got %q", entries[0].Topic)
	}
	if entries[1].Topic != "JAWS shortcuts" {
		t.Errorf("second entry: got %q", entries[1].Topic)
	}
}

func TestRecordSamePathReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := Entry{
		Title:     "Voiceover Basics - Learning Guide",
		Topic:     "VoiceOver basics",
		GuideType: "learning",
		Format:    "markdown",
		Path:      "/tmp/guide.md",
		Size:      100,
		Created:   time.Now(),
	}
	if err := s.Record(ctx, e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	e.Size = 200
	if err := s.Record(ctx, e); err != nil {
		t.Fatalf("Record (replace): %v", err)
	}

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Size != 200 {
		t.Errorf("size = %d, want 200", entries[0].Size)
	}
}

func TestRecentEmptyStore(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
