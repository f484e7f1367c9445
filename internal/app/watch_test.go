package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatched(t *testing.T) {
	exts := []string{"wav", "ogg"}
	tests := []struct {
		name string
		want bool
	}{
		{"/song/song.bmson", true},
		{"/song/other.bmson", false},
		{"/song/kick.WAV", true},
		{"/song/0.crasset", false},
		{"/song/assets.json", false},
	}
	for _, tt := range tests {
		if got := watched(tt.name, "/song/song.bmson", exts); got != tt.want {
			t.Errorf("watched(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatchRepacksOnChange(t *testing.T) {
	dir, input := songDir(t)
	c, store := newTestConverter(dir, dir, 10, false, nil)

	runs := make(chan *Summary, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, input, WatchConfig{
			Extensions: []string{"wav", "ogg"},
			Debounce:   50 * time.Millisecond,
			OnRun: func(s *Summary, err error) {
				if err != nil {
					t.Errorf("pack failed: %v", err)
				}
				runs <- s
			},
		})
	}()

	waitRun := func() *Summary {
		t.Helper()
		select {
		case s := <-runs:
			return s
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a pack run")
			return nil
		}
	}

	first := waitRun()
	if first == nil || first.Bytes != 18 {
		t.Fatalf("first run = %+v", first)
	}

	writeTestFile(t, filepath.Join(dir, "b.ogg"), bytesOf(7, 50))

	second := waitRun()
	if second == nil || second.Bytes != 22 {
		t.Fatalf("second run = %+v", second)
	}

	frag, err := store.ReadFragment(2)
	if err != nil {
		t.Fatalf("read fragment 2: %v", err)
	}
	if len(frag) != 2 {
		t.Fatalf("fragment 2 has %d bytes, want 2", len(frag))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
