package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Warn("asset missing",
		String("name", "kick.wav"),
		Int("fragment", 2),
		Bool("skipped", true),
		Strings("tried", []string{"kick.wav", "kick.ogg"}),
		Err(errors.New("boom")),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got["level"] != "warn" || got["message"] != "asset missing" {
		t.Fatalf("unexpected record: %v", got)
	}
	if got["name"] != "kick.wav" || got["fragment"] != float64(2) || got["skipped"] != true {
		t.Fatalf("unexpected fields: %v", got)
	}
	if got["error"] != "boom" {
		t.Fatalf("error field = %v", got["error"])
	}
	if tried, ok := got["tried"].([]interface{}); !ok || len(tried) != 2 {
		t.Fatalf("tried field = %v", got["tried"])
	}
}

func TestRecorderFind(t *testing.T) {
	r := NewRecorder()
	r.Info("packed", String("name", "a"))
	r.Error("not found", String("name", "b"))
	r.Error("not found", String("name", "c"))

	found := r.Find("error", "not found")
	if len(found) != 2 {
		t.Fatalf("found %d entries, want 2", len(found))
	}
	if v, ok := found[1].Field("name"); !ok || v != "c" {
		t.Fatalf("name field = %v, %v", v, ok)
	}
	if _, ok := found[0].Field("missing"); ok {
		t.Fatal("unexpected field")
	}
}
