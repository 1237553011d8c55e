//go:build darwin || linux

package gst

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPlayerConfigValidation(t *testing.T) {
	if _, err := NewPlayer(PlayerConfig{}); err == nil {
		t.Fatal("expected an error for a missing description")
	}
}

func TestPlayerRunToEOS(t *testing.T) {
	requireGst(t)
	if !HasElement("videotestsrc") {
		t.Skip("videotestsrc not available")
	}

	player, err := NewPlayer(PlayerConfig{
		Description: "videotestsrc num-buffers=30 ! fakesink",
		Logger:      zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	defer player.Close()

	outcome, err := player.Run(DurationToClockTime(15 * time.Second))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !outcome.EOS() {
		t.Fatalf("expected eos outcome, got %s (%s)", outcome.Type, outcome.Error)
	}
	if err := player.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestPlayerRunToError(t *testing.T) {
	requireGst(t)

	player, err := NewPlayer(PlayerConfig{
		Description: "filesrc location=/nonexistent/definitely-missing.webm ! fakesink",
	})
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	defer player.Close()

	outcome, err := player.Run(DurationToClockTime(15 * time.Second))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if outcome.Type != MessageError {
		t.Fatalf("expected error outcome, got %s", outcome.Type)
	}
	if outcome.Error == "" {
		t.Error("expected a non-empty error message")
	}
	if outcome.Source == "" {
		t.Error("expected a source element name")
	}
}

func TestPlayerBadDescription(t *testing.T) {
	requireGst(t)

	if _, err := NewPlayer(PlayerConfig{Description: "no-such-element ! whatever"}); err == nil {
		t.Fatal("expected an error for an unparsable description")
	}
}

func TestPlayerCloseIsIdempotent(t *testing.T) {
	requireGst(t)

	player, err := NewPlayer(PlayerConfig{Description: "fakesrc ! fakesink"})
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	if err := player.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := player.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestPlayerWaitZeroTimeout(t *testing.T) {
	requireGst(t)

	player, err := NewPlayer(PlayerConfig{Description: "fakesrc ! fakesink"})
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	defer player.Close()

	// Nothing is playing, so an immediate pop must come back empty.
	if _, err := player.Wait(0); err == nil {
		t.Fatal("expected an error from a zero-timeout wait on an idle bus")
	}
}
