package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"sakhi/internal/app"
)

func TestMain(m *testing.M) {
	// Deterministic rendering regardless of the terminal running tests.
	os.Setenv("SAKHI_NO_COLOR", "1")
	os.Exit(m.Run())
}

func testMessages() []app.Message {
	ts := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	return []app.Message{
		{ID: "m-1", Sender: app.SenderUser, Text: "What's the weather?", Timestamp: ts},
		{
			ID: "m-2", Sender: app.SenderAssistant, Text: "Weather update.",
			Timestamp:   ts.Add(time.Second),
			Suggestions: []string{"Irrigation tips", "Crop protection"},
		},
	}
}

func TestRenderMessage(t *testing.T) {
	theme := NewTheme()
	msgs := testMessages()

	user := renderMessage(theme, "Krishi Sakhi AI", msgs[0])
	if !strings.Contains(user, "You") || !strings.Contains(user, "09:30") {
		t.Fatalf("user message header malformed:\n%s", user)
	}
	if !strings.Contains(user, "What's the weather?") {
		t.Fatalf("user message body missing:\n%s", user)
	}

	bot := renderMessage(theme, "Krishi Sakhi AI", msgs[1])
	if !strings.Contains(bot, "Krishi Sakhi AI") {
		t.Fatalf("assistant name missing:\n%s", bot)
	}
}

func TestRenderTranscriptShowsSuggestionsOnlyForLatestReply(t *testing.T) {
	theme := NewTheme()
	msgs := testMessages()
	older := app.Message{
		ID: "m-0", Sender: app.SenderAssistant, Text: "Hello!",
		Timestamp:   msgs[0].Timestamp.Add(-time.Minute),
		Suggestions: []string{"Old chip"},
	}
	all := append([]app.Message{older}, msgs...)

	out := renderTranscript(theme, "Krishi Sakhi AI", all)
	if strings.Contains(out, "Old chip") {
		t.Fatalf("stale suggestions must not render:\n%s", out)
	}
	if !strings.Contains(out, "[1] Irrigation tips") || !strings.Contains(out, "[2] Crop protection") {
		t.Fatalf("latest suggestions missing:\n%s", out)
	}
}

func TestFormatAgo(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Minute, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, tc := range cases {
		if got := formatAgo(tc.d); got != tc.want {
			t.Fatalf("formatAgo(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormStepBounds(t *testing.T) {
	f := &profileForm{step: 1}
	if lo, hi := f.stepBounds(); lo != 0 || hi != farmerFieldCount-1 {
		t.Fatalf("step 1 bounds: %d..%d", lo, hi)
	}
	f.step = 2
	if lo, hi := f.stepBounds(); lo != farmerFieldCount || hi != fieldCount-1 {
		t.Fatalf("step 2 bounds: %d..%d", lo, hi)
	}
}

func TestFirstBadField(t *testing.T) {
	verr := &app.ValidationError{Fields: []string{"crop_type", "age"}}
	if got := firstBadField(verr); got != fieldAge {
		t.Fatalf("expected earliest form field (age), got %d", got)
	}
	if got := firstBadField(&app.ValidationError{Fields: []string{"bogus"}}); got != -1 {
		t.Fatalf("unknown field should give -1, got %d", got)
	}
}
