package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestTrimLineTerminator(t *testing.T) {
	tests := map[string]string{
		"word\n":     "word",
		"word\r\n":   "word",
		"  word  \n": "  word  ",
		"\n":         "",
		"word":       "word",
		"word\n\n":   "word\n",
		"tab\t\r\n":  "tab\t",
		"carriage\r": "carriage\r",
	}
	for in, want := range tests {
		if got := TrimLineTerminator(in); got != want {
			t.Errorf("TrimLineTerminator(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLineDriver_Input(t *testing.T) {
	var out bytes.Buffer
	d := NewLineDriver(strings.NewReader("first\r\n\n last"), &out)
	ctx := context.Background()

	for _, want := range []string{"first", "", " last"} {
		got, err := d.Input(ctx, InputConfig{Message: "go"})
		if err != nil {
			t.Fatalf("input: %v", err)
		}
		if got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
	}

	if _, err := d.Input(ctx, InputConfig{Message: "go"}); !errors.Is(err, ErrInputRead) {
		t.Fatalf("expected ErrInputRead at EOF, got %v", err)
	}
	if got := strings.Count(out.String(), "go\n"); got != 4 {
		t.Fatalf("expected 4 prompts written, got %d in %q", got, out.String())
	}
}

func TestLineDriver_CancelledContext(t *testing.T) {
	d := NewLineDriver(strings.NewReader("unused\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Input(ctx, InputConfig{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := d.Info(ctx, "msg"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Info, got %v", err)
	}
}

func TestLineDriver_Info(t *testing.T) {
	var out bytes.Buffer
	d := NewLineDriver(strings.NewReader(""), &out)
	if err := d.Info(context.Background(), "hello"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if out.String() != "hello\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestLineDriver_CancelUnblocksPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	d := NewLineDriver(pr, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := d.Input(ctx, InputConfig{Message: "name?"})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Input still blocked after cancel")
	}

	// The read left in flight is handed to the next Input.
	go func() {
		_, _ = io.WriteString(pw, "late\n")
	}()
	got, err := d.Input(context.Background(), InputConfig{})
	if err != nil {
		t.Fatalf("input after cancel: %v", err)
	}
	if got != "late" {
		t.Fatalf("want %q, got %q", "late", got)
	}
}
