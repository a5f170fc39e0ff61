package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogWritesCategory(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	Log("tick", "step=%d", 3)
	if !strings.Contains(buf.String(), "tick") || !strings.Contains(buf.String(), "step=3") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestLogDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	Disable()

	Log("tick", "hidden")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	for i := 0; i < 9; i++ {
		LogEvery(3, "every", "frame")
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", n, buf.String())
	}
}

func TestLogEveryNonPositiveLogsEachCall(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	LogEvery(0, "every0", "frame")
	LogEvery(-2, "every0", "frame")
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", n, buf.String())
	}
}
