package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" ERROR ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInit_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("component", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"hello"`) || !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestInit_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "error", Output: &buf})

	log.Debug().Msg("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("debug output below configured level: %s", buf.String())
	}

	log.Error().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("error output missing: %s", buf.String())
	}
}
