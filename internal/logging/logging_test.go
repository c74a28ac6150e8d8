package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "none", input: "none", want: zerolog.Disabled},
		{name: "error", input: "error", want: zerolog.ErrorLevel},
		{name: "warn", input: "warn", want: zerolog.WarnLevel},
		{name: "warning alias", input: "warning", want: zerolog.WarnLevel},
		{name: "info", input: "info", want: zerolog.InfoLevel},
		{name: "debug", input: "debug", want: zerolog.DebugLevel},
		{name: "mixed case", input: "DeBuG", want: zerolog.DebugLevel},
		{name: "invalid defaults to info", input: "verbose", want: zerolog.InfoLevel, wantErr: true},
		{name: "empty defaults to info", input: "", want: zerolog.InfoLevel, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %t", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSetupRespectsLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := Setup("warn", &buf)

	logger.Info().Msg("hidden info line")
	logger.Warn().Msg("visible warn line")

	out := buf.String()
	if strings.Contains(out, "hidden info line") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "visible warn line") {
		t.Errorf("warn message missing from output: %s", out)
	}
}

func TestSetupInvalidLevelWarns(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup("bogus", &buf)
	if !strings.Contains(buf.String(), "Invalid log level") {
		t.Errorf("expected fallback warning, got: %s", buf.String())
	}
}

func TestNewLoggerCarriesComponent(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup("info", &buf)
	logger := NewLogger("hubspot-client")
	logger.Info().Msg("ping")
	if !strings.Contains(buf.String(), "hubspot-client") {
		t.Errorf("component field missing from output: %s", buf.String())
	}
}
