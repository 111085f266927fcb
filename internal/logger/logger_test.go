package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "Day 08 added 120 events",
			fields:  Fields{"day": 8},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "Session added",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "build failed",
			err:     errors.New("fetch failed"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := buf.Len()

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > before
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("build failed", Fields{"day": 9}, errors.New("unexpected page structure"))

	line := strings.TrimSpace(buf.String())
	var entry LogEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, line)
	}

	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "build failed" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Error != "unexpected page structure" {
		t.Errorf("Error = %q", entry.Error)
	}
	if entry.Fields["day"] != float64(9) {
		t.Errorf("Fields[day] = %v, want 9", entry.Fields["day"])
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", entry.Timestamp, err)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn logs at warn", LevelWarn, LevelWarn, true},
		{"info doesn't log at warn", LevelWarn, LevelInfo, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			logged := buf.Len() > 0
			if logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("sessions.emitted")
	m.IncrCounter("sessions.emitted")
	m.IncrCounter("sessions.emitted")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["sessions.emitted"] != 3 {
		t.Errorf("Counter = %v, want 3", counters["sessions.emitted"])
	}
	if m.Counter("sessions.emitted") != 3 {
		t.Errorf("Counter() = %v, want 3", m.Counter("sessions.emitted"))
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("catalog.sessions", 10)
	m.SetGauge("catalog.sessions", 25)

	snapshot := m.GetSnapshot()
	gauges := snapshot["gauges"].(map[string]float64)

	if gauges["catalog.sessions"] != 25 {
		t.Errorf("Gauge = %v, want 25", gauges["catalog.sessions"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("day.build", 100*time.Millisecond)
	m.RecordTiming("day.build", 200*time.Millisecond)
	m.RecordTiming("day.build", 150*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})

	dayTiming := timings["day.build"]
	if dayTiming["count"].(int) != 3 {
		t.Errorf("Timing count = %v, want 3", dayTiming["count"])
	}

	if dayTiming["min"].(string) != "100ms" {
		t.Errorf("Min timing = %v, want 100ms", dayTiming["min"])
	}

	if dayTiming["max"].(string) != "200ms" {
		t.Errorf("Max timing = %v, want 200ms", dayTiming["max"])
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("pages.downloaded")
	m.RecordTiming("pages.download", time.Second)

	m.Reset()

	if m.Counter("pages.downloaded") != 0 {
		t.Error("counter should be cleared by Reset")
	}
	timings := m.GetSnapshot()["timings"].(map[string]map[string]interface{})
	if len(timings) != 0 {
		t.Errorf("timings should be cleared by Reset, got %v", timings)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(LevelInfo, &buf))
	defer SetDefault(New(LevelInfo, &bytes.Buffer{}))

	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))
	Debug("hidden", nil)

	if lines := strings.Count(buf.String(), "\n"); lines != 3 {
		t.Errorf("logged %d lines, want 3", lines)
	}

	ResetMetrics()
	IncrCounter("test")
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	if CounterValue("test") != 1 {
		t.Errorf("CounterValue() = %d, want 1", CounterValue("test"))
	}
	if GetMetricsSnapshot() == nil {
		t.Error("GetMetricsSnapshot() returned nil")
	}
}
