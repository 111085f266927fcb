package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

func sampleCatalog() program.Catalog {
	talk := program.NewSession("sess200")
	talk.TypeName = "Talk"
	talk.Title = "Rendering & Simulation <Live>"
	talk.Link = "https://s2023.siggraph.org/session/?sess=sess200"
	talk.Location = "Room 403AB"
	talk.Date = "08-08"
	talk.Start = "09:00"
	talk.End = "10:30"
	talk.Recorded = program.StatusYes
	talk.Streamed = program.StatusNo
	talk.SubEvents = []program.SubEvent{
		{SSID: "pres1", Title: "First", Link: "https://s2023.siggraph.org/presentation/?id=1", Start: "09:00", End: "09:20", Recorded: program.StatusYes, Streamed: program.StatusUnknown},
	}

	poster := program.NewSession("sess201")
	poster.TypeName = "Poster"
	poster.Title = "Café Poster"
	poster.Date = "08-08"
	poster.Start = "10:00"
	poster.End = "17:00"
	poster.Recorded = program.StatusNo
	poster.Streamed = program.StatusNo

	return program.Catalog{talk, poster}
}

func TestMarshalCatalog(t *testing.T) {
	data, err := MarshalCatalog(sampleCatalog())
	if err != nil {
		t.Fatalf("MarshalCatalog() error: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "]\n") {
		t.Error("export should end with a newline")
	}
	if !strings.Contains(out, "Rendering & Simulation <Live>") {
		t.Error("export should not HTML-escape titles")
	}
	if !strings.Contains(out, "Café Poster") {
		t.Error("export should keep non-ASCII text as is")
	}
	if !strings.Contains(out, `"sub_events": []`) {
		t.Error("sessions without sub-events should export an empty list")
	}

	// field order is fixed
	evid := strings.Index(out, `"evid"`)
	typeName := strings.Index(out, `"type_name"`)
	subEvents := strings.Index(out, `"sub_events"`)
	if !(evid < typeName && typeName < subEvents) {
		t.Errorf("unexpected field order in export:\n%s", out)
	}
}

func TestMarshalCatalog_Empty(t *testing.T) {
	data, err := MarshalCatalog(nil)
	if err != nil {
		t.Fatalf("MarshalCatalog() error: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("MarshalCatalog(nil) = %q, want %q", data, "[]\n")
	}
}

func TestMarshalCatalog_Deterministic(t *testing.T) {
	first, err := MarshalCatalog(sampleCatalog())
	if err != nil {
		t.Fatal(err)
	}
	second, err := MarshalCatalog(sampleCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("MarshalCatalog() output differs between identical catalogs")
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "events.json")

	if err := SaveCatalog(path, sampleCatalog()); err != nil {
		t.Fatalf("SaveCatalog() error: %v", err)
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadCatalog() returned %d sessions, want 2", len(loaded))
	}
	if loaded[0].EvID != "sess200" || len(loaded[0].SubEvents) != 1 {
		t.Errorf("first session = %+v", loaded[0])
	}
	if loaded[1].SubEvents == nil {
		t.Error("loaded SubEvents should be non-nil")
	}

	// re-saving a loaded catalog reproduces the same bytes
	original, _ := os.ReadFile(path)
	again, err := MarshalCatalog(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(original, again) {
		t.Error("round-tripped export differs from original")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatalog(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadCatalog(missing) expected error, got nil")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(bad); err == nil {
		t.Error("LoadCatalog(bad) expected error, got nil")
	}
}

func TestLoadCatalog_NullSubEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(`[{"evid":"s1","sub_events":null}]`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if loaded[0].SubEvents == nil {
		t.Error("null sub_events should load as an empty list")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/data/events.json", filepath.Join(home, "data/events.json")},
		{"src/events.json", "src/events.json"},
		{"/tmp/x", "/tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			if err != nil {
				t.Fatalf("ExpandPath() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
