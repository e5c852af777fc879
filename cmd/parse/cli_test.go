package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, stdin string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	app := newCLIApp()
	var out bytes.Buffer
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"voice-worklog-parse"}, args...))
	return &out, err
}

func TestParseArgs(t *testing.T) {
	out, err := runApp(t, "", "das", "9h", "às", "11h30", "no", "projeto", "TJRJ")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got parseOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 150 {
		t.Errorf("duration_minutes = %v, want 150", got.DurationMinutes)
	}
	if got.StartTime == nil || got.StartTime.String() != "09:00" {
		t.Errorf("start_time = %v, want 09:00", got.StartTime)
	}
	if got.Project == nil || *got.Project != "TJRJ" {
		t.Errorf("project = %v, want TJRJ", got.Project)
	}
	if got.TimeSpent != "02:30" {
		t.Errorf("time_spent = %q, want 02:30", got.TimeSpent)
	}
}

func TestParseStdinLines(t *testing.T) {
	out, err := runApp(t, "das 9h às 10h\n\nprojeto delivery\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	dec := json.NewDecoder(out)
	var outs []parseOutput
	for dec.More() {
		var o parseOutput
		if err := dec.Decode(&o); err != nil {
			t.Fatalf("decode: %v", err)
		}
		outs = append(outs, o)
	}
	if len(outs) != 2 {
		t.Fatalf("got %d results, want 2", len(outs))
	}
	if outs[0].DurationMinutes == nil || *outs[0].DurationMinutes != 60 {
		t.Errorf("first duration = %v, want 60", outs[0].DurationMinutes)
	}
	if outs[1].Project == nil || *outs[1].Project != "DELIVERY" {
		t.Errorf("second project = %v, want DELIVERY", outs[1].Project)
	}
}

func TestParseCustomDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	yaml := "projects:\n  - code: ACME CORP\n    pattern: a[ck]me\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "", "--dictionary", path, "projeto acme")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var got parseOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Project == nil || *got.Project != "ACME CORP" {
		t.Errorf("project = %v, want ACME CORP", got.Project)
	}
}

func TestParseBadDictionary(t *testing.T) {
	_, err := runApp(t, "", "--dictionary", filepath.Join(t.TempDir(), "missing.yaml"), "das 9h às 10h")
	if err == nil {
		t.Fatal("expected error for missing dictionary")
	}
}
