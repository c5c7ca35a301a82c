package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	spanerror "github.com/msto63/span/core/error"
)

var fixedTime = time.Date(2024, 11, 30, 6, 32, 28, 0, time.UTC)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "parsed value")
	e.Timestamp = fixedTime
	e.Logger = "span"
	e.WithField("kind", "Date").WithField("delta", 3)
	return e
}

func TestTextFormatter(t *testing.T) {
	got, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "06:32:28 [INF] {span} parsed value [delta=3 kind=Date]\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatterError(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	e := NewEntry(LevelError, "failed").WithError(errors.New("boom"))
	got, _ := f.Format(e)
	if string(got) != "[ERR] failed error=\"boom\"\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	got, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2024-11-30T06:32:28Z level=info message="parsed value" logger=span delta=3 kind="Date"` + "\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = spanerror.New("month 13 out of range").
		WithCode(spanerror.CodeValueOutOfRange).
		WithContext("Date").
		WithOperation("parse")

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["level"] != "info" || decoded["kind"] != "Date" || decoded["logger"] != "span" {
		t.Errorf("decoded = %v", decoded)
	}
	if decoded["error"] != "Date ➤ parse: month 13 out of range" {
		t.Errorf("error = %v", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok || details["code"] != "VALUE_OUT_OF_RANGE" {
		t.Errorf("error_details = %v", decoded["error_details"])
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON, FormatLogfmt} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
