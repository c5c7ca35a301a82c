package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/core/log"
	"github.com/msto63/span/clock"
	"github.com/msto63/span/format"
)

const tomlSettings = `
[format]
time = "T%H:%M:%SZ.000"
date = "%d.%m.%Y"

[clock]
source = "ntp"
zone = "UTC"
ntp_server = "time.example.org"
ntp_timeout = "3s"
`

const yamlSettings = `
format:
  datetime: "%Y-%m-%dT%H:%M:%S"
clock:
  source: utc
`

// noEnv isolates tests from the developer's environment
func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, dir, "span.toml", tomlSettings)
		cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, LookupEnv: noEnv})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML || cfg.FilePath() != path {
			t.Errorf("Format() = %v, FilePath() = %q", cfg.Format(), cfg.FilePath())
		}
		if got := cfg.GetString(KeyFormatTime); got != "T%H:%M:%SZ.000" {
			t.Errorf("GetString(format.time) = %q", got)
		}
		if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
			t.Errorf("GetString(missing) = %q", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, dir, "span.yml", yamlSettings)
		cfg, err := LoadWithOptions(path, LoadOptions{LookupEnv: noEnv, Format: FormatAuto})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString(KeyClockSource); got != "utc" {
			t.Errorf("GetString(clock.source) = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		if !spanerror.HasCode(err, spanerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); !spanerror.HasCode(err, spanerror.CodeInvalidInput) {
			t.Errorf("Load() error = %v", err)
		}
	})

	t.Run("broken toml", func(t *testing.T) {
		path := writeFile(t, dir, "broken.toml", "[format\ntime = ")
		if _, err := Load(path); !spanerror.HasCode(err, spanerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"span.toml": FormatTOML,
		"span.yaml": FormatYAML,
		"span.YML":  FormatYAML,
		"span.conf": FormatTOML,
		"settings":  FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	env := envMap(map[string]string{
		"SPAN_FORMAT_DATE":  "%Y/%m/%d",
		"SPAN_CLOCK_SOURCE": "utc",
	})
	cfg, err := LoadFromStringWithOptions(tomlSettings, LoadOptions{Format: FormatTOML, LookupEnv: env})
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetString(KeyFormatDate); got != "%Y/%m/%d" {
		t.Errorf("env override ignored: %q", got)
	}
	if got := cfg.GetString(KeyFormatTime); got != "T%H:%M:%SZ.000" {
		t.Errorf("file value lost: %q", got)
	}

	clk, err := cfg.Clock()
	if err != nil {
		t.Fatal(err)
	}
	if clk != clock.Clock(clock.UTC) {
		t.Errorf("Clock() = %#v, want clock.UTC", clk)
	}
}

func TestEnvPrefix(t *testing.T) {
	cfg := FromEnv(LoadOptions{EnvPrefix: "myapp", LookupEnv: envMap(map[string]string{
		"MYAPP_FORMAT_TIME": "%H.%M",
	})})
	if got := cfg.GetString(KeyFormatTime); got != "%H.%M" {
		t.Errorf("GetString() = %q", got)
	}
	if got := cfg.formatEnvKey(KeyNTPTimeout); got != "MYAPP_CLOCK_NTP_TIMEOUT" {
		t.Errorf("formatEnvKey() = %q", got)
	}
}

func TestFormatConfig(t *testing.T) {
	cfg, err := LoadFromStringWithOptions(tomlSettings, LoadOptions{Format: FormatTOML, LookupEnv: noEnv})
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cfg.FormatConfig()
	if err != nil {
		t.Fatal(err)
	}
	if fc.TimeFormat() != "T%H:%M:%SZ.000" || fc.DateFormat() != "%d.%m.%Y" {
		t.Errorf("FormatConfig() = %s", fc)
	}
	if fc.DateTimeFormat() != "%d.%m.%Y T%H:%M:%SZ.000" {
		t.Errorf("derived datetime = %q", fc.DateTimeFormat())
	}
}

func TestFormatConfigInvalid(t *testing.T) {
	cfg := FromEnv(LoadOptions{LookupEnv: envMap(map[string]string{"SPAN_FORMAT_TIME": "%Y"})})
	_, err := cfg.FormatConfig()
	if !spanerror.HasCode(err, spanerror.CodeInvalidConfig) {
		t.Fatalf("FormatConfig() error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "invalid format configuration") {
		t.Errorf("error = %v", err)
	}
}

func TestFormatConfigKeepsFormatError(t *testing.T) {
	cfg, err := LoadFromStringWithOptions("[format]\ntime = \"%H:%Q\"\n", LoadOptions{Format: FormatTOML, LookupEnv: noEnv})
	if err != nil {
		t.Fatal(err)
	}
	_, err = cfg.FormatConfig()
	if !spanerror.HasCode(err, spanerror.CodeInvalidConfig) {
		t.Errorf("FormatConfig() error = %v, want INVALID_CONFIG", err)
	}
	if !spanerror.IsFormatError(err) {
		t.Errorf("IsFormatError(%v) = false, want true", err)
	}
	if err := cfg.Apply(); !spanerror.IsFormatError(err) {
		t.Errorf("Apply() error = %v, want a format error", err)
	}
}

func TestClock(t *testing.T) {
	t.Run("ntp", func(t *testing.T) {
		cfg, err := LoadFromStringWithOptions(tomlSettings, LoadOptions{Format: FormatTOML, LookupEnv: noEnv})
		if err != nil {
			t.Fatal(err)
		}
		clk, err := cfg.Clock()
		if err != nil {
			t.Fatal(err)
		}
		n, ok := clk.(clock.NTP)
		if !ok {
			t.Fatalf("Clock() = %T, want clock.NTP", clk)
		}
		if n.Server != "time.example.org" || n.Timeout != 3*time.Second || n.Location != time.UTC {
			t.Errorf("NTP = %+v", n)
		}
	})

	t.Run("ntp defaults", func(t *testing.T) {
		cfg := FromEnv(LoadOptions{LookupEnv: envMap(map[string]string{"SPAN_CLOCK_SOURCE": "NTP"})})
		clk, err := cfg.Clock()
		if err != nil {
			t.Fatal(err)
		}
		n := clk.(clock.NTP)
		if n.Server != clock.DefaultNTPServer || n.Timeout != clock.DefaultNTPTimeout {
			t.Errorf("NTP = %+v", n)
		}
	})

	t.Run("numeric timeout", func(t *testing.T) {
		cfg, err := LoadFromStringWithOptions("[clock]\nsource = \"ntp\"\nntp_timeout = 2\n",
			LoadOptions{Format: FormatTOML, LookupEnv: noEnv})
		if err != nil {
			t.Fatal(err)
		}
		clk, err := cfg.Clock()
		if err != nil {
			t.Fatal(err)
		}
		if n := clk.(clock.NTP); n.Timeout != 2*time.Second {
			t.Errorf("Timeout = %v", n.Timeout)
		}
	})

	t.Run("system default", func(t *testing.T) {
		clk, err := FromEnv(LoadOptions{LookupEnv: noEnv}).Clock()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := clk.(clock.System); !ok {
			t.Errorf("Clock() = %T, want clock.System", clk)
		}
	})

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"SPAN_CLOCK_SOURCE": "sundial"}},
		{"unknown zone", map[string]string{"SPAN_CLOCK_ZONE": "Mars/Olympus_Mons"}},
		{"bad timeout", map[string]string{"SPAN_CLOCK_SOURCE": "ntp", "SPAN_CLOCK_NTP_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(LoadOptions{LookupEnv: envMap(tt.env)}).Clock()
			if !spanerror.HasCode(err, spanerror.CodeInvalidConfig) {
				t.Errorf("Clock() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	prevFormat := format.Default()
	prevClock := clock.Default()
	defer func() {
		format.SetDefault(prevFormat)
		clock.SetDefault(prevClock)
	}()

	cfg, err := LoadFromStringWithOptions(yamlSettings, LoadOptions{Format: FormatYAML, LookupEnv: noEnv})
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Apply(); err != nil {
		t.Fatal(err)
	}
	if got := format.Default().DateTimeFormat(); got != "%Y-%m-%dT%H:%M:%S" {
		t.Errorf("default datetime format = %q", got)
	}
	if clock.Default() != clock.Clock(clock.UTC) {
		t.Errorf("default clock = %#v", clock.Default())
	}
}

func TestApplyInstallsNothingOnError(t *testing.T) {
	before := format.Default()
	cfg := FromEnv(LoadOptions{LookupEnv: envMap(map[string]string{
		"SPAN_FORMAT_DATE":  "%d.%m.%Y",
		"SPAN_CLOCK_SOURCE": "sundial",
	})})
	if err := cfg.Apply(); err == nil {
		t.Fatal("Apply() should fail")
	}
	if format.Default() != before {
		t.Error("format default changed despite error")
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &buf})
	cfg, err := LoadFromStringWithOptions(tomlSettings, LoadOptions{Format: FormatTOML, LookupEnv: noEnv, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.FormatConfig(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `message="format configuration resolved"`) {
		t.Errorf("debug trace missing: %q", buf.String())
	}
}

func TestSetAndHas(t *testing.T) {
	cfg := FromEnv(LoadOptions{LookupEnv: noEnv})
	if cfg.Has(KeyFormatTime) {
		t.Error("empty config reports format.time")
	}
	cfg.Set(KeyFormatTime, "%H:%M")
	if !cfg.Has(KeyFormatTime) || cfg.GetString(KeyFormatTime) != "%H:%M" {
		t.Errorf("Set() not visible: %q", cfg.GetString(KeyFormatTime))
	}
	if !strings.Contains(cfg.String(), "sections=[format]") {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestSetWinsOverEnvironment(t *testing.T) {
	cfg, err := LoadFromStringWithOptions(tomlSettings, LoadOptions{
		Format:    FormatTOML,
		LookupEnv: envMap(map[string]string{"SPAN_FORMAT_DATE": "%Y/%m/%d", "SPAN_FORMAT_TIME": "%H.%M"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg.Set(KeyFormatDate, "%j.%Y")

	if got := cfg.GetString(KeyFormatDate); got != "%j.%Y" {
		t.Errorf("GetString(format.date) = %q, want the Set value", got)
	}
	if got := cfg.GetString(KeyFormatTime); got != "%H.%M" {
		t.Errorf("GetString(format.time) = %q, environment should still apply", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "missing"), dir},
		Filenames:  []string{"span"},
		Extensions: []string{".toml", ".yaml"},
		Load:       LoadOptions{LookupEnv: noEnv, Format: FormatAuto},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() without files error = %v", err)
	}
	if cfg.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
	}

	opts.Required = true
	if _, err := Discover(opts); !spanerror.HasCode(err, spanerror.CodeNotFound) {
		t.Errorf("Discover(required) error = %v", err)
	}

	path := writeFile(t, dir, "span.yaml", yamlSettings)
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePath() != path || cfg.Format() != FormatYAML {
		t.Errorf("Discover() loaded %q (%v)", cfg.FilePath(), cfg.Format())
	}

	if got := len(ListPossibleConfigFiles(opts)); got != 4 {
		t.Errorf("ListPossibleConfigFiles() = %d paths, want 4", got)
	}
}
