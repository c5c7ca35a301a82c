package format

import (
	"sync"
	"testing"

	spanerror "github.com/msto63/span/core/error"
)

func TestBuilderDefaults(t *testing.T) {
	cfg := NewBuilder().Build()

	if cfg.TimeFormat() != "%H:%M:%S" {
		t.Errorf("TimeFormat() = %q", cfg.TimeFormat())
	}
	if cfg.DateFormat() != "%Y-%m-%d" {
		t.Errorf("DateFormat() = %q", cfg.DateFormat())
	}
	if cfg.DateTimeFormat() != "%Y-%m-%d %H:%M:%S" {
		t.Errorf("DateTimeFormat() = %q", cfg.DateTimeFormat())
	}
}

func TestBuilderOverrides(t *testing.T) {
	tests := []struct {
		name         string
		build        func() *Config
		wantTime     string
		wantDate     string
		wantDateTime string
	}{
		{
			name: "all set",
			build: func() *Config {
				return NewBuilder().
					DateTimeFormat("%d/%m/%YT%H_%M_%S").
					DateFormat("%d/%m/%Y").
					TimeFormat("%H_%M_%S").
					Build()
			},
			wantTime:     "%H_%M_%S",
			wantDate:     "%d/%m/%Y",
			wantDateTime: "%d/%m/%YT%H_%M_%S",
		},
		{
			name: "datetime derived from overrides",
			build: func() *Config {
				return NewBuilder().DateFormat("%d/%m/%Y").TimeFormat("%H_%M_%S").Build()
			},
			wantTime:     "%H_%M_%S",
			wantDate:     "%d/%m/%Y",
			wantDateTime: "%d/%m/%Y %H_%M_%S",
		},
		{
			name: "zero value builder",
			build: func() *Config {
				var b Builder
				return b.TimeFormat("T%H:%M:%SZ.000").Build()
			},
			wantTime:     "T%H:%M:%SZ.000",
			wantDate:     "%Y-%m-%d",
			wantDateTime: "%Y-%m-%d T%H:%M:%SZ.000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.build()
			if cfg.TimeFormat() != tt.wantTime || cfg.DateFormat() != tt.wantDate || cfg.DateTimeFormat() != tt.wantDateTime {
				t.Errorf("got %s", cfg)
			}
		})
	}
}

func TestBuildNeverFailsButValidateReports(t *testing.T) {
	cfg := NewBuilder().DateFormat("%Y-%b-%d").Build()
	if cfg == nil {
		t.Fatal("Build() returned nil")
	}
	if err := cfg.Validate(); !spanerror.IsFormatError(err) {
		t.Errorf("Validate() = %v, want format error", err)
	}
	if err := NewBuilder().Build().Validate(); err != nil {
		t.Errorf("default Validate() = %v", err)
	}
}

func TestBuilderIsolation(t *testing.T) {
	b := NewBuilder().TimeFormat("%H:%M")
	first := b.Build()
	b.TimeFormat("%H")
	if first.TimeFormat() != "%H:%M" {
		t.Errorf("built config changed after builder mutation: %q", first.TimeFormat())
	}
}

func TestSetDefault(t *testing.T) {
	custom := NewBuilder().DateFormat("%d.%m.%Y").Build()
	prev := SetDefault(custom)
	defer SetDefault(prev)

	if Default() != custom {
		t.Error("Default() did not return the installed config")
	}
	if Resolve(nil) != custom {
		t.Error("Resolve(nil) should return the default")
	}
	other := NewBuilder().Build()
	if Resolve(other) != other {
		t.Error("Resolve(cfg) should return cfg")
	}
}

func TestConcurrentReaders(t *testing.T) {
	cfg := NewBuilder().Build()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cfg.DateTimeFormat()
				_ = Default().TimeFormat()
			}
		}()
	}
	wg.Wait()
}
