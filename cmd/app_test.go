package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/capgains/alpaca"
	"github.com/etnz/capgains/robinhood"
	"github.com/rs/zerolog"
)

func TestResolveConfig(t *testing.T) {
	testCases := []struct {
		name  string
		flags map[string]string
		env   map[string]string
		want  Config
	}{
		{
			name: "defaults",
			want: Config{Inputs: "inputs", Outputs: "outputs", Source: SourceRobinhood, LogLevel: zerolog.WarnLevel},
		},
		{
			name: "legacy environment",
			env:  map[string]string{"INPUTS": "in", "OUTPUTS": "out"},
			want: Config{Inputs: "in", Outputs: "out", Source: SourceRobinhood, LogLevel: zerolog.WarnLevel},
		},
		{
			name: "prefixed environment wins over legacy",
			env:  map[string]string{"INPUTS": "in", EnvInputs: "cgt-in", EnvSource: "Alpaca", EnvLogLevel: "debug"},
			want: Config{Inputs: "cgt-in", Outputs: "outputs", Source: SourceAlpaca, LogLevel: zerolog.DebugLevel},
		},
		{
			name:  "flags win over environment",
			flags: map[string]string{EnvInputs: "flag-in", EnvSource: "robinhood", EnvLogLevel: "error"},
			env:   map[string]string{EnvInputs: "cgt-in", EnvSource: "alpaca", EnvLogLevel: "debug"},
			want:  Config{Inputs: "flag-in", Outputs: "outputs", Source: SourceRobinhood, LogLevel: zerolog.ErrorLevel},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveConfig(tc.flags, func(k string) string { return tc.env[k] })
			if err != nil {
				t.Fatalf("resolveConfig() unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("resolveConfig() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	getenv := func(string) string { return "" }
	if _, err := resolveConfig(map[string]string{EnvSource: "etrade"}, getenv); err == nil {
		t.Error("resolveConfig() accepted an unknown source")
	}
	if _, err := resolveConfig(map[string]string{EnvLogLevel: "loud"}, getenv); err == nil {
		t.Error("resolveConfig() accepted an unknown log level")
	}
}

func TestConfig_Decoder(t *testing.T) {
	if _, ok := (Config{Source: SourceAlpaca}).Decoder().(alpaca.Decoder); !ok {
		t.Error("Decoder() for alpaca is not an alpaca.Decoder")
	}
	if _, ok := (Config{Source: SourceRobinhood}).Decoder().(robinhood.Decoder); !ok {
		t.Error("Decoder() for robinhood is not a robinhood.Decoder")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("loadDotEnv(missing) = %v, want nil", err)
	}

	bad := filepath.Join(dir, "bad.env")
	if err := os.WriteFile(bad, []byte("CGT_INPUTS=\"in\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadDotEnv(bad); err == nil {
		t.Error("loadDotEnv(bad) = nil, want a parse error")
	}

	const key = "CGT_TEST_DOTENV_OUTPUTS"
	good := filepath.Join(dir, "good.env")
	if err := os.WriteFile(good, []byte(key+"=reports\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })
	if err := loadDotEnv(good); err != nil {
		t.Fatalf("loadDotEnv(good) unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "reports" {
		t.Errorf("%s = %q, want %q", key, got, "reports")
	}
}
