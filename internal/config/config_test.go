package config

import (
	"os"
	"testing"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "KEIRSEY_QUESTIONS_PATH", "KEIRSEY_CATEGORIES_PATH", "KEIRSEY_LOG_LEVEL", "KEIRSEY_CLEAR_SCREEN", "NO_COLOR")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if !cfg.ClearScreen {
		t.Fatalf("expected clear screen enabled by default")
	}
	if cfg.ColorDisabled() || cfg.QuestionsPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("KEIRSEY_QUESTIONS_PATH", "/tmp/questions.json")
	t.Setenv("KEIRSEY_CATEGORIES_PATH", "/tmp/categories.yaml")
	t.Setenv("KEIRSEY_LOG_LEVEL", "debug")
	t.Setenv("KEIRSEY_CLEAR_SCREEN", "false")
	t.Setenv("NO_COLOR", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := Config{
		QuestionsPath:  "/tmp/questions.json",
		CategoriesPath: "/tmp/categories.yaml",
		LogLevel:       "debug",
		ClearScreen:    false,
		NoColor:        "true",
	}
	if *cfg != want {
		t.Fatalf("expected %+v, got %+v", want, *cfg)
	}
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	unsetEnv(t, "NO_COLOR")
	t.Setenv("KEIRSEY_CLEAR_SCREEN", "sometimes")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error for invalid bool")
	}
}

func TestLoadConfig_NoColorAnyValue(t *testing.T) {
	for _, val := range []string{"yes", "1", "anything"} {
		t.Setenv("NO_COLOR", val)
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("NO_COLOR=%q: expected no error, got %v", val, err)
		}
		if !cfg.ColorDisabled() {
			t.Fatalf("NO_COLOR=%q: expected color disabled", val)
		}
	}
}
