package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/config"

	"github.com/sirupsen/logrus"
)

func TestRulesCommand(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"rules"})

	if err := root.Execute(); err != nil {
		t.Fatalf("rules command failed: %v", err)
	}
	if !strings.Contains(buf.String(), "spock") {
		t.Errorf("expected the rules table, got:\n%s", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	log := newLogger(cfg, false)
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected a JSON formatter, got %T", log.Formatter)
	}

	cfg.LogLevel = "chatty"
	if got := newLogger(cfg, true).GetLevel(); got != logrus.InfoLevel {
		t.Errorf("unparsable level should fall back to info, got %s", got)
	}
}
