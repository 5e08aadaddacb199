package sim

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	if err := conf.Validate(); err != nil {
		t.Fatalf("Expecting default config to be valid: %v", err)
	}
	if conf.Philosophers != 7 {
		t.Errorf("Expecting 7 philosophers but got %d", conf.Philosophers)
	}
	if conf.Duration != time.Minute {
		t.Errorf("Expecting a 60s run but got %s", conf.Duration)
	}
	if conf.Refresh != 200*time.Millisecond {
		t.Errorf("Expecting 200ms refresh but got %s", conf.Refresh)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"one philosopher", func(c *Config) { c.Philosophers = 1 }},
		{"no duration", func(c *Config) { c.Duration = 0 }},
		{"no refresh", func(c *Config) { c.Refresh = -time.Second }},
		{"negative think", func(c *Config) { c.ThinkMin = -time.Millisecond }},
		{"inverted think", func(c *Config) { c.ThinkMin, c.ThinkMax = time.Second, time.Millisecond }},
		{"inverted eat", func(c *Config) { c.EatMin, c.EatMax = time.Second, 0 }},
	}
	for _, tt := range tests {
		conf := DefaultConfig()
		tt.modify(conf)
		err := conf.Validate()
		if err == nil {
			t.Errorf("%s: expecting validation error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expecting ErrInvalidConfig but got %v", tt.name, err)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	conf := DefaultConfig()
	conf.Philosophers = 0
	if _, err := New(conf, nil, nil); err == nil {
		t.Error("Expecting New to reject an invalid config")
	}
}
