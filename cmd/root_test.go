package cmd

import (
	"testing"
	"time"

	"github.com/nickng/dinephil/sim"
	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf := loadConfig()
	want := sim.DefaultConfig()
	if conf.Philosophers != want.Philosophers {
		t.Errorf("expected %d philosophers but got %d", want.Philosophers, conf.Philosophers)
	}
	if conf.Duration != want.Duration {
		t.Errorf("expected duration %s but got %s", want.Duration, conf.Duration)
	}
	if conf.Refresh != want.Refresh {
		t.Errorf("expected refresh %s but got %s", want.Refresh, conf.Refresh)
	}
	if conf.ThinkMin != want.ThinkMin || conf.ThinkMax != want.ThinkMax {
		t.Errorf("expected thinking %s-%s but got %s-%s", want.ThinkMin, want.ThinkMax, conf.ThinkMin, conf.ThinkMax)
	}
	if conf.EatMin != want.EatMin || conf.EatMax != want.EatMax {
		t.Errorf("expected eating %s-%s but got %s-%s", want.EatMin, want.EatMax, conf.EatMin, conf.EatMax)
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfigOverride(t *testing.T) {
	viper.Set(keyPhilosophers, 5)
	viper.Set(keyDuration, "3s")
	viper.Set(keyNoClear, true)
	defer func() {
		viper.Set(keyPhilosophers, sim.DefaultConfig().Philosophers)
		viper.Set(keyDuration, sim.DefaultConfig().Duration)
		viper.Set(keyNoClear, false)
	}()

	conf := loadConfig()
	if conf.Philosophers != 5 {
		t.Errorf("expected 5 philosophers but got %d", conf.Philosophers)
	}
	if conf.Duration != 3*time.Second {
		t.Errorf("expected duration 3s but got %s", conf.Duration)
	}
	if conf.Clear {
		t.Error("screen should not be cleared with no-clear set")
	}
}

func TestModelCommandsRegistered(t *testing.T) {
	for _, name := range []string{"dot", "cfsms", "migo"} {
		c, _, err := RootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("command %s: %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("expected command %s but found %s", name, c.Name())
		}
		if f := c.Flags().ShorthandLookup("n"); f == nil || f.Name != "philosophers" {
			t.Errorf("command %s should take -n/--philosophers", name)
		}
	}
}
