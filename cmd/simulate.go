// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickng/dinephil/display"
	"github.com/nickng/dinephil/sim"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loadConfig builds the dinner configuration from flags, environment and
// config file.
func loadConfig() *sim.Config {
	conf := sim.DefaultConfig()
	conf.Philosophers = viper.GetInt(keyPhilosophers)
	conf.Duration = viper.GetDuration(keyDuration)
	conf.Refresh = viper.GetDuration(keyRefresh)
	conf.ThinkMin = viper.GetDuration(keyThinkMin)
	conf.ThinkMax = viper.GetDuration(keyThinkMax)
	conf.EatMin = viper.GetDuration(keyEatMin)
	conf.EatMax = viper.GetDuration(keyEatMax)
	conf.Clear = !viper.GetBool(keyNoClear) && display.IsTerminal(os.Stdout)
	return conf
}

// simulate runs a dinner on standard output until the run time is up or the
// process is interrupted.
func simulate() {
	l := openLog()
	defer l.Cleanup()
	logger := l.Logger()
	defer logger.Sync()

	s, err := sim.New(loadConfig(), os.Stdout, logger)
	if err != nil {
		log.Fatal(err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	go s.Run()

	select {
	case <-s.Done:
	case sig := <-interrupt:
		logger.Info("signal received", zap.Stringer("signal", sig))
		s.Stop()
		<-s.Done
	}
}
