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
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nickng/dinephil/logwriter"
	"github.com/nickng/dinephil/sim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string // Path to config file
	logFile   string // Path to log file
	noLogging bool   // Turn off logging
	noColour  bool   // Turn of colour output
)

// Configuration keys, also the names of the root command flags.
const (
	keyPhilosophers = "philosophers"
	keyDuration     = "duration"
	keyRefresh      = "refresh"
	keyThinkMin     = "think-min"
	keyThinkMax     = "think-max"
	keyEatMin       = "eat-min"
	keyEatMax       = "eat-max"
	keyNoClear      = "no-clear"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dinephil",
	Short: "Dining philosophers simulation",
	Long: `dinephil seats philosophers at a round table and lets them think and eat
until the run time is up.

Philosophers take a seat at the table (one seat fewer than there are
philosophers), pick up the lower-numbered of their two forks first, and put
both down in reverse order. The table is redrawn on every refresh.

Run "dinephil" without arguments for the standard 60 second dinner of seven.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		simulate()
	},
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dinephil.yaml)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log", "", "path to log file (default is no log)")
	RootCmd.PersistentFlags().BoolVar(&noLogging, "no-logging", false, "disable logging")
	RootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")

	defaults := sim.DefaultConfig()
	flags := RootCmd.Flags()
	flags.IntP(keyPhilosophers, "n", defaults.Philosophers, "number of philosophers")
	flags.Duration(keyDuration, defaults.Duration, "run time of the dinner")
	flags.Duration(keyRefresh, defaults.Refresh, "time between table redraws")
	flags.Duration(keyThinkMin, defaults.ThinkMin, "shortest thinking time")
	flags.Duration(keyThinkMax, defaults.ThinkMax, "longest thinking time")
	flags.Duration(keyEatMin, defaults.EatMin, "shortest eating time")
	flags.Duration(keyEatMax, defaults.EatMax, "longest eating time")
	flags.Bool(keyNoClear, false, "do not clear the screen between redraws")
	for _, key := range []string{keyPhilosophers, keyDuration, keyRefresh, keyThinkMin, keyThinkMax, keyEatMin, keyEatMax, keyNoClear} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			log.Fatal(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".dinephil") // name of config file (without extension)
	viper.AddConfigPath("$HOME")     // adding home directory as first search path
	viper.SetEnvPrefix("dinephil")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openLog creates the log sink from the persistent flags.
func openLog() *logwriter.Writer {
	l := logwriter.NewFile(logFile, !noLogging, !noColour)
	if err := l.Create(); err != nil {
		log.Fatal(err)
	}
	return l
}
