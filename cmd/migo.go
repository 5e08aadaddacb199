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
	"strings"

	"github.com/nickng/dinephil/model"
	"github.com/nickng/migo/v3/migoutil"
	"github.com/spf13/cobra"
)

// migoCmd represents the migo command
var migoCmd = &cobra.Command{
	Use:   "migo",
	Short: "Export the dinner protocol as MiGo types",
	Long: `Export the dinner protocol as MiGo types

Seats and forks become buffered channels used as semaphores, so the program
can be checked for liveness and deadlock freedom with a MiGo checker.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		extractMigo()
	},
}

func init() {
	addModelFlags(migoCmd)

	RootCmd.AddCommand(migoCmd)
}

func extractMigo() {
	checkModelSize()
	l := openLog()
	defer l.Cleanup()

	prog := model.NewProgram(modelSize)
	migoutil.SimplifyProgram(prog)
	l.Logger().Info("MiGo program built", zapSize())
	writeModel(strings.NewReader(prog.String()))
}
