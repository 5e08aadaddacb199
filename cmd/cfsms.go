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
	"os"

	"github.com/nickng/dinephil/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfsmsCmd represents the cfsms command
var cfsmsCmd = &cobra.Command{
	Use:   "cfsms",
	Short: "Export the dinner protocol as CFSMs",
	Long: `Export the dinner protocol as CFSMs

One machine is generated per philosopher, one per fork and one for the seat
gate. The output can be fed to a global graph synthesis tool to check the
protocol for deadlocks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		extractCFSMs()
	},
}

func init() {
	addModelFlags(cfsmsCmd)

	RootCmd.AddCommand(cfsmsCmd)
}

func extractCFSMs() {
	checkModelSize()
	l := openLog()
	defer l.Cleanup()

	sys := model.NewCFSMs(modelSize)
	l.Logger().Info("CFSMs built", zapSize())
	sys.PrintSummary(os.Stderr)
	writeModel(sys)
}

func zapSize() zap.Field { return zap.Int("philosophers", modelSize) }
