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

	"github.com/nickng/dinephil/model"
	"github.com/spf13/cobra"
)

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Draw the table as a Graphviz graph",
	Long: `Draw the table as a Graphviz graph

Every philosopher has an edge to the seat gate and to its two forks, labelled
with the order in which they are taken.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		drawTable()
	},
}

func init() {
	addModelFlags(dotCmd)

	RootCmd.AddCommand(dotCmd)
}

func drawTable() {
	checkModelSize()
	l := openLog()
	defer l.Cleanup()

	dot, err := model.NewGraphvizDot(modelSize)
	if err != nil {
		log.Fatal(err)
	}
	l.Logger().Info("table drawn", zapSize())
	writeModel(dot)
}
