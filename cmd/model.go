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
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	outfile   string // Path to output file
	modelSize int    // Number of philosophers in the exported model
)

// addModelFlags registers the flags shared by the model exporting commands.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outfile, "output", "", "output file (default is stdout)")
	cmd.Flags().IntVarP(&modelSize, "philosophers", "n", 7, "number of philosophers")
}

func checkModelSize() {
	if modelSize < 2 {
		log.Fatal(fmt.Errorf("need at least 2 philosophers, got %d", modelSize))
	}
}

// writeModel writes a model to the output file, or stdout if there is none.
func writeModel(m io.WriterTo) {
	if outfile == "" {
		if _, err := m.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := os.Create(outfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if _, err := m.WriteTo(f); err != nil {
		log.Fatal(err)
	}
}
