// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [flags] value",
	Short: "Re-render an integer in another radix.",
	Long: `Parse an integer under the --base radix and print it under the
	--to radix.  Both radices range over 2..36.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		var (
			value = readOperand(cmd, args[0])
			to    = GetUint(cmd, "to")
		)
		//
		if to < 2 || to > 36 {
			fmt.Printf("unsupported output radix %d\n", to)
			os.Exit(2)
		}
		//
		fmt.Println(value.Text(to))
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Uint("to", 10, "output radix (2..36)")
}
