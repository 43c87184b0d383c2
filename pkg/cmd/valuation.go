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

// valCmd represents the val command
var valCmd = &cobra.Command{
	Use:   "val [flags] value modulus",
	Short: "Compute a p-adic valuation.",
	Long: `Compute the exponent of the largest power of the modulus dividing
	the given value exactly, along with the remaining unit part.  The
	value must be non-zero and the modulus at least two.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		var (
			value   = readOperand(cmd, args[0])
			modulus = readOperand(cmd, args[1])
			base    = GetUint(cmd, "base")
		)
		//
		k, unit, err := value.ValUnit(modulus)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "unit") {
			fmt.Printf("%d %s\n", k, unit.Text(base))
		} else {
			fmt.Println(k)
		}
	},
}

func init() {
	rootCmd.AddCommand(valCmd)
	valCmd.Flags().Bool("unit", false, "also print the unit part")
}
