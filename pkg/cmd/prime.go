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

	"github.com/consensys/go-zahl/pkg/zahl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// primeCmd represents the prime command
var primeCmd = &cobra.Command{
	Use:   "prime [flags] value",
	Short: "Test an integer for primality.",
	Long: `Test an integer for primality, reporting composite, probable prime
	or prime.  With --proof, a probabilistic verdict is escalated to a
	certificate; a verdict the machinery could not certify is reported
	alongside the failure rather than silently downgraded.`,
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
			proof = GetFlag(cmd, "proof")
		)
		//
		verdict, err := value.IsPrime(proof)
		// A test failure still carries the best verdict reached.
		if err != nil {
			fmt.Println(err)
		}
		//
		fmt.Println(renderVerdict(verdict))
		//
		if err != nil {
			os.Exit(3)
		}
	},
}

// Colour the verdict when attached to a terminal.
func renderVerdict(verdict zahl.Verdict) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return verdict.String()
	}
	//
	switch verdict {
	case zahl.Prime:
		return color.GreenString(verdict.String())
	case zahl.ProbablePrime:
		return color.YellowString(verdict.String())
	default:
		return color.RedString(verdict.String())
	}
}

func init() {
	rootCmd.AddCommand(primeCmd)
	primeCmd.Flags().Bool("proof", false, "escalate a probabilistic verdict to a certificate")
}
