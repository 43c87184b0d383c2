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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-zahl/pkg/zahl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse a command-line operand under the persistent base flag, highlighting
// the offending character on failure.
func readOperand(cmd *cobra.Command, arg string) zahl.Int {
	base := GetUint(cmd, "base")
	//
	value, err := zahl.Parse(arg, base)
	if err == nil {
		return value
	}
	// Handle error
	var parseErr *zahl.ParseError
	//
	if errors.As(err, &parseErr) && parseErr.Index() >= 0 {
		printParseError(parseErr)
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return zahl.Zero()
}

// Print a parse error with appropriate highlighting.
func printParseError(err *zahl.ParseError) {
	fmt.Printf("%s (base %d)\n", err.Message(), err.Base())
	// Print offending input
	fmt.Println(err.Input())
	// Print indent
	fmt.Print(strings.Repeat(" ", err.Index()))
	// Print highlight
	fmt.Println("^")
}
