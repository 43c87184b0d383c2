package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Number of primes the table carries; 500 entries reach 3571, so trial
// division alone settles anything below 3571².
const tableSize = 500

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-zahl")

	primes := sieve(tableSize)
	last := primes[len(primes)-1]

	cfg := tableConfig{
		Primes: primes,
		Limit:  uint64(last) * uint64(last),
	}

	assertNoError(bgen.Generate(cfg, "zahl", "templates",
		bavard.Entry{
			File:      "../../smallprimes.go",
			Templates: []string{"smallprimes.go.tmpl"},
		},
	), "generating prime table")

	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

type tableConfig struct {
	Primes []uint32
	Limit  uint64
}

// sieve returns the first n primes via a bitset sieve of Eratosthenes, growing
// the sieved range until enough primes have been collected.
func sieve(n int) []uint32 {
	for limit := uint(n * 16); ; limit *= 2 {
		var (
			composite = bitset.New(limit)
			primes    = make([]uint32, 0, n)
		)

		for c := uint(2); c < limit && len(primes) < n; c++ {
			if composite.Test(c) {
				continue
			}

			primes = append(primes, uint32(c))

			for m := c * c; m < limit; m += c {
				composite.Set(m)
			}
		}

		if len(primes) == n {
			return primes
		}
	}
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, context string) {
	if err != nil {
		if context != "" {
			fmt.Printf("%s: %v\n", context, err)
		} else {
			fmt.Println(err)
		}

		os.Exit(1)
	}
}
