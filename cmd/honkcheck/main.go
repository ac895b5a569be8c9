// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command honkcheck verifies a standalone UltraHonk proof blob against a
// verifying key and public inputs file, printing "accept" to stdout, or
// "reject: <reason>" to stderr and exiting non-zero on rejection.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luxfi/log"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/diag"
	"github.com/luxfi/honkverifier/honk"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("honkcheck", flag.ContinueOnError)
	vkPath := fs.String("vk", "", "path to the hash-prefixed verifying key blob")
	proofPath := fs.String("proof", "", "path to the proof blob")
	publicInputsPath := fs.String("public-inputs", "", "path to the flattened public inputs blob (may be empty)")
	verbose := fs.Bool("v", false, "emit diagnostic events to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *vkPath == "" || *proofPath == "" {
		fmt.Fprintln(os.Stderr, "honkcheck: -vk and -proof are required")
		return 2
	}

	logger := log.NewTestLogger(log.InfoLevel)

	vkBytes, err := os.ReadFile(*vkPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "honkcheck: reading vk: %v\n", err)
		return 2
	}
	proofBytes, err := os.ReadFile(*proofPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "honkcheck: reading proof: %v\n", err)
		return 2
	}
	var publicInputsBytes []byte
	if *publicInputsPath != "" {
		publicInputsBytes, err = os.ReadFile(*publicInputsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "honkcheck: reading public inputs: %v\n", err)
			return 2
		}
	}

	var emitter diag.Emitter = diag.NoopEmitter{}
	if *verbose {
		emitter = diag.NewLogEmitter(logger)
	}

	err = honk.Verify(vkBytes, proofBytes, publicInputsBytes, curve.GnarkHost{}, emitter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reject: %v\n", err)
		return 1
	}
	fmt.Println("accept")
	return 0
}
