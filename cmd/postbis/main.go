// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command postbis compresses, inspects and searches aligned amino-acid
// sequence files. It is a standalone stand-in for the SQL surface the
// library is normally embedded behind.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var modifierFlag string

var rootCmd = &cobra.Command{
	Use:   "postbis [command] (flags)",
	Short: "aligned amino-acid sequence compression tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		compressCmd,
		decompressCmd,
		statsCmd,
		searchCmd,
	)

	for _, cmd := range []*cobra.Command{compressCmd, searchCmd} {
		cmd.Flags().StringVarP(
			&modifierFlag, "modifier", "m", "",
			"type modifier keywords (case_sensitive, case_insensitive, iupac, ascii)")
	}
	statsCmd.Flags().BoolVar(
		&describeFlag, "describe", false, "dump the annotated binary layout of each value")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func fatalIf(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func readFileOrStdin(path string) []byte {
	if path == "-" {
		b, err := os.ReadFile("/dev/stdin")
		fatalIf(err)
		return b
	}
	b, err := os.ReadFile(path)
	fatalIf(err)
	return b
}
