// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ctSkennerton/postbis"
)

var describeFlag bool

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "compress a raw sequence file",
	Long: `
Compress a raw sequence file into a compressed sequence blob. Trailing
newlines are symbol errors under the IUPAC alphabet; strip them before
compressing.
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		tm, err := postbis.ParseTypeModifier(modifierFlag)
		fatalIf(err)
		seq, err := postbis.CompressBytes(readFileOrStdin(args[0]), tm)
		fatalIf(err)
		fatalIf(os.WriteFile(args[1], seq.Bytes(), 0666))
		fmt.Printf("%d symbols -> %d bytes (ratio %.2f)\n",
			seq.CharLength(), seq.OctetLength(), seq.CompressionRatio())
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "decompress a blob back to text",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		seq, err := postbis.FromBytes(readFileOrStdin(args[0]))
		fatalIf(err)
		text, err := seq.Text()
		fatalIf(err)
		fatalIf(os.WriteFile(args[1], text, 0666))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <blob>...",
	Short: "show stats for compressed sequence blobs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"file", "modifier", "symbols", "bytes", "ratio", "alphabet"})
		var dumps []string
		for _, path := range args {
			seq, err := postbis.FromBytes(readFileOrStdin(path))
			fatalIf(err)
			ab, err := seq.Alphabet()
			fatalIf(err)
			table.Append([]string{
				path,
				seq.Modifier().String(),
				fmt.Sprint(seq.CharLength()),
				fmt.Sprint(seq.OctetLength()),
				fmt.Sprintf("%.2f", seq.CompressionRatio()),
				string(ab),
			})
			if describeFlag {
				dumps = append(dumps, fmt.Sprintf("\n%s:\n%s", path, seq.Describe()))
			}
		}
		table.Render()
		for _, d := range dumps {
			fmt.Print(d)
		}
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <haystack-blob> <needle>",
	Short: "find the first occurrence of a pattern in a compressed sequence",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		seq, err := postbis.FromBytes(readFileOrStdin(args[0]))
		fatalIf(err)
		tm, err := postbis.ParseTypeModifier(modifierFlag)
		fatalIf(err)
		needle, err := postbis.CompressBytes([]byte(strings.TrimSpace(args[1])), tm)
		fatalIf(err)
		pos, err := seq.Strpos(needle)
		fatalIf(err)
		if pos == 0 {
			fmt.Println("not found")
			return
		}
		fmt.Printf("found at position %d\n", pos)
	},
}
