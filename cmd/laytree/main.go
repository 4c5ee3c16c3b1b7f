// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command laytree is a debug tool for tree snapshot files: it loads a
// tree description from YAML (or JSON) and prints an introspection dump
// or the computed layout sizes of its nodes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/laytree/laytree/elements" // register component kinds
	"github.com/laytree/laytree/inspect"
	"github.com/laytree/laytree/layout"
	"github.com/laytree/laytree/tree"
)

func main() {
	root := &cobra.Command{
		Use:           "laytree",
		Short:         "inspect and size retained layout trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(dumpCmd(), sizeCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "laytree:", err)
		os.Exit(1)
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print an introspection dump of the tree in the given snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := tree.OpenFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inspect.DumpTree(n))
			return nil
		},
	}
}

func sizeCmd() *cobra.Command {
	var axisName string
	cmd := &cobra.Command{
		Use:   "size <file>",
		Short: "print the aggregated layout sizes of every node in the given snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := tree.OpenFile(args[0])
			if err != nil {
				return err
			}
			axes := []layout.Axis{layout.Horizontal, layout.Vertical}
			if axisName != "both" {
				axis, err := layout.AxisFromString(axisName)
				if err != nil {
					return err
				}
				axes = []layout.Axis{axis}
			}
			out := cmd.OutOrStdout()
			n.WalkDown(func(k tree.Node) bool {
				if len(layout.Elements(k)) == 0 {
					return tree.Continue
				}
				for _, axis := range axes {
					fmt.Fprintf(out, "%s %s: %s\n", k.AsTree().Path(), axis, layout.NodeSize(k, axis))
				}
				return tree.Continue
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&axisName, "axis", "both", "axis to compute: horizontal, vertical, or both")
	return cmd
}
