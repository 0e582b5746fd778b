package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/justyntemme/canopy/internal/explorer"
)

var treeDepth int

var treeCmd = &cobra.Command{
	Use:   "tree [folder]",
	Short: "Print a folder the way the explorer sidebar shows it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", root, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a folder", root)
		}

		tab := explorer.NewTab(abs, explorer.NewDirectoryLoader(nil))
		expandTo(tab.Tree, treeDepth)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s - %s\n", tab.Name, tab.RootPath)
		writeRows(out, tab.Tree.Rows())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVar(&treeDepth, "depth", 1, "Directory levels to expand below the root")
}

// expandTo toggles directories open level by level until depth levels are
// expanded.
func expandTo(tree *explorer.Tree, depth int) {
	level := tree.Roots()
	for d := 0; d < depth && len(level) > 0; d++ {
		var next []*explorer.FileNode
		for _, n := range level {
			if !n.IsDir {
				continue
			}
			if !tree.IsExpanded(n.Path) {
				tree.Toggle(n.Path)
			}
			for _, c := range n.Children {
				if !c.IsPlaceholder() {
					next = append(next, c)
				}
			}
		}
		level = next
	}
}

func writeRows(w io.Writer, rows []explorer.Row) {
	for _, row := range rows {
		indent := strings.Repeat("  ", row.Depth)
		n := row.Node
		switch {
		case n.IsPlaceholder():
			fmt.Fprintf(w, "%s  %s\n", indent, n.Name)
		case n.IsDir && row.Expanded:
			fmt.Fprintf(w, "%s▾ %s/\n", indent, n.Name)
		case n.IsDir:
			fmt.Fprintf(w, "%s▸ %s/\n", indent, n.Name)
		default:
			fmt.Fprintf(w, "%s· %s (%s)\n", indent, n.Name, humanize.Bytes(uint64(n.Size)))
		}
	}
}
