package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justyntemme/canopy/internal/store"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <db> [query]",
	Short: "Run a query against an embedded database, or list its tables",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.NewManager()
		if err := db.Connect(args[0]); err != nil {
			return err
		}
		defer db.Disconnect()

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			tables, err := db.Tables()
			if err != nil {
				return err
			}
			if len(tables) == 0 {
				fmt.Fprintln(out, "No tables found")
				return nil
			}
			for _, t := range tables {
				fmt.Fprintln(out, t)
			}
			return nil
		}
		return runSQL(out, db, args[1])
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}

// returnsRows reports whether q is a statement that produces a result set.
func returnsRows(q string) bool {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH", "PRAGMA", "VALUES", "EXPLAIN":
		return true
	}
	return false
}

func runSQL(out io.Writer, db *store.Manager, q string) error {
	if !returnsRows(q) {
		if err := db.Exec(q); err != nil {
			return err
		}
		fmt.Fprintln(out, "OK")
		return nil
	}

	cols, rows, err := db.QueryTable(q)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(cols, "\t")))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "(%d rows)\n", len(rows))
	return nil
}
