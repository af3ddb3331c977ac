package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"tiger-tools/cmd/tiger/tables"
)

var tableKinds = []string{"field", "keyed", "iterator", "trigger", "effect"}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the built-in scope transitions, triggers and effects",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func init() {
	tablesCmd.Flags().String("kind", "", "only list one kind: "+strings.Join(tableKinds, ", "))
	tablesCmd.Flags().Bool("pick", false, "pick an entry with a fuzzy finder and show its overloads")
	_ = tablesCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tableKinds, cobra.ShellCompDirectiveNoFileComp
	})
}

// tableEntry is one listed row. name is unique per kind only.
type tableEntry struct {
	kind string
	name string
	from string
	to   string
}

func (e tableEntry) label() string {
	return e.kind + " " + e.name
}

func collectEntries(t *tables.Tables, kind string) ([]tableEntry, error) {
	if kind != "" && !slices.Contains(tableKinds, kind) {
		return nil, fmt.Errorf("unknown kind %q, expected one of %s", kind, strings.Join(tableKinds, ", "))
	}
	var out []tableEntry
	want := func(k string) bool { return kind == "" || kind == k }
	if want("field") {
		for _, tr := range t.Fields() {
			out = append(out, tableEntry{"field", tr.Name, tr.From.String(), tr.To.String()})
		}
	}
	if want("keyed") {
		for _, k := range t.KeyedAll() {
			out = append(out, tableEntry{"keyed", k.Prefix + ":" + argumentString(k.Arg), k.From.String(), k.To.String()})
		}
	}
	if want("iterator") {
		for _, tr := range t.Iterators() {
			out = append(out, tableEntry{"iterator", "every_|any_|random_|ordered_" + tr.Name, tr.From.String(), tr.To.String()})
		}
	}
	if want("trigger") {
		for _, n := range t.TriggerNames() {
			e, _ := t.Trigger(n)
			out = append(out, tableEntry{"trigger", n, e.In.String(), ""})
		}
	}
	if want("effect") {
		for _, n := range t.EffectNames() {
			e, _ := t.Effect(n)
			out = append(out, tableEntry{"effect", n, e.In.String(), ""})
		}
	}
	return out, nil
}

func argumentString(a tables.Argument) string {
	switch a.Kind {
	case tables.ArgItem:
		return "<" + a.Item.String() + ">"
	case tables.ArgScope:
		return "<" + a.Scopes.String() + ">"
	case tables.ArgScopeOrItem:
		return "<" + a.Scopes.String() + " or " + a.Item.String() + ">"
	}
	return "<any>"
}

// printEntries prints entries aligned in columns.
func printEntries(w io.Writer, entries []tableEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no entries found")
		return
	}
	maxLabel := 0
	for _, e := range entries {
		maxLabel = max(maxLabel, len(e.label()))
	}
	for _, e := range entries {
		if e.to == "" {
			fmt.Fprintf(w, "%-*s  in %s\n", maxLabel, e.label(), e.from)
			continue
		}
		fmt.Fprintf(w, "%-*s  %s -> %s\n", maxLabel, e.label(), e.from, e.to)
	}
}

// overloads lists every entry with the same kind and name as picked; fields
// may have several, one per input scope.
func overloads(entries []tableEntry, picked tableEntry) []tableEntry {
	var out []tableEntry
	for _, e := range entries {
		if e.kind == picked.kind && e.name == picked.name {
			out = append(out, e)
		}
	}
	return out
}

func runTables(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	pick, _ := cmd.Flags().GetBool("pick")
	entries, err := collectEntries(tables.CK3(), kind)
	if err != nil {
		return err
	}
	if !pick {
		printEntries(cmd.OutOrStdout(), entries)
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].label()
		},
		fuzzyfinder.WithPromptString("Select transition: "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 {
				return ""
			}
			var sb strings.Builder
			printEntries(&sb, overloads(entries, entries[i]))
			return sb.String()
		}),
	)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return nil
	}
	if err != nil {
		return err
	}
	printEntries(cmd.OutOrStdout(), overloads(entries, entries[idx]))
	return nil
}
