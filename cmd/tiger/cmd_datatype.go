package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tiger-tools/cmd/tiger/datatype"
	"tiger-tools/cmd/tiger/db"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/pkg/lib"
)

var datatypeCmd = &cobra.Command{
	Use:   "datatype <chain>",
	Short: "Validate one datatype chain, like [ROOT.Char.GetFirstName]",
	Long: "Validate a localization datatype chain against the built-in datatype\n" +
		"tables. The brackets and a trailing |format are optional.\n\n" +
		"Exits " + fmt.Sprint(exitFailOn) + " if the chain has problems.",
	Args: cobra.ExactArgs(1),
	RunE: runDatatype,
}

func init() {
	f := datatypeCmd.Flags()
	f.String("expect", "", "datatype the chain must return, e.g. CString")
	f.String("root", "character", "root scope")
	f.String("lang", "", "language for localization checks (default: any)")
	f.String("mod", "", "mod directory to load localization, game concepts and data bindings from")
}

func runDatatype(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	expect := datatype.Unknown
	if v, _ := f.GetString("expect"); v != "" {
		dt, ok := datatype.Parse(v)
		if !ok {
			return fmt.Errorf("--expect: unknown datatype %q", v)
		}
		expect = dt
	}
	rootName, _ := f.GetString("root")
	root, err := scopes.Parse(rootName)
	if err != nil {
		return fmt.Errorf("--root: %w", err)
	}
	lang, _ := f.GetString("lang")

	sink := report.NewCollector(report.Tips)
	d := db.New(db.WithSink(sink))
	if mod, _ := f.GetString("mod"); mod != "" {
		if err := d.Load(os.DirFS(mod)); err != nil {
			return err
		}
		sink.Reset()
	}

	text := args[0]
	if !strings.HasPrefix(text, "[") {
		text = "[" + text + "]"
	}
	t := script.NewToken(text, script.Loc{File: "<arg>", Line: 1, Column: 1})
	chain, format, err := datatype.ParseCode(t)
	if err != nil {
		return err
	}
	sc := scopectx.New(root, t, scopectx.WithSink(sink))
	datatype.ValidateDatatypes(chain, d, sc, expect, lang, format, false)

	diags := sink.Sorted()
	if len(diags) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", chain)
		return nil
	}
	if err := report.Render(cmd.OutOrStdout(), diags, report.RenderOptions{
		Color: report.ColorMode(cfg.Color).Enabled(os.Stdout),
	}); err != nil {
		return err
	}
	return lib.WithCode(exitFailOn, fmt.Errorf("%s: %s", chain, report.Summarize(diags)))
}
