package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"tiger-tools/cmd/tiger/datatype"
	"tiger-tools/cmd/tiger/db"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/validate"
)

const chainHelp = `Type a scope chain, like liege.primary_title, to see where it leads.
Lines starting with [ are datatype chains, like [ROOT.Char.GetFirstName].
  :root <scopes>   set the root scope, e.g. :root landed_title
  :strict on|off   toggle strict scope checking
  :name <n> <s>    define a named scope, e.g. :name target character
  :quit            leave`

var chainCmd = &cobra.Command{
	Use:   "chain [chain ...]",
	Short: "Resolve scope chains interactively",
	Long: "Resolve scope chains against the built-in tables and print the scope\n" +
		"they end in, with any diagnostics. With arguments, each is resolved\n" +
		"once; without, an interactive prompt is started.\n\n" + chainHelp,
	RunE: runChain,
}

func init() {
	chainCmd.Flags().String("root", "character", "root scope")
	chainCmd.Flags().Bool("strict", true, "strict scope checking")
	chainCmd.Flags().String("mod", "", "mod directory to load items and scripted definitions from")
}

// chainSession holds what persists between lines of the prompt.
type chainSession struct {
	data   *db.Database
	sink   *report.Collector
	root   scopes.Set
	strict bool
	names  map[string]scopes.Set
	line   int
}

func newChainSession(root scopes.Set, strict bool) *chainSession {
	sink := report.NewCollector(report.Tips)
	return &chainSession{
		data:   db.New(db.WithSink(sink)),
		sink:   sink,
		root:   root,
		strict: strict,
		names:  map[string]scopes.Set{},
	}
}

func (s *chainSession) context(t script.Token) *scopectx.Context {
	sc := scopectx.New(s.root, t, scopectx.WithSink(s.sink))
	sc.SetStrictScopes(s.strict)
	for name, set := range s.names {
		sc.DefineName(name, set, t)
	}
	return sc
}

// eval handles one line. It returns io.EOF when the user asks to leave.
func (s *chainSession) eval(w io.Writer, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	s.line++
	if strings.HasPrefix(line, ":") {
		return s.command(w, line)
	}

	s.sink.Reset()
	t := script.NewToken(line, script.Loc{File: "<input>", Line: s.line, Column: 1})
	sc := s.context(t)

	if strings.HasPrefix(line, "[") {
		chain, format, err := datatype.ParseCode(t)
		if err != nil {
			fmt.Fprintf(w, "parse error: %v\n", err)
			return nil
		}
		datatype.ValidateDatatypes(chain, s.data, sc, datatype.Unknown, "", format, false)
		fmt.Fprintf(w, "=> %s\n", chain)
	} else {
		closeBuilder := sc.EnterBuilder()
		if validate.ValidateScopeChain(t, s.data, sc, false) {
			fmt.Fprintf(w, "=> %s\n", sc.Scopes())
		}
		closeBuilder()
	}
	return report.Render(w, s.sink.Sorted(), report.RenderOptions{Links: s.data.LinkMap()})
}

func (s *chainSession) command(w io.Writer, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return io.EOF
	case ":help", ":h":
		fmt.Fprintln(w, chainHelp)
	case ":root":
		if len(fields) != 2 {
			fmt.Fprintln(w, "usage: :root <scopes>")
			return nil
		}
		root, err := scopes.Parse(fields[1])
		if err != nil {
			fmt.Fprintln(w, err)
			return nil
		}
		s.root = root
		fmt.Fprintf(w, "root is %s\n", root)
	case ":strict":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			fmt.Fprintln(w, "usage: :strict on|off")
			return nil
		}
		s.strict = fields[1] == "on"
	case ":name":
		if len(fields) != 3 {
			fmt.Fprintln(w, "usage: :name <name> <scopes>")
			return nil
		}
		set, err := scopes.Parse(fields[2])
		if err != nil {
			fmt.Fprintln(w, err)
			return nil
		}
		s.names[fields[1]] = set
	default:
		fmt.Fprintf(w, "unknown command %s, try :help\n", fields[0])
	}
	return nil
}

func runChain(cmd *cobra.Command, args []string) error {
	rootName, _ := cmd.Flags().GetString("root")
	root, err := scopes.Parse(rootName)
	if err != nil {
		return fmt.Errorf("--root: %w", err)
	}
	strict, _ := cmd.Flags().GetBool("strict")
	s := newChainSession(root, strict)

	if mod, _ := cmd.Flags().GetString("mod"); mod != "" {
		if err := s.data.Load(os.DirFS(mod)); err != nil {
			return err
		}
		s.sink.Reset()
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, a := range args {
			if err := s.eval(out, a); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}
		return nil
	}

	rlCfg := &readline.Config{
		Prompt:          s.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	}
	if dir, err := configDir(); err == nil {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			rlCfg.HistoryFile = filepath.Join(dir, "chain_history")
		}
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), chainHelp)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.eval(rl.Stdout(), line); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		rl.SetPrompt(s.prompt())
	}
}

func (s *chainSession) prompt() string {
	p := s.root.String()
	if !s.strict {
		p += "?"
	}
	return p + "> "
}
