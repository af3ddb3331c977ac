package report

import (
	"errors"
	"fmt"
	"strings"

	"tiger-tools/cmd/tiger/script"
)

var ErrUnknownSeverity = errors.New("unknown severity")

type Severity int

const (
	Tips Severity = iota
	Untidy
	Warning
	Error
	Fatal
)

var severityNames = [...]string{"tips", "untidy", "warning", "error", "fatal"}

func (s Severity) String() string {
	if s < Tips || s > Fatal {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts the lowercase names used in config and flags.
func ParseSeverity(s string) (Severity, error) {
	for i, n := range severityNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Severity(i), nil
		}
	}
	return Warning, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

type Confidence int

const (
	Weak Confidence = iota
	Reasonable
	Strong
)

func (c Confidence) String() string {
	switch c {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return "reasonable"
}

// ErrorKey groups diagnostics so users can filter them.
type ErrorKey int

const (
	Scopes ErrorKey = iota
	StrictScopes
	Validation
	UnknownField
	UnknownList
	Bugs
	Logic
	Macro
	Tooltip
	IfElse
	Range
	Removed
	Choice
	Datafunctions
	UseOfThis
	FieldMissing
	Missing
	Duplicate
	Crash
	ParseError
)

var keyNames = [...]string{
	"scopes", "strict-scopes", "validation", "unknown-field", "unknown-list",
	"bugs", "logic", "macro", "tooltip", "if-else", "range", "removed",
	"choice", "datafunctions", "use-of-this", "field-missing", "missing",
	"duplicate", "crash", "parse-error",
}

func (k ErrorKey) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

// PointedMessage is one location of a diagnostic, with an optional label.
type PointedMessage struct {
	Loc script.Loc
	Msg string
}

type Diagnostic struct {
	Severity   Severity
	Confidence Confidence
	Key        ErrorKey
	Msg        string
	Info       string
	Locs       []PointedMessage
}

// Loc is the primary location, or the zero Loc.
func (d Diagnostic) Loc() script.Loc {
	if len(d.Locs) == 0 {
		return script.Loc{}
	}
	return d.Locs[0].Loc
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Push(Diagnostic)
}

type discard struct{}

func (discard) Push(Diagnostic) {}

// Discard drops everything.
var Discard Sink = discard{}

// Builder assembles one diagnostic:
//
//	report.Warn(report.Scopes).Msg("...").Loc(tok.Loc).Push(sink)
type Builder struct {
	d   Diagnostic
	cap *Severity
}

// New starts a diagnostic of the given severity.
func New(sev Severity, key ErrorKey) *Builder {
	return &Builder{d: Diagnostic{Severity: sev, Confidence: Reasonable, Key: key}}
}

func Warn(key ErrorKey) *Builder { return New(Warning, key) }
func Err(key ErrorKey) *Builder  { return New(Error, key) }

// Severity overrides the builder's starting severity.
func (b *Builder) Severity(s Severity) *Builder {
	b.d.Severity = s
	return b
}

func (b *Builder) Strong() *Builder {
	b.d.Confidence = Strong
	return b
}

func (b *Builder) Weak() *Builder {
	b.d.Confidence = Weak
	return b
}

func (b *Builder) Msg(msg string) *Builder {
	b.d.Msg = msg
	return b
}

func (b *Builder) Msgf(format string, args ...any) *Builder {
	b.d.Msg = fmt.Sprintf(format, args...)
	return b
}

func (b *Builder) Info(info string) *Builder {
	b.d.Info = info
	return b
}

func (b *Builder) Loc(loc script.Loc) *Builder {
	b.d.Locs = append(b.d.Locs, PointedMessage{Loc: loc})
	return b
}

// LocMsg adds a secondary location with a label. Locations with no file
// (builtin reasons) are skipped.
func (b *Builder) LocMsg(loc script.Loc, msg string) *Builder {
	if loc.File == "" && loc.Line == 0 {
		return b
	}
	b.d.Locs = append(b.d.Locs, PointedMessage{Loc: loc, Msg: msg})
	return b
}

// MaxSeverity caps the severity. Fatal is never lowered.
func (b *Builder) MaxSeverity(s Severity) *Builder {
	b.cap = &s
	return b
}

// Build returns the finished diagnostic.
func (b *Builder) Build() Diagnostic {
	d := b.d
	if b.cap != nil && d.Severity != Fatal && d.Severity > *b.cap {
		d.Severity = *b.cap
	}
	return d
}

func (b *Builder) Push(sink Sink) {
	if sink == nil {
		return
	}
	sink.Push(b.Build())
}
