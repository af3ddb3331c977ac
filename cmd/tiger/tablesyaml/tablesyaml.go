// Package tablesyaml reads YAML overlays that extend the built-in tables,
// for mods that add their own scope transitions or for tests.
package tablesyaml

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/tables"
)

var (
	ErrInvalidDocument = errors.New("invalid overlay document")
	ErrUnknownScope    = errors.New("unknown scope in overlay")
	ErrUnknownItemKind = errors.New("unknown item kind in overlay")
)

//go:embed schema.json
var schemaJSON string

// Document is the decoded form of one overlay file.
type Document struct {
	Fields    []tables.Transition
	Keyed     []tables.Keyed
	Iterators []tables.Transition
	Items     map[item.Kind][]string
}

// ---- Internal YAML parsing structs ----------------------------------------

type yamlDocument struct {
	Fields    []yamlTransition    `yaml:"fields,omitempty"`
	Keyed     []yamlKeyed         `yaml:"keyed,omitempty"`
	Iterators []yamlTransition    `yaml:"iterators,omitempty"`
	Items     map[string][]string `yaml:"items,omitempty"`
}

type yamlTransition struct {
	From string `yaml:"from"`
	Name string `yaml:"name"`
	To   string `yaml:"to"`
}

// yamlKeyed carries the argument check as either `item: <kind>` (or
// `item: unchecked`) or `scope: <scopes>`. With neither, the argument is unchecked.
type yamlKeyed struct {
	From   string `yaml:"from"`
	Prefix string `yaml:"prefix"`
	To     string `yaml:"to"`
	Item   string `yaml:"item,omitempty"`
	Scope  string `yaml:"scope,omitempty"`
}

// ---- Parse -----------------------------------------------------------------

// Parse checks an overlay against the schema and decodes it.
func Parse(path string, in []byte) (Document, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=%s: %w: %v", path, ErrInvalidDocument, err)
	}
	if len(docNode.Content) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=%s: %w: empty YAML", path, ErrInvalidDocument)
	}
	root := docNode.Content[0]
	if root.Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("phase=parse path=%s: %w: top level must be a mapping", path, ErrInvalidDocument)
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=%s: %w: %v", path, ErrInvalidDocument, err)
	}
	if err := checkSchema(generic); err != nil {
		return Document{}, fmt.Errorf("phase=schema path=%s: %w", path, err)
	}

	var yd yamlDocument
	if err := root.Decode(&yd); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=%s: %w: %v", path, ErrInvalidDocument, err)
	}
	doc, err := convertDocument(yd)
	if err != nil {
		return Document{}, fmt.Errorf("phase=convert path=%s: %w", path, err)
	}
	return doc, nil
}

// LoadFile reads and parses one overlay from fsys.
func LoadFile(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("phase=read path=%s: %w", path, err)
	}
	return Parse(path, data)
}

func checkSchema(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// ---- Convert: yaml types → table types --------------------------------------

func convertDocument(yd yamlDocument) (Document, error) {
	var doc Document
	for i, yt := range yd.Fields {
		tr, err := convertTransition(yt)
		if err != nil {
			return Document{}, fmt.Errorf("fields[%d]: %w", i, err)
		}
		doc.Fields = append(doc.Fields, tr)
	}
	for i, yt := range yd.Iterators {
		tr, err := convertTransition(yt)
		if err != nil {
			return Document{}, fmt.Errorf("iterators[%d]: %w", i, err)
		}
		doc.Iterators = append(doc.Iterators, tr)
	}
	for i, yk := range yd.Keyed {
		k, err := convertKeyed(yk)
		if err != nil {
			return Document{}, fmt.Errorf("keyed[%d]: %w", i, err)
		}
		doc.Keyed = append(doc.Keyed, k)
	}
	if len(yd.Items) > 0 {
		doc.Items = make(map[item.Kind][]string, len(yd.Items))
		// Sorted so the first bad kind reported is stable.
		kinds := make([]string, 0, len(yd.Items))
		for k := range yd.Items {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, name := range kinds {
			k, err := item.FromName(name)
			if err != nil {
				return Document{}, fmt.Errorf("items: %w: %q", ErrUnknownItemKind, name)
			}
			doc.Items[k] = append(doc.Items[k], yd.Items[name]...)
		}
	}
	return doc, nil
}

func convertTransition(yt yamlTransition) (tables.Transition, error) {
	from, err := parseScopes(yt.From)
	if err != nil {
		return tables.Transition{}, err
	}
	to, err := parseScopes(yt.To)
	if err != nil {
		return tables.Transition{}, err
	}
	return tables.Transition{From: from, Name: yt.Name, To: to}, nil
}

func convertKeyed(yk yamlKeyed) (tables.Keyed, error) {
	from, err := parseScopes(yk.From)
	if err != nil {
		return tables.Keyed{}, err
	}
	to, err := parseScopes(yk.To)
	if err != nil {
		return tables.Keyed{}, err
	}
	k := tables.Keyed{From: from, Prefix: yk.Prefix, To: to, Arg: tables.Unchecked()}
	switch {
	case yk.Scope != "" && yk.Item != "" && yk.Item != "unchecked":
		s, err := parseScopes(yk.Scope)
		if err != nil {
			return tables.Keyed{}, err
		}
		kind, err := item.FromName(yk.Item)
		if err != nil {
			return tables.Keyed{}, fmt.Errorf("%w: %q", ErrUnknownItemKind, yk.Item)
		}
		k.Arg = tables.ScopeOrItemArg(s, kind)
	case yk.Scope != "":
		s, err := parseScopes(yk.Scope)
		if err != nil {
			return tables.Keyed{}, err
		}
		k.Arg = tables.ScopeArg(s)
	case yk.Item != "" && yk.Item != "unchecked":
		kind, err := item.FromName(yk.Item)
		if err != nil {
			return tables.Keyed{}, fmt.Errorf("%w: %q", ErrUnknownItemKind, yk.Item)
		}
		k.Arg = tables.ItemArg(kind)
	}
	return k, nil
}

func parseScopes(s string) (scopes.Set, error) {
	set, err := scopes.Parse(s)
	if err != nil {
		return scopes.Empty, fmt.Errorf("%w: %v", ErrUnknownScope, err)
	}
	return set, nil
}

// ItemAdder receives the item names an overlay declares.
type ItemAdder interface {
	AddItem(kind item.Kind, name string)
}

// Apply merges doc into t and items. It must run before validation starts.
func Apply(doc Document, t *tables.Tables, items ItemAdder) {
	for _, tr := range doc.Fields {
		t.AddField(tr.From, tr.Name, tr.To)
	}
	for _, tr := range doc.Iterators {
		t.AddIterator(tr.From, tr.Name, tr.To)
	}
	for _, k := range doc.Keyed {
		t.AddKeyed(k)
	}
	if items == nil {
		return
	}
	for kind, names := range doc.Items {
		for _, n := range names {
			items.AddItem(kind, n)
		}
	}
}
