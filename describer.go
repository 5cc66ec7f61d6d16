package ddir

import (
	"encoding/json"
	"maps"
	"strings"
)

// separator splits a path into its parent and leaf segments.
const separator = "/"

// placeholder marks the spot in a pattern where the child's name is
// substituted. Every occurrence is replaced; there is no escape for a
// literal placeholder character.
const placeholder = "*"

// Describer holds descriptions of directories.
//
// Two kinds of descriptions are held, in independent namespaces keyed by
// the same path domain:
//
//   - Exact descriptions: a string mapped to a path, returned verbatim
//     when that path is described.
//   - Pattern descriptions: a string mapped to a parent path, applied to
//     any direct child of that path with "*" replaced by the child's name.
//
// When a path could be described by both, the exact description wins. A
// pattern never applies to its own key: it describes children, not the
// directory itself.
//
// Paths and descriptions are opaque strings. The Describer performs no
// path normalization and no existence checks; callers supply paths in the
// form they intend to query with.
type Describer struct {
	descriptions map[string]string
	patterns     map[string]string
}

// NewDescriber returns an empty Describer.
func NewDescriber() *Describer {
	return &Describer{
		descriptions: make(map[string]string),
		patterns:     make(map[string]string),
	}
}

// NewDescriberWith returns a Describer built directly from the two given
// maps, which are retained. No validation is performed; this is the
// constructor used by deserializing stores. Nil maps are treated as empty.
func NewDescriberWith(descriptions, patterns map[string]string) *Describer {
	if descriptions == nil {
		descriptions = make(map[string]string)
	}
	if patterns == nil {
		patterns = make(map[string]string)
	}
	return &Describer{
		descriptions: descriptions,
		patterns:     patterns,
	}
}

// describerJSON is the wire form of a Describer. The pointer fields
// distinguish absent from empty: both fields are required on read.
type describerJSON struct {
	Descriptions *map[string]string `json:"descriptions"`
	Patterns     *map[string]string `json:"patterns"`
}

// NewDescriberFromJSON parses a JSON wire document into a Describer.
// It returns an EINVALID error when the document is not valid JSON or when
// either the descriptions or patterns field is missing or mistyped. A
// corrupt document is never read as an empty Describer.
func NewDescriberFromJSON(data []byte) (*Describer, error) {
	var doc describerJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Errorf(EINVALID, "invalid describer JSON: %v", err)
	}
	if doc.Descriptions == nil {
		return nil, Errorf(EINVALID, "describer JSON missing descriptions field")
	}
	if doc.Patterns == nil {
		return nil, Errorf(EINVALID, "describer JSON missing patterns field")
	}
	return NewDescriberWith(*doc.Descriptions, *doc.Patterns), nil
}

// Describe returns the description of path. The descriptions map is
// checked first; if no exact description exists, the patterns map is
// checked for the path's parent. The boolean reports whether any
// description was found.
func (d *Describer) Describe(path string) (string, bool) {
	if desc, ok := d.descriptions[path]; ok {
		return desc, true
	}
	return d.describeUsingPattern(path)
}

// describeUsingPattern splits path at the last separator and looks the
// parent up in the patterns map. A path with no separator has no parent
// and cannot match a pattern, even if the whole path equals a pattern key.
func (d *Describer) describeUsingPattern(path string) (string, bool) {
	i := strings.LastIndex(path, separator)
	if i < 0 {
		return "", false
	}
	parent, leaf := path[:i], path[i+1:]
	template, ok := d.patterns[parent]
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(template, placeholder, leaf), true
}

// AddDescription inserts or overwrites the exact description for path.
// The path is stored as given.
func (d *Describer) AddDescription(path, desc string) {
	d.descriptions[path] = desc
}

// AddPattern inserts or overwrites the pattern for path. The pattern
// applies to path's children, never to path itself.
func (d *Describer) AddPattern(path, template string) {
	d.patterns[path] = template
}

// ToJSON returns the JSON wire document for the full Describer state.
// With pretty set, the output is indented for hand editing.
func (d *Describer) ToJSON(pretty bool) ([]byte, error) {
	doc := describerJSON{
		Descriptions: &d.descriptions,
		Patterns:     &d.patterns,
	}
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, Errorf(EINTERNAL, "failed to serialize describer: %v", err)
	}
	return data, nil
}

// Descriptions returns a copy of the exact-description map. Together with
// Patterns it is the serializing counterpart of NewDescriberWith, used by
// stores that persist entries individually.
func (d *Describer) Descriptions() map[string]string {
	return maps.Clone(d.descriptions)
}

// Patterns returns a copy of the pattern map.
func (d *Describer) Patterns() map[string]string {
	return maps.Clone(d.patterns)
}
