package types

import (
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// NodeKind discriminates the shape of a ConfigNode.
type NodeKind int

const (
	// AbsentKind marks a lookup that found nothing. Every accessor on an
	// absent node is safe to call and returns a zero value.
	AbsentKind NodeKind = iota
	ScalarKind
	MappingKind
	SequenceKind
)

// String returns the lowercase name of the kind for error messages.
func (k NodeKind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	default:
		return "absent"
	}
}

// ConfigNode is a read-only view over one node of a parsed manifest.
// Mapping key order is preserved exactly as it appears in the document,
// which the validation engine relies on for deterministic issue ordering.
//
// A nil *ConfigNode is valid and behaves as an absent node, so callers can
// chain lookups without checking each hop:
//
//	m.Root().Get("extension").Get("callback").Get("url").IsAbsent()
type ConfigNode struct {
	node *yaml.Node
}

// MapEntry is one key/value pair of a mapping node, in document order.
type MapEntry struct {
	Key   string
	Value *ConfigNode
	Line  int
}

// NewConfigNode wraps a parsed YAML node. Document nodes are unwrapped to
// their root content and alias nodes are resolved.
func NewConfigNode(n *yaml.Node) *ConfigNode {
	n = resolve(n)
	if n == nil {
		return nil
	}
	return &ConfigNode{node: n}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Kind reports the shape of the node. Null scalars count as absent so that
// an explicit `callback:` with no value behaves like a missing key.
func (c *ConfigNode) Kind() NodeKind {
	if c == nil || c.node == nil {
		return AbsentKind
	}
	switch c.node.Kind {
	case yaml.MappingNode:
		return MappingKind
	case yaml.SequenceNode:
		return SequenceKind
	case yaml.ScalarNode:
		if c.node.Tag == "!!null" {
			return AbsentKind
		}
		return ScalarKind
	default:
		return AbsentKind
	}
}

// IsAbsent reports whether the node is missing or null.
func (c *ConfigNode) IsAbsent() bool { return c.Kind() == AbsentKind }

// IsMapping reports whether the node is a mapping.
func (c *ConfigNode) IsMapping() bool { return c.Kind() == MappingKind }

// IsSequence reports whether the node is a sequence.
func (c *ConfigNode) IsSequence() bool { return c.Kind() == SequenceKind }

// IsScalar reports whether the node is a non-null scalar.
func (c *ConfigNode) IsScalar() bool { return c.Kind() == ScalarKind }

// Line returns the 1-based source line of the node, or 0 when absent.
func (c *ConfigNode) Line() int {
	if c == nil || c.node == nil {
		return 0
	}
	return c.node.Line
}

// Get returns the value for key in a mapping node. Any miss (absent node,
// non-mapping node, unknown key) yields an absent node, never a panic.
func (c *ConfigNode) Get(key string) *ConfigNode {
	if c.Kind() != MappingKind {
		return nil
	}
	for i := 0; i+1 < len(c.node.Content); i += 2 {
		if c.node.Content[i].Value == key {
			return NewConfigNode(c.node.Content[i+1])
		}
	}
	return nil
}

// At walks a key path through nested mappings.
func (c *ConfigNode) At(path ...string) *ConfigNode {
	cur := c
	for _, key := range path {
		cur = cur.Get(key)
	}
	return cur
}

// Entries returns the mapping's key/value pairs in document order.
func (c *ConfigNode) Entries() []MapEntry {
	if c.Kind() != MappingKind {
		return nil
	}
	entries := make([]MapEntry, 0, len(c.node.Content)/2)
	for i := 0; i+1 < len(c.node.Content); i += 2 {
		entries = append(entries, MapEntry{
			Key:   c.node.Content[i].Value,
			Value: NewConfigNode(c.node.Content[i+1]),
			Line:  c.node.Content[i].Line,
		})
	}
	return entries
}

// Keys returns the mapping's keys in document order.
func (c *ConfigNode) Keys() []string {
	if c.Kind() != MappingKind {
		return nil
	}
	keys := make([]string, 0, len(c.node.Content)/2)
	for i := 0; i+1 < len(c.node.Content); i += 2 {
		keys = append(keys, c.node.Content[i].Value)
	}
	return keys
}

// Items returns the elements of a sequence node in document order.
func (c *ConfigNode) Items() []*ConfigNode {
	if c.Kind() != SequenceKind {
		return nil
	}
	items := make([]*ConfigNode, 0, len(c.node.Content))
	for _, n := range c.node.Content {
		items = append(items, NewConfigNode(n))
	}
	return items
}

// Len returns the entry count of a mapping or the element count of a
// sequence; 0 for everything else.
func (c *ConfigNode) Len() int {
	switch c.Kind() {
	case MappingKind:
		return len(c.node.Content) / 2
	case SequenceKind:
		return len(c.node.Content)
	default:
		return 0
	}
}

// Str returns the scalar's string value and whether it was a scalar.
func (c *ConfigNode) Str() (string, bool) {
	if c.Kind() != ScalarKind {
		return "", false
	}
	return c.node.Value, true
}

// StringOr returns the scalar's string value or def.
func (c *ConfigNode) StringOr(def string) string {
	if s, ok := c.Str(); ok {
		return s
	}
	return def
}

// Int returns the scalar parsed as an integer and whether that succeeded.
func (c *ConfigNode) Int() (int, bool) {
	s, ok := c.Str()
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Bool returns the scalar parsed as a boolean and whether that succeeded.
func (c *ConfigNode) Bool() (bool, bool) {
	s, ok := c.Str()
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}

// StringItems returns the sequence's scalar elements as strings, skipping
// non-scalar elements.
func (c *ConfigNode) StringItems() []string {
	items := c.Items()
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}
