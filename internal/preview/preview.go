// Package preview renders a snapshot of decoded sections for people to read.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"configreader/internal/literal"
)

const (
	width    = 50
	keyWidth = 23
)

// Render writes snapshot, a mapping of section name to decoded keys, as a
// fixed-width listing headed by title. Section names are bold when w is a
// color terminal.
func Render(w io.Writer, title string, snapshot *literal.Map) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(rule(r, title))
	b.WriteByte('\n')
	snapshot.Each(func(section string, v any) {
		b.WriteByte('\n')
		line := r.PlaceHorizontal(width, lipgloss.Center, header.Render(section))
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')

		items, _ := v.(*literal.Map)
		items.Each(func(key string, value any) {
			pad := keyWidth - lipgloss.Width(key)
			if pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			fmt.Fprintf(&b, "%s: %s\n", key, literal.Encode(value))
		})
	})
	b.WriteByte('\n')
	b.WriteString(rule(r, "end"))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func rule(r *lipgloss.Renderer, text string) string {
	return r.PlaceHorizontal(width, lipgloss.Center, text, lipgloss.WithWhitespaceChars("-"))
}

// RenderYAML writes snapshot as a YAML document, keeping section and key
// order.
func RenderYAML(w io.Writer, snapshot *literal.Map) error {
	node, err := toNode(snapshot)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *literal.Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		x.Each(func(key string, e any) {
			if err != nil {
				return
			}
			var k, child *yaml.Node
			if k, err = scalar(key); err != nil {
				return
			}
			if child, err = toNode(e); err != nil {
				return
			}
			n.Content = append(n.Content, k, child)
		})
		return n, err
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			child, err := toNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}
	return scalar(v)
}

// scalar lets yaml pick the tag and quoting, so strings such as "true"
// stay strings.
func scalar(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding %v: %w", v, err)
	}
	return n, nil
}
