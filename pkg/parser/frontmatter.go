package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// matchFrontmatter recognizes a YAML frontmatter block. Unlike the other
// block recognizers it is only ever tried at the very start of a
// document, before the block loop runs.
func matchFrontmatter(src string) *mdast.Token {
	m := reFrontmatter.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewYAML(len(m[0]), m[1])
}

// Frontmatter unmarshals a parsed document's YAML frontmatter into a
// map. Returns a nil map without error when the tree carries no
// frontmatter token.
func Frontmatter(root *mdast.Token) (map[string]any, error) {
	if root == nil || len(root.Children) == 0 {
		return nil, nil
	}

	first := root.Children[0]
	if first.Type != mdast.NodeYAML {
		return nil, nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(first.Value), &data); err != nil {
		return nil, fmt.Errorf("unmarshal frontmatter: %w", err)
	}

	return data, nil
}
