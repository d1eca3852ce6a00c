// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/myvision/guide-engine/pkg/types"
)

// renderMarkdown produces the saved Markdown document: a YAML frontmatter
// block with the metadata in declaration order, then the guide content,
// byte for byte as generated.
func renderMarkdown(res *types.GenerationResult) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, pair := range res.Metadata.Pairs() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair[0]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair[1]},
		)
	}

	front, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(front)
	sb.WriteString("---\n\n")
	sb.WriteString(res.Content)
	return []byte(sb.String()), nil
}
