package jira

import (
	"encoding/json"
	"strings"
)

// TextToADF wraps plain text in a single-paragraph ADF document. Line
// breaks become hardBreak nodes.
func TextToADF(text string) map[string]any {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var content []any
	for i, line := range lines {
		if i > 0 {
			content = append(content, map[string]any{"type": "hardBreak"})
		}
		if line != "" {
			content = append(content, map[string]any{"type": "text", "text": line})
		}
	}
	if len(content) == 0 {
		content = []any{map[string]any{"type": "text", "text": " "}}
	}
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{map[string]any{"type": "paragraph", "content": content}},
	}
}

// ADFToText flattens an issue description to plain text. Plain JSON strings
// are returned as-is and null yields "".
func ADFToText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var node any
	if err := json.Unmarshal(raw, &node); err != nil {
		return ""
	}
	var b strings.Builder
	walkADF(node, &b)
	return strings.TrimSpace(b.String())
}

var blockNodes = map[string]bool{
	"paragraph":  true,
	"heading":    true,
	"listItem":   true,
	"codeBlock":  true,
	"blockquote": true,
}

func walkADF(node any, b *strings.Builder) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}
	typ, _ := m["type"].(string)
	switch typ {
	case "text":
		t, _ := m["text"].(string)
		b.WriteString(t)
		return
	case "hardBreak":
		b.WriteString("\n")
		return
	}
	children, _ := m["content"].([]any)
	for _, child := range children {
		walkADF(child, b)
	}
	if blockNodes[typ] {
		b.WriteString("\n")
	}
}
