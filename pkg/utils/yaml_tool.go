package utils

import (
	"strings"

	"gopkg.in/yaml.v2"
)

var SplitYAMLDocuments = func(content string) []string {
	lines := strings.Split(content, "\n")
	docs := make([]string, 0)
	var current []string

	flush := func() {
		doc := strings.TrimSpace(strings.Join(current, "\n"))
		if doc != "" {
			docs = append(docs, doc)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		// a separator is "---" alone on its line, optionally followed by a comment
		if trimmed == "---" || strings.HasPrefix(trimmed, "--- ") {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return docs
}

// DecodeYAMLDocuments unmarshals every document in content into a fresh T.
func DecodeYAMLDocuments[T any](content string) ([]T, error) {
	docs := SplitYAMLDocuments(content)
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var items []T
		if err := yaml.Unmarshal([]byte(doc), &items); err == nil {
			out = append(out, items...)
			continue
		}
		var item T
		if err := yaml.UnmarshalStrict([]byte(doc), &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
