package docindex

import (
	"strconv"
	"strings"
)

// FormatDocuments formats documents for human review.
// Each document is headed by its title, or its path when the title is
// absent or empty, followed by its path, priority and trimmed text.
// Documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.TitleString()
		if header == "" {
			header = doc.Path
		}
		meta := "path: " + doc.Path + "\npriority: " + strconv.Itoa(doc.Priority)
		parts = append(parts, "## "+header+"\n"+meta+"\n\n"+strings.TrimSpace(doc.Text))
	}

	return strings.Join(parts, "\n\n")
}
