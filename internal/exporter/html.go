package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/ql/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/quicklinks-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("quicklinks-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports shortcuts to Netscape bookmark HTML format.
// The slice is written as-is, so passing the engine's ordered view
// preserves the panel order in the export.
func ExportHTML(shortcuts []model.Shortcut) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Quick Links</TITLE>\n")
	b.WriteString("<H1>Quick Links</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, s := range shortcuts {
		name := s.Name
		if name == "" {
			name = s.URL
		}
		fmt.Fprintf(&b,
			"    <DT><A HREF=\"%s\" ICON_URI=\"%s\">%s</A>\n",
			html.EscapeString(s.URL),
			html.EscapeString(s.IconURL),
			html.EscapeString(name),
		)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}
