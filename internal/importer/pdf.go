package importer

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText returns the plain text of every readable page, one page per
// paragraph. Pages that fail to decode are skipped.
func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}
