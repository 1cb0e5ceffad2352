package persistence

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// writeDocx writes the summary as a Word document, one paragraph per
// non-blank line. Backends sometimes answer with light markdown, so bullets
// and **bold** spans are rendered rather than copied literally.
func writeDocx(summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(p, "• "+m[1])
			continue
		}
		addRichText(p, trimmed)
	}

	return doc.SaveTo(outputPath)
}

// addRichText renders **bold** spans as bold runs. Other inline markers
// (stray **, __, backticks) are dropped.
func addRichText(p *docx.Paragraph, text string) {
	plain := strings.NewReplacer("**", "", "__", "", "`", "")
	parts := reBold.Split(text, -1)
	spans := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part = plain.Replace(part); part != "" {
			p.AddText(part).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(spans) {
			p.AddText(plain.Replace(spans[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}
