package exporter

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/study-flow/pkg/videoid"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeDocx renders the same sections as FormatText into a styled docx
// file, with the same omit-when-empty rule.
func writeDocx(d Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc.AddParagraph(""), "YouTube AI Summary + Study Notes", 16)

	if d.VideoID != "" {
		addBody(doc.AddParagraph(""), "Video ID: "+d.VideoID)
		addBody(doc.AddParagraph(""), "Thumbnail: "+videoid.ThumbnailURL(d.VideoID))
	}

	addHeading(doc.AddParagraph(""), "Summary", 15)
	addBody(doc.AddParagraph(""), d.Summary)

	if len(d.Bullets) > 0 {
		addHeading(doc.AddParagraph(""), "Key takeaways", 15)
		for i, b := range d.Bullets {
			addBody(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, b))
		}
	}

	if len(d.Questions) > 0 {
		addHeading(doc.AddParagraph(""), "Open questions", 15)
		for _, q := range d.Questions {
			addBody(doc.AddParagraph(""), "• "+q)
		}
	}

	if len(d.Blanks) > 0 {
		addHeading(doc.AddParagraph(""), "Fill in the blanks", 15)
		for i, blank := range d.Blanks {
			addBody(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, blank.Question))
			addBody(doc.AddParagraph(""), "Answer: "+blank.Answer)
		}
	}

	addHeading(doc.AddParagraph(""), "Full transcript", 15)
	for _, para := range strings.Split(d.Transcript, "\n") {
		if t := strings.TrimSpace(para); t != "" {
			addBody(doc.AddParagraph(""), t)
		}
	}

	return doc.SaveTo(outputPath)
}

func addHeading(p *docx.Paragraph, text string, size uint64) {
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
