package extract

import (
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/quizforge/quizforge/pkg/logx"
)

// extractDOCX concatenates paragraph text in document order. A paragraph the
// parser cannot render contributes empty text.
func extractDOCX(path string) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.WithFields(logx.Fields{"path": path, "panic": rec}).Warn("DOCX extraction panicked")
			text = ""
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		logx.WithError(err).WithField("path", path).Warn("DOCX open failed")
		return ""
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return ""
	}

	doc, err := docx.Parse(f, fi.Size())
	if err != nil {
		logx.WithError(err).WithField("path", path).Warn("DOCX parse failed")
		return ""
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		sb.WriteString(paragraphText(para))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func paragraphText(p *docx.Paragraph) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()
	return p.String()
}
