package extract

import (
	"bytes"
	"strings"

	altpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"

	"github.com/quizforge/quizforge/pkg/logx"
)

// extractPDFPrimary pulls text page by page. A page that fails (or panics,
// which the parser does on some malformed streams) contributes nothing and
// the rest of the document is still read.
func extractPDFPrimary(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		logx.WithError(err).WithField("path", path).Warn("primary PDF parser failed to open")
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		sb.WriteString(extractPage(r, i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func extractPage(r *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.WithFields(logx.Fields{"page": num, "panic": rec}).Warn("PDF page extraction panicked")
			text = ""
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// extractPDFAlternate reads the whole document through the alternate parser.
// Used when the primary result is below the usefulness threshold.
func extractPDFAlternate(path string) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.WithFields(logx.Fields{"path": path, "panic": rec}).Warn("alternate PDF parser panicked")
			text = ""
		}
	}()

	r, err := altpdf.Open(path)
	if err != nil {
		logx.WithError(err).WithField("path", path).Debug("alternate PDF parser failed to open")
		return ""
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return ""
	}
	return buf.String()
}

// extractPDFMetadata harvests title, subject, keywords and author from the
// document info dictionary. Last-resort text source before OCR escalation.
func extractPDFMetadata(path string) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}

	var parts []string
	for _, key := range []string{"Title", "Subject", "Keywords", "Author"} {
		v := info.Key(key)
		if v.IsNull() {
			continue
		}
		if s := strings.TrimSpace(v.Text()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
