package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	jobapimodels "site-backend/models/api/job"
)

const (
	utf8FontFile = "Arial.ttf"
	utf8BoldFile = "Arial Bold.ttf"
	fontFamily   = "Arial"
	coreFont     = "Helvetica"
)

// GenerateJobDescription - описание вакансии в pdf. Если в fontDir нет шрифтов с кириллицей,
// используется встроенный шрифт
func GenerateJobDescription(job jobapimodels.JobView, fontDir string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateJobDescription panic recover: %v", r)
		}
	}()
	pdf, tr, family := newDocument(fontDir)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 18)
	pdf.MultiCell(0, 9, tr(job.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(family, "", 11)
	for _, line := range summaryLines(job) {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}

	writeSection(pdf, tr, family, "Описание", job.Description)
	writeSection(pdf, tr, family, "Требования", job.Requirements)
	writeSection(pdf, tr, family, "Условия", job.Benefits)

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newDocument(fontDir string) (*fpdf.Fpdf, func(string) string, string) {
	if fontDir != "" && fileExists(filepath.Join(fontDir, utf8FontFile)) && fileExists(filepath.Join(fontDir, utf8BoldFile)) {
		pdf := fpdf.New("P", "mm", "A4", fontDir)
		pdf.AddUTF8Font(fontFamily, "", utf8FontFile)
		pdf.AddUTF8Font(fontFamily, "B", utf8BoldFile)
		pdf.SetFont(fontFamily, "", 11)
		pdf.AddPage()
		return pdf, func(s string) string { return s }, fontFamily
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(coreFont, "", 11)
	pdf.AddPage()
	return pdf, pdf.UnicodeTranslatorFromDescriptor(""), coreFont
}

func summaryLines(job jobapimodels.JobView) []string {
	lines := make([]string, 0, 6)
	if job.Department != "" {
		lines = append(lines, fmt.Sprintf("Отдел: %s", job.Department))
	}
	location := job.Location
	if job.IsRemote {
		location = strings.TrimSpace(strings.Join([]string{location, "(удалённо)"}, " "))
	}
	if location != "" {
		lines = append(lines, fmt.Sprintf("Локация: %s", location))
	}
	if job.JobType != "" {
		lines = append(lines, fmt.Sprintf("Тип занятости: %s", job.JobType))
	}
	if job.ExperienceLevel != "" {
		lines = append(lines, fmt.Sprintf("Опыт: %s", job.ExperienceLevel))
	}
	if job.Deadline != "" {
		lines = append(lines, fmt.Sprintf("Откликнуться до: %s", job.Deadline))
	}
	if job.StatusName != "" {
		lines = append(lines, fmt.Sprintf("Статус: %s", job.StatusName))
	}
	return lines
}

// writeSection - раздел описания, содержимое из CMS может быть в html
func writeSection(pdf *fpdf.Fpdf, tr func(string) string, family, title, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	pdf.Ln(4)
	pdf.SetFont(family, "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 11)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt*1.5, tr(normalizeHTML(content)))
	pdf.Ln(lineHt * 1.5)
}

func normalizeHTML(content string) string {
	replacer := strings.NewReplacer(
		"</p>", "<br>",
		"<p>", "",
		"<li>", "- ",
		"</li>", "<br>",
		"<ul>", "",
		"</ul>", "",
		"<ol>", "",
		"</ol>", "",
	)
	return replacer.Replace(content)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
