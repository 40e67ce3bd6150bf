package rendering

import (
	"embed"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/resumegenie/backend/models"
)

//go:embed templates/resume.html
var templateFS embed.FS

const templateName = "resume.html"

// TemplateData is what the resume template is executed with
type TemplateData struct {
	Resume        *models.Resume
	GeneratedDate string
}

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

func resumeTemplate() (*template.Template, error) {
	parseOnce.Do(func() {
		tmpl, err := template.New(templateName).
			Funcs(template.FuncMap{"join": strings.Join}).
			ParseFS(templateFS, "templates/"+templateName)
		if err != nil {
			parseErr = &TemplateError{Message: "failed to parse resume template", Cause: err}
			return
		}
		parsed = tmpl
	})
	return parsed, parseErr
}

// RenderHTML executes the resume template. now sets the "Generated" footer
// date, formatted as month and year.
func RenderHTML(content models.ResumeContent, now time.Time) (string, error) {
	tmpl, err := resumeTemplate()
	if err != nil {
		return "", err
	}

	resume, err := content.Typed()
	if err != nil {
		return "", &RenderError{Message: "failed to build template data", Cause: err}
	}

	var result strings.Builder
	data := TemplateData{Resume: resume, GeneratedDate: now.Format("January 2006")}
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return result.String(), nil
}
