package setup

import (
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/uraita-dev/uraita/frontend/internal/apiclient"
	"github.com/uraita-dev/uraita/frontend/internal/handler"
	"github.com/uraita-dev/uraita/shared/config"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "frontend/templates"
	staticPath             = "frontend/static"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler    *handler.Handler
	StaticPath string
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	templates := mustLoadTemplates(tmplPath)
	apiClient := apiclient.New(cfg.Public.ApiBaseURL)

	h := handler.New(templates, cfg.Public, apiClient)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Handler:    h,
		StaticPath: staticPath,
	}
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub": sub,
					"add": add,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
			))
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
