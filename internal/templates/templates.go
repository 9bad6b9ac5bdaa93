package templates

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Title is the document title. Defaults to ProjectName.
	Title string

	// Description is a short project description.
	Description string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"site":    siteTemplate(),
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E142").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create generates a project in dir. It refuses to touch a directory
// that already holds a markup.json.
func (t *Template) Create(dir string, cfg Config) error {
	if config.Exists(dir) {
		return errors.New("E143").
			WithDetail(filepath.Join(dir, config.ConfigFileName) + " already exists")
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = filepath.Base(dir)
	}
	if cfg.Title == "" {
		cfg.Title = cfg.ProjectName
	}

	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Funcs(funcs).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

const configFile = `{
  "name": {{json .ProjectName}},
  "server": {
    "title": {{json .Title}},
    "styleSheets": ["/site.css"]
  }
}
`

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "markup.json and a single page",
		Files: map[string]string{
			"markup.json": configFile,
			"pages/index.json": `[
  ["h1", {{json .Title}}],
  ["p", {{json .Description}}]
]
`,
			"public/site.css": `body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 40rem; }
`,
		},
	}
}

func siteTemplate() *Template {
	nav := `  ["nav",
    {"call": "link_to", "args": ["Home", "/"]},
    " | ",
    {"call": "link_to", "args": ["About", "/about"]},
    " | ",
    {"call": "link_to", "args": ["Docs", "/docs/"]}],
`
	return &Template{
		Name:        "site",
		Description: "A few linked pages, a docs section and a stylesheet",
		Files: map[string]string{
			"markup.json": configFile,
			"pages/index.json": `[
` + nav + `  ["main",
    ["h1", {{json .Title}}],
    ["p", {"class": "lead"}, {{json .Description}}],
    ["p", "You are at ", {"call": "get", "args": ["path"]}]]
]
`,
			"pages/about.json": `[
` + nav + `  ["main",
    ["h1", "About"],
    ["p", "Pages are JSON element trees rendered to HTML."]]
]
`,
			"pages/docs/index.json": `[
` + nav + `  ["main",
    ["h1", "Docs"],
    ["ul",
      ["li", "Edit pages/*.json and run markup serve --dev."],
      ["li", "Run markup build to write the site to dist/."]]]
]
`,
			"public/site.css": `body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 40rem; }
nav a { margin-right: 0.5rem; }
.lead { font-size: 1.25rem; }
`,
		},
	}
}
