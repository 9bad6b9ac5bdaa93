// Package templates provides project scaffolding for `markup init`.
//
// # Available Templates
//
//   - minimal: markup.json and a single page
//   - site: a few linked pages, a docs section and a stylesheet
//
// # Usage
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    return err
//	}
//	err = tmpl.Create(dir, templates.Config{ProjectName: "docs"})
//
// # Template Variables
//
//	{{.ProjectName}}        - Name of the project
//	{{.Title}}              - Document title, defaults to the project name
//	{{.Description}}        - Short description shown on the home page
//	{{json .Title}}         - Any value as a JSON literal
package templates
