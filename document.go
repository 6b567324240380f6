package capriblue

import "fmt"

// Document is a validated locale document ready for rendering. It is
// built once from network data, consumed once, and never mutated.
type Document struct {
	Site     Site
	Sections Sections
	Labels   Labels
	Footer   Footer
	Projects []Project
}

// Site carries the page identity text.
type Site struct {
	Title   string
	Tagline string
}

// Sections carries the section headings.
type Sections struct {
	Projects string
}

// Labels carries the action labels.
type Labels struct {
	Visit string
}

// Footer carries the footer text. Copyright may contain the literal
// placeholder {year}, replaced at render time.
type Footer struct {
	Copyright string
}

// Project is one showcased item on the landing page.
type Project struct {
	Codename    string
	Description string
	URL         string // empty means no call-to-action link
}

// documentFromRaw extracts the typed document from raw data. The input
// must already have passed Validate.
func documentFromRaw(raw any) Document {
	doc := Document{
		Site: Site{
			Title:   pathText(raw, "site.title"),
			Tagline: pathText(raw, "site.tagline"),
		},
		Sections: Sections{
			Projects: pathText(raw, "sections.projects"),
		},
		Labels: Labels{
			Visit: pathText(raw, "labels.visit"),
		},
		Footer: Footer{
			Copyright: pathText(raw, "footer.copyright"),
		},
	}

	entries, _ := lookupPath(raw, "projects")
	list, _ := entries.([]any)
	for _, entry := range list {
		p := Project{
			Codename:    pathText(entry, "codename"),
			Description: pathText(entry, "description"),
		}
		if u, ok := lookupPath(entry, "url"); ok {
			p.URL = asText(u)
		}
		doc.Projects = append(doc.Projects, p)
	}
	return doc
}

// pathText resolves a dot-path and converts the value to display text.
func pathText(raw any, path string) string {
	v, _ := lookupPath(raw, path)
	return asText(v)
}

// asText converts a raw JSON value to its display text.
func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
