package capriblue

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// defaultMountID is the id of the element the rendered tree is mounted
// into.
const defaultMountID = "app"

// yearPlaceholder is replaced in the footer copyright at render time.
const yearPlaceholder = "{year}"

// Renderer builds the landing page tree from a validated document and
// mounts it into a parsed shell.
type Renderer struct {
	mountID string
	now     func() time.Time
}

// NewRenderer creates a Renderer mounting into the element with the given
// id, using now as the clock for the {year} placeholder. Zero values fall
// back to "app" and time.Now.
func NewRenderer(mountID string, now func() time.Time) *Renderer {
	if mountID == "" {
		mountID = defaultMountID
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{mountID: mountID, now: now}
}

// Render mutates page in place: it sets the document title, builds the
// header, projects, and footer blocks as detached nodes, then replaces
// the mount point's children with them in a single swap and clears the
// mount point's busy state. All document text is inserted as text nodes,
// never interpreted as markup.
//
// The document must already have passed Validate; Render fails only when
// the shell has no mount point.
func (r *Renderer) Render(page *html.Node, doc Document) error {
	mount := findByID(page, r.mountID)
	if mount == nil {
		return fmt.Errorf("render: no mount point with id %q", r.mountID)
	}

	setTitle(page, doc.Site.Title)

	// Built off-tree so no intermediate state is ever observable.
	blocks := []*html.Node{
		r.buildHeader(doc),
		r.buildProjects(doc),
		r.buildFooter(doc),
	}

	removeChildren(mount)
	for _, block := range blocks {
		mount.AppendChild(block)
	}
	setAttr(mount, "aria-busy", "false")
	return nil
}

func (r *Renderer) buildHeader(doc Document) *html.Node {
	header := elem(atom.Header)

	title := elem(atom.H1)
	title.AppendChild(text(doc.Site.Title))
	header.AppendChild(title)

	tagline := elem(atom.P, attr("class", "tagline"))
	tagline.AppendChild(text(doc.Site.Tagline))
	header.AppendChild(tagline)

	return header
}

func (r *Renderer) buildProjects(doc Document) *html.Node {
	section := elem(atom.Section, attr("class", "projects"))

	heading := elem(atom.H2)
	heading.AppendChild(text(doc.Sections.Projects))
	section.AppendChild(heading)

	for _, p := range doc.Projects {
		section.AppendChild(r.buildCard(doc.Labels, p))
	}
	return section
}

func (r *Renderer) buildCard(labels Labels, p Project) *html.Node {
	card := elem(atom.Article, attr("class", "card"))

	codename := elem(atom.H3)
	codename.AppendChild(text(p.Codename))
	card.AppendChild(codename)

	description := elem(atom.P)
	description.AppendChild(text(p.Description))
	card.AppendChild(description)

	if p.URL != "" {
		link := elem(atom.A,
			attr("href", p.URL),
			attr("target", "_blank"),
			attr("rel", "noopener noreferrer"),
			attr("aria-label", labels.Visit+": "+p.Codename),
		)
		link.AppendChild(text(labels.Visit))
		card.AppendChild(link)
	}
	return card
}

func (r *Renderer) buildFooter(doc Document) *html.Node {
	year := strconv.Itoa(r.now().Year())

	footer := elem(atom.Footer)
	line := elem(atom.P)
	line.AppendChild(text(strings.Replace(doc.Footer.Copyright, yearPlaceholder, year, 1)))
	footer.AppendChild(line)
	return footer
}

// elem creates a detached element node.
func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// text creates a text node; serialization escapes it, so document text
// can never inject markup.
func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// setAttr updates an attribute in place, appending it when absent.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, attr(key, val))
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findByID returns the first element with the given id, depth first.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// findElement returns the first element with the given tag, depth first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// setTitle replaces the shell's <title> text. Shells without a title
// element keep their markup untouched.
func setTitle(page *html.Node, title string) {
	t := findElement(page, atom.Title)
	if t == nil {
		return
	}
	removeChildren(t)
	t.AppendChild(text(title))
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
