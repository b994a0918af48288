package pose

import (
	"log"
	"strings"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

// Info is the display metadata of a template.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Catalog is the ordered, read-only sequence of pose templates. Index order
// is game progression order.
type Catalog struct {
	templates []Template
}

// NewCatalog creates a catalog from templates in progression order.
// Templates naming an unknown check are kept but always score 0.
func NewCatalog(templates []Template) *Catalog {
	c := &Catalog{templates: make([]Template, len(templates))}
	for i, t := range templates {
		if _, ok := checks[t.Check]; !ok && t.IsSpecial() {
			log.Printf("pose %d (%s): unknown special check %q, it will always score 0", i, t.Name, t.Check)
		}
		c.templates[i] = t.clone()
	}
	return c
}

// Count returns the number of templates.
func (c *Catalog) Count() int {
	return len(c.templates)
}

// Describe returns the display metadata for a template.
// The second return value is false for an out-of-range index.
func (c *Catalog) Describe(index int) (Info, bool) {
	t, ok := c.Get(index)
	if !ok {
		return Info{}, false
	}
	return Info{Name: t.Name, Description: t.Description, Image: t.Image}, true
}

// Get returns a copy of the template at index.
func (c *Catalog) Get(index int) (Template, bool) {
	if index < 0 || index >= len(c.templates) {
		return Template{}, false
	}
	return c.templates[index].clone(), true
}

// Names returns all template names in progression order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name
	}
	return names
}

// Evaluate scores fs against the template at index and reports every
// criterion it checked. The second return value is false for an
// out-of-range index.
func (c *Catalog) Evaluate(fs features.Set, index int) (Evaluation, bool) {
	if index < 0 || index >= len(c.templates) {
		return Evaluation{}, false
	}
	return evaluate(c.templates[index], fs), true
}

// Score returns the similarity of fs to the template at index, in [0, 100].
// An out-of-range index scores 0.
func (c *Catalog) Score(fs features.Set, index int) float64 {
	e, _ := c.Evaluate(fs, index)
	return e.Score
}

// Fallback feedback strings.
const (
	FeedbackInvalidPose = "Invalid pose"
	FeedbackNoPose      = "No pose detected"
	FeedbackKeepTrying  = "Keep trying!"
)

// Feedback returns one marked line per criterion checked for the template
// at index, joined by newlines. It reports exactly the criteria Score uses.
func (c *Catalog) Feedback(fs features.Set, index int) string {
	if index < 0 || index >= len(c.templates) {
		return FeedbackInvalidPose
	}
	if fs == nil {
		return FeedbackNoPose
	}

	e, _ := c.Evaluate(fs, index)
	lines := e.Lines()
	if len(lines) == 0 {
		return FeedbackKeepTrying
	}
	return strings.Join(lines, "\n")
}
