// Package recipe builds selectors from declarative YAML descriptions. A
// recipe is a list of named entries; an entry either lists selector parts in
// grammar order or joins two other entries with a combinator. Recipes never
// contain raw CSS to parse - everything is built forward through the
// selector package.
package recipe

import (
	"bytes"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Parts lists selector fragments for one entry. Lists are applied in the
// order written, after the scalar fields, so the usual grammar-order rules
// of the selector builder apply.
type Parts struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
}

// Join composes two named entries with a combinator. Combinator accepts
// either the literal token (" ", ">", "+", "~") or its name (descendant,
// child, adjacent-sibling, general-sibling).
type Join struct {
	Combinator string `yaml:"combinator"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
}

// Entry is one named selector. Exactly one of Parts or Join must be set.
type Entry struct {
	Name  string `yaml:"name"`
	Parts *Parts `yaml:"parts,omitempty"`
	Join  *Join  `yaml:"join,omitempty"`
}

// Recipe is the top-level document of a recipe file.
type Recipe struct {
	Version   int     `yaml:"version"`
	Selectors []Entry `yaml:"selectors"`
}

// Load decodes recipe data. Unknown fields are rejected so typos in recipe
// files fail loudly instead of silently dropping fragments.
func Load(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if r.Version != 1 {
		return nil, fmt.Errorf("unsupported recipe version %d", r.Version)
	}

	seen := make(map[string]struct{}, len(r.Selectors))
	for _, e := range r.Selectors {
		if e.Name == "" {
			return nil, fmt.Errorf("recipe entry without a name")
		}
		if _, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("duplicate recipe entry %q", e.Name)
		}
		seen[e.Name] = struct{}{}
		if (e.Parts == nil) == (e.Join == nil) {
			return nil, fmt.Errorf("recipe entry %q must have exactly one of parts or join", e.Name)
		}
	}
	return &r, nil
}

// Rendered is one built selector, in recipe order.
type Rendered struct {
	Name     string
	Selector string
}

// Builder renders recipes into selector strings.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a recipe builder.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("recipe")}
}

// Build renders every entry of the recipe in order. Entries are independent:
// a failing entry does not stop the rest, all failures come back aggregated
// in a single error alongside whatever did render.
func (b *Builder) Build(r *Recipe) ([]Rendered, error) {
	byName := make(map[string]*Entry, len(r.Selectors))
	for i := range r.Selectors {
		byName[r.Selectors[i].Name] = &r.Selectors[i]
	}

	var (
		out  []Rendered
		errs error
	)
	for i := range r.Selectors {
		e := &r.Selectors[i]
		rend, err := b.resolve(e, byName, make(map[string]struct{}))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", e.Name, err))
			continue
		}
		s, err := rend.Render()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", e.Name, err))
			continue
		}
		b.log.Debug("Rendered selector", zap.String("name", e.Name), zap.String("selector", s))
		out = append(out, Rendered{Name: e.Name, Selector: s})
	}
	return out, errs
}

// resolve turns an entry into a Renderable, following join references.
// visiting guards against reference cycles.
func (b *Builder) resolve(e *Entry, byName map[string]*Entry, visiting map[string]struct{}) (selector.Renderable, error) {
	if _, ok := visiting[e.Name]; ok {
		return nil, fmt.Errorf("reference cycle through %q", e.Name)
	}
	visiting[e.Name] = struct{}{}
	defer delete(visiting, e.Name)

	if e.Parts != nil {
		return buildParts(e.Parts), nil
	}

	op, err := parseCombinator(e.Join.Combinator)
	if err != nil {
		return nil, err
	}
	left, err := b.resolveRef(e.Join.Left, byName, visiting)
	if err != nil {
		return nil, err
	}
	right, err := b.resolveRef(e.Join.Right, byName, visiting)
	if err != nil {
		return nil, err
	}
	return selector.Combine(left, op, right), nil
}

func (b *Builder) resolveRef(name string, byName map[string]*Entry, visiting map[string]struct{}) (selector.Renderable, error) {
	ref, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown entry %q", name)
	}
	return b.resolve(ref, byName, visiting)
}

// buildParts applies parts to a fresh builder in grammar order. Violations
// stay on the builder and surface when the entry renders.
func buildParts(p *Parts) *selector.Builder {
	sb := selector.New()
	if p.Element != "" {
		sb.Element(p.Element)
	}
	if p.ID != "" {
		sb.ID(p.ID)
	}
	for _, c := range p.Classes {
		sb.Class(c)
	}
	for _, a := range p.Attributes {
		sb.Attr(a)
	}
	for _, pc := range p.PseudoClasses {
		sb.PseudoClass(pc)
	}
	if p.PseudoElement != "" {
		sb.PseudoElement(p.PseudoElement)
	}
	return sb
}

func parseCombinator(s string) (selector.Combinator, error) {
	switch s {
	case " ", "descendant":
		return selector.Descendant, nil
	case ">", "child":
		return selector.Child, nil
	case "+", "adjacent-sibling":
		return selector.AdjacentSibling, nil
	case "~", "general-sibling":
		return selector.GeneralSibling, nil
	default:
		return "", fmt.Errorf("unknown combinator %q", s)
	}
}
