package svg

import (
	"fmt"
	"strings"
)

// ViolationKind classifies why a document was rejected.
type ViolationKind string

const (
	DisallowedTag       ViolationKind = "disallowed-tag"
	DisallowedAttribute ViolationKind = "disallowed-attribute"
	EventHandler        ViolationKind = "event-handler"
)

// ValidationError reports the first offending construct found in document
// order, with enough context for a caller to highlight it.
type ValidationError struct {
	Kind ViolationKind
	Tag  string
	Attr string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DisallowedTag:
		return fmt.Sprintf("svg: disallowed tag <%s>", e.Tag)
	case EventHandler:
		return fmt.Sprintf("svg: event handler attribute %q on <%s>", e.Attr, e.Tag)
	default:
		return fmt.Sprintf("svg: disallowed attribute %q on <%s>", e.Attr, e.Tag)
	}
}

var allowedTags = map[string]bool{
	"svg": true, "g": true, "path": true, "line": true,
	"polyline": true, "polygon": true, "circle": true, "rect": true,
}

var allowedAttrs = map[string]bool{
	"viewBox": true, "xmlns": true, "width": true, "height": true,
	"d": true, "points": true,
	"x": true, "y": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"cx": true, "cy": true, "r": true, "rx": true, "ry": true,
	"transform": true, "fill": true, "stroke": true,
	"stroke-width": true, "stroke-dasharray": true,
	"stroke-linecap": true, "stroke-linejoin": true,
	"opacity": true, "id": true, "class": true,
}

// Validate walks every element in document order and fails on the first
// disallowed tag, disallowed attribute, or inline event handler. The tag is
// checked before the element's attributes, so the reported violation always
// identifies the first offending node.
func Validate(svgText string) error {
	doc, err := Parse(svgText)
	if err != nil {
		return err
	}

	var verr *ValidationError
	doc.Root.Walk(func(e *Element) bool {
		if !allowedTags[e.Tag] {
			verr = &ValidationError{Kind: DisallowedTag, Tag: e.Tag}
			return false
		}
		for _, a := range e.Attrs {
			if strings.HasPrefix(strings.ToLower(a.Name), "on") {
				verr = &ValidationError{Kind: EventHandler, Tag: e.Tag, Attr: a.Name}
				return false
			}
			if !allowedAttrs[a.Name] {
				verr = &ValidationError{Kind: DisallowedAttribute, Tag: e.Tag, Attr: a.Name}
				return false
			}
		}
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}

// Sanitize is the permissive companion of Validate: disallowed elements are
// stripped with their text content hoisted into the parent, disallowed and
// event-handler attributes are dropped, and the cleaned document is
// re-serialized. Untrusted input is typically sanitized once and then
// re-validated.
func Sanitize(svgText string) (string, error) {
	doc, err := Parse(svgText)
	if err != nil {
		return "", err
	}
	sanitizeElement(doc.Root)
	return doc.String(), nil
}

func sanitizeElement(e *Element) {
	kept := e.Attrs[:0]
	for _, a := range e.Attrs {
		if strings.HasPrefix(strings.ToLower(a.Name), "on") {
			continue
		}
		if !allowedAttrs[a.Name] {
			continue
		}
		kept = append(kept, a)
	}
	e.Attrs = kept

	var children []Node
	for _, c := range e.Children {
		el, ok := c.(*Element)
		if !ok {
			children = append(children, c)
			continue
		}
		sanitizeElement(el)
		if allowedTags[el.Tag] {
			children = append(children, el)
		} else {
			// Drop the element but keep whatever survived inside it.
			children = append(children, el.Children...)
		}
	}
	e.Children = children
}
