package svg

import (
	"encoding/xml"
	"strings"
)

// Node is one entry in an element's ordered child list: either a nested
// *Element or a Text segment. Order is preserved through parse/serialize.
type Node interface {
	writeTo(b *strings.Builder)
}

// Text is character data between elements.
type Text string

// Attr is a single attribute. Attributes keep their document order so a
// serialized tree reproduces the input layout.
type Attr struct {
	Name  string
	Value string
}

// Element is a tag with ordered attributes and ordered children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Document is the transient parse result of one tile's SVG text. It lives
// for a single parse → mutate → serialize pass; the serialized string is
// the canonical state.
type Document struct {
	Root *Element
	// ViewBox is nil when the root carries no (parseable) viewBox attribute.
	ViewBox *ViewBox
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the named attribute in place or appends it.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Elements returns the element children in order, skipping text nodes.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Walk visits e and every descendant element in document order. Returning
// false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			if !el.Walk(fn) {
				return false
			}
		}
	}
	return true
}

// InnerXML serializes the element's children without the element itself,
// for embedding the tile's content into another document.
func (e *Element) InnerXML() string {
	var b strings.Builder
	for _, c := range e.Children {
		c.writeTo(&b)
	}
	return b.String()
}

// String serializes the current tree state back to SVG text.
func (d *Document) String() string {
	var b strings.Builder
	d.Root.writeTo(&b)
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeText(a.Value))
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range e.Children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func (t Text) writeTo(b *strings.Builder) {
	b.WriteString(escapeText(string(t)))
}

func escapeText(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
