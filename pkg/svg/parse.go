package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrNoRootElement is returned when the document is well-formed XML but its
// root element is not <svg>.
var ErrNoRootElement = errors.New("svg: no root <svg> element")

// Parse parses SVG text into an element tree. It fails on malformed XML or
// a missing <svg> root; an absent viewBox attribute is not an error and
// leaves Document.ViewBox nil.
func Parse(svgText string) (*Document, error) {
	dec := xml.NewDecoder(strings.NewReader(svgText))
	dec.CharsetReader = charsetReader

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("svg: parse: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, Text(text))
		}
	}

	if root == nil || root.Tag != "svg" {
		return nil, ErrNoRootElement
	}

	doc := &Document{Root: root}
	if vbText, ok := root.Attr("viewBox"); ok {
		if vb, ok := ParseViewBox(vbText); ok {
			doc.ViewBox = &vb
		}
	}
	return doc, nil
}

// charsetReader resolves the encoding named in an XML declaration so
// non-UTF-8 documents still parse.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("svg: unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}
