package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText returns the concatenated text content of every text node
// under node, in document order.
func GetText(node *html.Node) string {
	var buffer strings.Builder
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var escaper = strings.NewReplacer("\n", "", "\t", "")

func walkText(node *html.Node, visit func(text string)) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			visit(text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkText(child, visit)
	}
}

// FirstText returns the first non-empty trimmed text node under the
// first node of sel, with embedded newlines and tabs stripped.
func FirstText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	first := ""
	walkText(sel.Nodes[0], func(text string) {
		if first == "" {
			first = text
		}
	})
	return escaper.Replace(first)
}

// LastTextOf returns the last non-empty trimmed text node under the
// first node of sel. Some site layouts render a label element followed
// by a bare trailing text node; this reads that trailing node.
func LastTextOf(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	last := ""
	walkText(sel.Nodes[0], func(text string) {
		last = text
	})
	return escaper.Replace(last)
}

// JoinedTextOf returns every non-empty trimmed text node under the
// first node of sel joined by sep.
func JoinedTextOf(sel *goquery.Selection, sep string) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	var pieces []string
	walkText(sel.Nodes[0], func(text string) {
		pieces = append(pieces, text)
	})
	return strings.Join(pieces, sep)
}

// SelectText returns the trimmed text of the first non-empty text node
// under the first element matching selector. Returns "" when nothing
// matches; callers that need to tell "absent" apart from "empty" must
// check the selection themselves.
func SelectText(sel *goquery.Selection, selector string) string {
	return FirstText(sel.Find(selector).First())
}

// LastText is SelectText but reading the last text node instead of the
// first.
func LastText(sel *goquery.Selection, selector string) string {
	return LastTextOf(sel.Find(selector).First())
}

// JoinedText returns all text under the first element matching
// selector, with each text node trimmed and the non-empty pieces
// joined by sep.
func JoinedText(sel *goquery.Selection, selector, sep string) string {
	return JoinedTextOf(sel.Find(selector).First(), sep)
}

// SelectAttr returns the given attribute of the first element matching
// selector, or "" when the element or attribute is absent.
func SelectAttr(sel *goquery.Selection, selector, attr string) string {
	return sel.Find(selector).First().AttrOr(attr, "")
}

// Classes returns the class tokens of the first node in sel.
func Classes(sel *goquery.Selection) []string {
	return strings.Fields(sel.AttrOr("class", ""))
}

// PrefixedClassOf finds the first class token of the first node in sel
// that starts with prefix and returns it with the prefix stripped.
func PrefixedClassOf(sel *goquery.Selection, prefix string) string {
	for _, class := range Classes(sel) {
		if strings.HasPrefix(class, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(class, prefix))
		}
	}
	return ""
}

// PrefixedClass is PrefixedClassOf applied to the first element
// matching selector. Returns "" when no such token exists.
func PrefixedClass(sel *goquery.Selection, selector, prefix string) string {
	return PrefixedClassOf(sel.Find(selector).First(), prefix)
}
