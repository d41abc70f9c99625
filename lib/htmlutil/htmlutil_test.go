package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestSelectText(t *testing.T) {
	doc := docFrom(t, `<div class="outer">
		<span class="a">  </span>
		<span class="b">
			hello
			world
		</span>
	</div>`)

	require.Equal(t, "hello", SelectText(doc.Selection, "div.outer span.b"))
	// first non-empty text node wins, even when an earlier match is blank
	require.Equal(t, "hello", SelectText(doc.Selection, "div.outer"))
	require.Equal(t, "", SelectText(doc.Selection, "div.missing"))
}

func TestSelectTextStripsEmbeddedWhitespace(t *testing.T) {
	doc := docFrom(t, "<div><p>one\ntwo\tthree</p></div>")
	require.Equal(t, "onetwothree", SelectText(doc.Selection, "p"))
}

func TestLastText(t *testing.T) {
	doc := docFrom(t, `<div class="date"><span>Watch</span> 10:00 AM</div>`)
	require.Equal(t, "10:00 AM", LastText(doc.Selection, "div.date"))
	require.Equal(t, "", LastText(doc.Selection, "div.none"))
}

func TestSelectAttr(t *testing.T) {
	doc := docFrom(t, `<a href="/player/1/tenz">TenZ</a>`)
	require.Equal(t, "/player/1/tenz", SelectAttr(doc.Selection, "a", "href"))
	require.Equal(t, "", SelectAttr(doc.Selection, "a", "title"))
	require.Equal(t, "", SelectAttr(doc.Selection, "img", "src"))
}

func TestJoinedText(t *testing.T) {
	doc := docFrom(t, `<div class="country"><i class="flag"></i> North <span>America</span></div>`)
	require.Equal(t, "North America", JoinedText(doc.Selection, "div.country", " "))
}

func TestPrefixedClass(t *testing.T) {
	doc := docFrom(t, `<div><i class="flag mod-eu other"></i></div>`)
	require.Equal(t, "eu", PrefixedClass(doc.Selection, "i.flag", "mod-"))
	require.Equal(t, "", PrefixedClass(doc.Selection, "i.missing", "mod-"))
}
