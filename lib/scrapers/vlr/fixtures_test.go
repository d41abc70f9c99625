package vlr

import (
	"embed"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed testdata
var fixtures embed.FS

func loadFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	file, err := fixtures.Open("testdata/" + name)
	require.NoError(t, err)
	defer file.Close()
	doc, err := goquery.NewDocumentFromReader(file)
	require.NoError(t, err)
	return doc
}
