package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/report"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name           string
		lang           string
		acceptLanguage string
		want           language.Tag
	}{
		{name: "default", want: language.English},
		{name: "explicit turkish", lang: "tr", want: language.Turkish},
		{name: "regional turkish", lang: "tr-TR", want: language.Turkish},
		{name: "explicit wins over header", lang: "en", acceptLanguage: "tr", want: language.English},
		{name: "header", acceptLanguage: "tr-TR,tr;q=0.9,en;q=0.8", want: language.Turkish},
		{name: "unsupported falls back", lang: "de", want: language.English},
		{name: "garbage ignored", lang: "not a tag!", acceptLanguage: "tr", want: language.Turkish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.lang, tt.acceptLanguage))
		})
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Overall Score", Lookup(language.English, "overallScore"))
	assert.Equal(t, "Genel Puan", Lookup(language.Turkish, "overallScore"))
	assert.Equal(t, "Overall Score", Lookup(language.German, "overallScore"))
	assert.Equal(t, "noSuchKey", Lookup(language.Turkish, "noSuchKey"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en := Catalog(language.English)
	tr := Catalog(language.Turkish)

	assert.Len(t, tr, len(en))
	for k := range en {
		assert.Contains(t, tr, k)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog(language.English)
	c["analyze"] = "changed"

	assert.Equal(t, "Analyze", Lookup(language.English, "analyze"))
}

func TestCatalogCoversSummaryKeys(t *testing.T) {
	keys := []string{
		string(model.StatusExcellent), string(model.StatusGood), string(model.StatusFair), string(model.StatusPoor),
		string(model.Complete), string(model.Partial), string(model.Incomplete), string(model.Missing),
		report.CategoryTechnical, report.CategoryContent, report.CategorySocial, report.CategoryStructure,
		report.DetailAllPresent, report.DetailSomeMissing, report.DetailCriticalMissing,
		report.DetailMissingViewport, report.DetailMissingCharset, report.DetailMissingTitle,
		report.DetailMissingDescription, report.DetailTitleTooLong, report.DetailMissingOpenGraph,
		report.DetailMissingTwitter, report.DetailMissingCanonical,
	}

	en := Catalog(language.English)
	for _, k := range keys {
		assert.Contains(t, en, k)
	}
}
