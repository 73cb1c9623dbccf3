// Package labels maps the semantic keys the analyzer emits to display text.
// The locale is always passed in; there is no process-wide language.
package labels

import (
	"maps"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Turkish,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"analyze":         "Analyze",
		"analyzing":       "Analyzing...",
		"analyzeTags":     "Analyze Tags",
		"enterUrl":        "Enter website URL (e.g., example.com)",
		"overallScore":    "Overall Score",
		"seoHealth":       "SEO Health",
		"bestPractices":   "Best Practices",
		"recommendations": "Recommendations",
		"errors":          "Errors",
		"warnings":        "Warnings",
		"info":            "Information",
		"googlePreview":   "Google Preview",
		"socialPreviews":  "Social Media Previews",

		"excellent": "Excellent",
		"good":      "Good",
		"fair":      "Fair",
		"poor":      "Poor",

		"complete":   "Complete",
		"partial":    "Partial",
		"incomplete": "Incomplete",
		"missing":    "Missing",

		"technical": "Technical SEO",
		"content":   "Content",
		"social":    "Social",
		"structure": "Structure",

		"allEssentialPresent":     "All essential elements present",
		"someElementsMissing":     "Some elements missing or incomplete",
		"criticalElementsMissing": "Critical elements missing",
		"missingViewport":         "Missing viewport meta tag",
		"missingCharset":          "Missing charset definition",
		"missingTitle":            "Missing title tag",
		"missingDescription":      "Missing meta description",
		"titleTooLong":            "Title tag too long",
		"missingOpenGraph":        "Missing Open Graph tags",
		"missingTwitterCard":      "Missing Twitter Card tags",
		"missingCanonical":        "Missing canonical URL",
	},
	language.Turkish: {
		"analyze":         "Analiz Et",
		"analyzing":       "Analiz Ediliyor...",
		"analyzeTags":     "Etiketleri Analiz Et",
		"enterUrl":        "Web sitesi URL'sini girin (örn: example.com)",
		"overallScore":    "Genel Puan",
		"seoHealth":       "SEO Sağlığı",
		"bestPractices":   "En İyi Uygulamalar",
		"recommendations": "Öneriler",
		"errors":          "Hatalar",
		"warnings":        "Uyarılar",
		"info":            "Bilgi",
		"googlePreview":   "Google Önizleme",
		"socialPreviews":  "Sosyal Medya Önizlemeleri",

		"excellent": "Mükemmel",
		"good":      "İyi",
		"fair":      "Orta",
		"poor":      "Zayıf",

		"complete":   "Tamam",
		"partial":    "Kısmi",
		"incomplete": "Eksik",
		"missing":    "Yok",

		"technical": "Teknik SEO",
		"content":   "İçerik",
		"social":    "Sosyal",
		"structure": "Yapı",

		"allEssentialPresent":     "Tüm temel öğeler mevcut",
		"someElementsMissing":     "Bazı öğeler eksik veya tamamlanmamış",
		"criticalElementsMissing": "Kritik öğeler eksik",
		"missingViewport":         "Viewport meta etiketi eksik",
		"missingCharset":          "Karakter kodlaması tanımlı değil",
		"missingTitle":            "Başlık etiketi eksik",
		"missingDescription":      "Meta açıklaması eksik",
		"titleTooLong":            "Başlık etiketi çok uzun",
		"missingOpenGraph":        "Open Graph etiketleri eksik",
		"missingTwitterCard":      "Twitter Card etiketleri eksik",
		"missingCanonical":        "Kanonik URL eksik",
	},
}

// Match picks the best supported locale. An explicit lang wins over the
// Accept-Language header; English is the fallback.
func Match(lang, acceptLanguage string) language.Tag {
	var prefs []language.Tag
	if lang != "" {
		if t, err := language.Parse(lang); err == nil {
			prefs = append(prefs, t)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			prefs = append(prefs, tags...)
		}
	}
	_, idx, _ := matcher.Match(prefs...)
	return supported[idx]
}

// Lookup returns the text for key in the given locale, falling back to
// English and finally to the key itself.
func Lookup(tag language.Tag, key string) string {
	if s, ok := catalogFor(tag)[key]; ok {
		return s
	}
	if s, ok := catalogs[language.English][key]; ok {
		return s
	}
	return key
}

// Catalog returns a copy of every label for the locale.
func Catalog(tag language.Tag) map[string]string {
	return maps.Clone(catalogFor(tag))
}

func catalogFor(tag language.Tag) map[string]string {
	_, idx, _ := matcher.Match(tag)
	return catalogs[supported[idx]]
}
