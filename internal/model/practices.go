package model

// Best-practice catalog names, in the order the rules run.
const (
	PracticeTitle       = "Title Tag"
	PracticeDescription = "Meta Description"
	PracticeViewport    = "Viewport Meta Tag"
	PracticeCharset     = "Character Encoding"
	PracticeCanonical   = "Canonical URL"
	PracticeLanguage    = "Language Attribute"
	PracticeOpenGraph   = "Open Graph Tags"
	PracticeTwitterCard = "Twitter Card Tags"
	PracticeRobots      = "Robots Meta Tag"
)
