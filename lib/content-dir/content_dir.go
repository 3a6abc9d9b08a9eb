package contentdir

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/bidi"
	"site-backend/models"
	blogapimodels "site-backend/models/api/blog"
)

// Detect - направление текста по первому символу с сильной направленностью.
// Теги и их атрибуты пропускаются
func Detect(content string) models.ContentDirection {
	text := html.UnescapeString(stripTags(content))
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return models.ContentDirectionRTL
		case bidi.L:
			return models.ContentDirectionLTR
		}
	}
	return models.ContentDirectionLTR
}

// Style - стиль, который применяется только к блоку с содержимым
func Style(content string) blogapimodels.ContentStyle {
	direction := Detect(content)
	return blogapimodels.ContentStyle{
		Direction: direction,
		TextAlign: direction.TextAlign(),
	}
}

func stripTags(content string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
			sb.WriteRune(' ')
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
