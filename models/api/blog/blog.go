package blogapimodels

import (
	"site-backend/models"
	apimodels "site-backend/models/api"
)

// Blog - запись блога во внешнем API
type Blog struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	PublishAt   string   `json:"publishAt"`
	HtmlContent string   `json:"htmlContent"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ContentStyle struct {
	Direction models.ContentDirection `json:"direction"`
	TextAlign string                  `json:"text_align"`
}

type BlogView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Author      string       `json:"author"`
	PublishAt   string       `json:"publish_at"`
	HtmlContent string       `json:"html_content,omitempty"`
	Image       string       `json:"image,omitempty"`
	Category    string       `json:"category,omitempty"`
	Featured    bool         `json:"featured"`
	Tags        []string     `json:"tags"`
	Style       ContentStyle `json:"style"`
}

type BlogListView = apimodels.PageView[BlogView]

// BlogConvert - карточка для списка, без html содержимого
func BlogConvert(rec Blog) BlogView {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Author:      rec.Author,
		PublishAt:   rec.PublishAt,
		Image:       rec.Image,
		Category:    rec.Category,
		Featured:    rec.Featured,
		Tags:        tags,
		Style: ContentStyle{
			Direction: models.ContentDirectionLTR,
			TextAlign: models.ContentDirectionLTR.TextAlign(),
		},
	}
}

func BlogConvertFull(rec Blog, direction models.ContentDirection) BlogView {
	result := BlogConvert(rec)
	result.HtmlContent = rec.HtmlContent
	result.Style = ContentStyle{
		Direction: direction,
		TextAlign: direction.TextAlign(),
	}
	return result
}
