package models

type ContentDirection string

const (
	ContentDirectionLTR ContentDirection = "ltr"
	ContentDirectionRTL ContentDirection = "rtl"
)

func (d ContentDirection) TextAlign() string {
	if d == ContentDirectionRTL {
		return "right"
	}
	return "left"
}
