package showcaseapimodels

type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	Website string `json:"website,omitempty"`
}

type Review struct {
	ID      string  `json:"id"`
	Author  string  `json:"author"`
	Role    string  `json:"role,omitempty"`
	Company string  `json:"company,omitempty"`
	Avatar  string  `json:"avatar,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
	Text    string  `json:"text"`
}
