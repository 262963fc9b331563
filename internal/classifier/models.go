package classifier

// classifyRequest is the classifier API request body.
type classifyRequest struct {
	PhotoPaths []string `json:"photo_paths"`
	Style      string   `json:"style,omitempty"`
}

// classifyResponse is the classifier API response structure.
type classifyResponse struct {
	Items []classifiedItem `json:"items"`
}

type classifiedItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Color       string   `json:"color"`
	Brand       string   `json:"brand"`
	Size        string   `json:"size"`
	Confidence  float64  `json:"confidence"`
	Photos      []string `json:"photos"`
}
