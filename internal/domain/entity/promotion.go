package entity

// AdSlide is a promotional banner shown on the storefront.
type AdSlide struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// Notice is a short announcement line.
type Notice struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
