package models

// Category is the garment class assigned by the backend (top, bottom,
// shoe, bag).
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Attribute is a name/value tag the backend extracts from a garment
// photo, e.g. {"color", "navy"} or {"pattern", "striped"}.
type Attribute struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Item represents a single garment in the closet. Items are owned by the
// backend; the client never fabricates identifiers and only holds cached
// copies.
type Item struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"image_url"`
	CategoryID  int         `json:"category_id"`
	Category    Category    `json:"category"`
	Subcategory string      `json:"subcategory,omitempty"`
	Color       string      `json:"color,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// ItemDraft is the JSON create payload used when the image already lives
// at a fetchable URL (the object-storage upload path).
type ItemDraft struct {
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	CategoryID int    `json:"category_id"`
}
