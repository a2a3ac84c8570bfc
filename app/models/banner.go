package models

// Banner is a promotional slide. Order determines the display sequence;
// listings always sort ascending by it.
type Banner struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
	CategoryID  *int   `json:"categoryId"`
}

// InsertBanner is the accepted payload for creating a banner. Active defaults
// to true when omitted.
type InsertBanner struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
	CategoryID  *int   `json:"categoryId"`
}
