package models

// Category is a catalog navigation node. ParentID is nil for top level
// categories; in practice the menu forms a two level tree.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ParentID    *int   `json:"parentId"`
	MenuOrder   int    `json:"menuOrder"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// InsertCategory is the accepted payload for creating a category. The id is
// always assigned by the repository.
type InsertCategory struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	ParentID    *int   `json:"parentId"`
	MenuOrder   int    `json:"menuOrder"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
