package model

// Topic is keyed by its slug.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
