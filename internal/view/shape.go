// Package view turns stored records into render-ready values: truncated
// comment bodies, glyph arrays that drive the star indicators, and the
// fixed three-row layout of the establishments page.
package view

import (
	"unicode/utf8"

	"eggy/internal/store"
)

// truncateLimit is the longest comment body shown on listing pages,
// counted in characters, not bytes.
const truncateLimit = 120

// Truncate returns text unchanged when it fits, otherwise the first 120
// characters with an ellipsis marker appended.
func Truncate(text string) string {
	if utf8.RuneCountInString(text) <= truncateLimit {
		return text
	}
	return string([]rune(text)[:truncateLimit]) + "..."
}

// RatingGlyphs returns a slice of length n ([0..n-1]). Templates range
// over it to repeat a star glyph; only the length matters. Ratings are
// trusted to be 1-5 upstream, n <= 0 yields an empty slice.
func RatingGlyphs(n int) []int {
	if n <= 0 {
		return []int{}
	}
	glyphs := make([]int, n)
	for i := range glyphs {
		glyphs[i] = i
	}
	return glyphs
}

// Comment is a store.Comment decorated for rendering.
type Comment struct {
	Author        string `json:"author"`
	RestoName     string `json:"resto_name"`
	Content       string `json:"content"`
	RatingCount   []int  `json:"rating_count"`
	FoodStars     []int  `json:"food_stars"`
	ServiceStars  []int  `json:"service_stars"`
	AmbianceStars []int  `json:"ambiance_stars"`
	OverallStars  []int  `json:"overall_stars"`
}

// DecorateComments shapes comments for listing surfaces: truncated body
// plus a glyph array for the overall rating.
func DecorateComments(comments []store.Comment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			Author:      c.Author,
			RestoName:   c.RestoName,
			Content:     Truncate(c.Content),
			RatingCount: RatingGlyphs(c.OverallRating),
		})
	}
	return out
}

// DecorateProfileComments shapes comments for the profile page, where
// all four rating dimensions are displayed and the body is shown whole.
func DecorateProfileComments(comments []store.Comment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			Author:        c.Author,
			RestoName:     c.RestoName,
			Content:       c.Content,
			FoodStars:     RatingGlyphs(c.FoodRating),
			ServiceStars:  RatingGlyphs(c.ServiceRating),
			AmbianceStars: RatingGlyphs(c.AmbianceRating),
			OverallStars:  RatingGlyphs(c.OverallRating),
		})
	}
	return out
}

// Restaurant is a store.Restaurant decorated with its rating glyphs.
type Restaurant struct {
	store.Restaurant
	RatingStars []int `json:"rating_stars"`
}

func DecorateRestaurants(restaurants []store.Restaurant) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, Restaurant{
			Restaurant:  r,
			RatingStars: RatingGlyphs(r.MainRating),
		})
	}
	return out
}

// Rows is the fixed three-row layout of the establishments page.
type Rows struct {
	Row1 []store.Restaurant
	Row2 []store.Restaurant
	Row3 []store.Restaurant
}

// PartitionRows splits restaurants into rows of 3, 3, and the rest.
func PartitionRows(restaurants []store.Restaurant) Rows {
	var rows Rows
	rows.Row1 = sliceRange(restaurants, 0, 3)
	rows.Row2 = sliceRange(restaurants, 3, 6)
	rows.Row3 = sliceRange(restaurants, 6, len(restaurants))
	return rows
}

func sliceRange(r []store.Restaurant, from, to int) []store.Restaurant {
	if from > len(r) {
		from = len(r)
	}
	if to > len(r) {
		to = len(r)
	}
	return r[from:to]
}
