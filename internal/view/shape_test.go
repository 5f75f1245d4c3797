package view

import (
	"strings"
	"testing"
	"unicode/utf8"

	"eggy/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello"))
	})

	t.Run("exactly 120 unchanged", func(t *testing.T) {
		text := strings.Repeat("a", 120)
		assert.Equal(t, text, Truncate(text))
	})

	t.Run("long text cut to 120 plus ellipsis", func(t *testing.T) {
		text := strings.Repeat("b", 200)
		got := Truncate(text)
		assert.Len(t, got, 123)
		assert.Equal(t, strings.Repeat("b", 120)+"...", got)
	})

	t.Run("empty text unchanged", func(t *testing.T) {
		assert.Equal(t, "", Truncate(""))
	})

	t.Run("multibyte text is cut by characters, not bytes", func(t *testing.T) {
		text := strings.Repeat("é", 130)
		got := Truncate(text)
		assert.Equal(t, 123, utf8.RuneCountInString(got))
		assert.Equal(t, strings.Repeat("é", 120)+"...", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("multibyte text of 120 characters unchanged", func(t *testing.T) {
		text := strings.Repeat("火", 120)
		assert.Equal(t, text, Truncate(text))
	})
}

func TestRatingGlyphs(t *testing.T) {
	for n := 1; n <= 5; n++ {
		got := RatingGlyphs(n)
		require.Len(t, got, n)
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	}

	assert.Empty(t, RatingGlyphs(0))
	assert.Empty(t, RatingGlyphs(-3))
}

func TestDecorateComments(t *testing.T) {
	comments := []store.Comment{
		{Author: "mika", RestoName: "Frankie's Diner", Content: strings.Repeat("x", 150), OverallRating: 4},
	}

	got := DecorateComments(comments)
	require.Len(t, got, 1)
	assert.Equal(t, "mika", got[0].Author)
	assert.Len(t, got[0].Content, 123)
	assert.Len(t, got[0].RatingCount, 4)
	assert.Nil(t, got[0].FoodStars)
}

func TestDecorateProfileComments(t *testing.T) {
	long := strings.Repeat("y", 150)
	comments := []store.Comment{
		{Author: "mika", Content: long, FoodRating: 1, ServiceRating: 2, AmbianceRating: 3, OverallRating: 5},
	}

	got := DecorateProfileComments(comments)
	require.Len(t, got, 1)
	// The profile shows the whole comment.
	assert.Equal(t, long, got[0].Content)
	assert.Len(t, got[0].FoodStars, 1)
	assert.Len(t, got[0].ServiceStars, 2)
	assert.Len(t, got[0].AmbianceStars, 3)
	assert.Len(t, got[0].OverallStars, 5)
}

func TestDecorateRestaurants(t *testing.T) {
	got := DecorateRestaurants([]store.Restaurant{{Name: "La Piazza", MainRating: 5}})
	require.Len(t, got, 1)
	assert.Len(t, got[0].RatingStars, 5)
}

func restos(n int) []store.Restaurant {
	out := make([]store.Restaurant, n)
	for i := range out {
		out[i] = store.Restaurant{ID: int64(i + 1)}
	}
	return out
}

func TestPartitionRows(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		rows := PartitionRows(nil)
		assert.Empty(t, rows.Row1)
		assert.Empty(t, rows.Row2)
		assert.Empty(t, rows.Row3)
	})

	t.Run("two items fill only the first row", func(t *testing.T) {
		rows := PartitionRows(restos(2))
		assert.Len(t, rows.Row1, 2)
		assert.Empty(t, rows.Row2)
		assert.Empty(t, rows.Row3)
	})

	t.Run("five items split three and two", func(t *testing.T) {
		rows := PartitionRows(restos(5))
		assert.Len(t, rows.Row1, 3)
		assert.Len(t, rows.Row2, 2)
		assert.Empty(t, rows.Row3)
	})

	t.Run("eight items overflow into the third row", func(t *testing.T) {
		rows := PartitionRows(restos(8))
		assert.Len(t, rows.Row1, 3)
		assert.Len(t, rows.Row2, 3)
		assert.Len(t, rows.Row3, 2)
	})
}
