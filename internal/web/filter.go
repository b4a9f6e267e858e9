package web

import (
	"net/url"
	"sort"
	"strings"

	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// FilterAndSort keeps tweets whose title contains search.SearchString, ignoring
// case, and orders them by creation time. Ties keep their input order.
// The input slice is not modified.
func FilterAndSort(tweets []models.TweetListItem, search validation.TweetsSearch) []models.TweetListItem {
	needle := strings.ToLower(search.SearchString)

	out := make([]models.TweetListItem, 0, len(tweets))
	for _, t := range tweets {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			out = append(out, t)
		}
	}

	asc := search.SortDirection == validation.SortAsc
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// tweetsURL is the canonical list URL for search, default values stripped.
func tweetsURL(search validation.TweetsSearch) string {
	u := url.URL{Path: "/tweets", RawQuery: search.Encode().Encode()}
	return u.String()
}
