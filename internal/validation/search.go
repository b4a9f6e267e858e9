package validation

import (
	"net/url"
)

// SortDirection orders the tweet list by creation time.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query parameter names of the tweet list.
const (
	ParamSearchString  = "searchString"
	ParamSortDirection = "sortDirection"
)

// TweetsSearch is the list view state carried in the URL.
type TweetsSearch struct {
	SearchString  string        `json:"searchString"`
	SortDirection SortDirection `json:"sortDirection" validate:"oneof=asc desc"`
}

// DefaultTweetsSearch holds the fallback values.
var DefaultTweetsSearch = TweetsSearch{SearchString: "", SortDirection: SortDesc}

// ParseTweetsSearch reads the list parameters, falling back to defaults for missing or invalid values.
func ParseTweetsSearch(values url.Values) TweetsSearch {
	s := DefaultTweetsSearch
	if v, ok := values[ParamSearchString]; ok && len(v) > 0 {
		s.SearchString = v[0]
	}
	if v := values.Get(ParamSortDirection); v != "" {
		candidate := TweetsSearch{SortDirection: SortDirection(v)}
		if validate.Struct(candidate) == nil {
			s.SortDirection = candidate.SortDirection
		}
	}
	return s
}

// Encode returns the query parameters with default values stripped.
func (s TweetsSearch) Encode() url.Values {
	values := url.Values{}
	if s.SearchString != DefaultTweetsSearch.SearchString {
		values.Set(ParamSearchString, s.SearchString)
	}
	if s.SortDirection != DefaultTweetsSearch.SortDirection {
		values.Set(ParamSortDirection, string(s.SortDirection))
	}
	return values
}

// Toggled returns a copy with the opposite sort direction.
func (s TweetsSearch) Toggled() TweetsSearch {
	if s.SortDirection == SortAsc {
		s.SortDirection = SortDesc
	} else {
		s.SortDirection = SortAsc
	}
	return s
}
