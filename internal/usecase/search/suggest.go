package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/result"
)

// Suggestion limits.
const (
	MinSuggestionQuery = 2
	MaxSuggestions     = 5
)

// Suggest returns autocomplete candidates for a partial text query, scanning
// active listings only. Queries shorter than MinSuggestionQuery yield empty
// lists to avoid overly broad scans. Each list is ordered lexicographically
// for reproducibility and capped at MaxSuggestions.
func (s *Service) Suggest(ctx context.Context, text string) (result.Suggestions, error) {
	out := result.Empty()
	text = strings.TrimSpace(text)
	if len(text) < MinSuggestionQuery {
		return out, nil
	}

	items, err := s.corpus.Fetch(ctx, listing.Hint{ActiveOnly: true})
	if err != nil {
		return out, fmt.Errorf("fetch corpus: %w", err)
	}

	needle := strings.ToLower(text)
	seenHoods := map[string]bool{}
	seenTypes := map[string]bool{}

	for i := range items {
		l := &items[i]
		if !l.IsActive() {
			continue
		}
		hood := l.Location().Neighborhood
		hoodMatch := strings.Contains(strings.ToLower(hood), needle)
		if strings.Contains(strings.ToLower(l.Title()), needle) || hoodMatch {
			out.Properties = append(out.Properties, result.Ref{
				ID:           l.ID(),
				Title:        l.Title(),
				Type:         l.Type(),
				Price:        l.Price(),
				Neighborhood: hood,
			})
		}
		if hoodMatch && hood != "" && !seenHoods[strings.ToLower(hood)] {
			seenHoods[strings.ToLower(hood)] = true
			out.Neighborhoods = append(out.Neighborhoods, hood)
		}
		ty := string(l.Type())
		if strings.Contains(ty, needle) && !seenTypes[ty] {
			seenTypes[ty] = true
			out.Types = append(out.Types, ty)
		}
	}

	sort.Slice(out.Properties, func(i, j int) bool {
		if out.Properties[i].Title != out.Properties[j].Title {
			return out.Properties[i].Title < out.Properties[j].Title
		}
		return out.Properties[i].ID < out.Properties[j].ID
	})
	sort.Strings(out.Neighborhoods)
	sort.Strings(out.Types)

	if len(out.Properties) > MaxSuggestions {
		out.Properties = out.Properties[:MaxSuggestions]
	}
	out.Neighborhoods = capStrings(out.Neighborhoods)
	out.Types = capStrings(out.Types)
	return out, nil
}

func capStrings(ss []string) []string {
	if len(ss) > MaxSuggestions {
		return ss[:MaxSuggestions]
	}
	return ss
}
