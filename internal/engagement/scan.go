package engagement

import (
	"context"
	"fmt"

	"boostoracle/internal/engagement/ports"
)

// fetchPage retrieves one page of index results for a cursor. The first call
// receives an empty cursor.
type fetchPage func(ctx context.Context, cursor string) (ports.Page, error)

// scan drains a cursor-paginated index until an item satisfies match, the
// next-cursor runs out, or maxPages pages have been fetched. It returns the
// first matching event's normalized timestamp. Each iteration either returns
// or advances the cursor, so the loop terminates even against an index that
// keeps producing pages.
func scan(ctx context.Context, fetch fetchPage, match func(ports.Event) bool, maxPages int) (int64, bool, error) {
	cursor := ""
	for fetched := 0; fetched < maxPages; fetched++ {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return 0, false, fmt.Errorf("fetch page %d: %w", fetched+1, err)
		}
		for _, item := range page.Items {
			if match(item) {
				return item.TimestampMs(), true, nil
			}
		}
		if page.NextCursor == "" {
			return 0, false, nil
		}
		cursor = page.NextCursor
	}
	return 0, false, fmt.Errorf("scan exceeded %d pages", maxPages)
}
