// Package sample generates the demo items for the swipe list.
package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/chmouel/swipemenu/internal/models"
	"github.com/chmouel/swipemenu/internal/utils"
	"github.com/google/uuid"
)

// Generate returns n items, each with between 0 and maxLines description
// lines. Item ids are stable for a given index.
func Generate(n, maxLines int, rng *rand.Rand) []*models.Item {
	if n <= 0 {
		return nil
	}
	if maxLines < 0 {
		maxLines = 0
	}

	items := make([]*models.Item, 0, n)
	for number := 1; number <= n; number++ {
		lines := rng.IntN(maxLines + 1)
		description := make([]string, 0, lines)
		for d := 1; d <= lines; d++ {
			description = append(description, fmt.Sprintf("description [%d]", d))
		}

		items = append(items, &models.Item{
			ID:          ItemID(number),
			Title:       fmt.Sprintf("Item [%d] should have [%d] lines of description", number, lines),
			File:        utils.RandomFileName(rng),
			Description: description,
		})
	}
	return items
}

// ItemID derives the stable id of the item at a 1-based position.
func ItemID(number int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "swipemenu:item:%d", number)).String()
}
