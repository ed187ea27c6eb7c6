package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"oliadmin/internal/domain/entity"
)

// ParsePriceOffers parses one "quantity,price[,label]" offer per line.
// Malformed lines are dropped rather than failing the whole mutation; the
// second return value counts the drops so callers can observe them. Blank
// lines are skipped and not counted. A missing label defaults to
// "<quantity>+ unidades".
func ParsePriceOffers(raw string) ([]entity.PriceOffer, int) {
	offers := []entity.PriceOffer{}
	dropped := 0

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			dropped++
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			dropped++
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			dropped++
			continue
		}

		label := fmt.Sprintf("%d+ unidades", quantity)
		if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
			label = strings.TrimSpace(parts[2])
		}

		offers = append(offers, entity.PriceOffer{
			Quantity: quantity,
			Price:    price,
			Label:    label,
		})
	}

	return offers, dropped
}

// ParseImageLines parses one image path per line, skipping blanks.
func ParseImageLines(raw string) []string {
	images := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			images = append(images, line)
		}
	}
	return images
}

// normalizeID turns operator-supplied text into a collection id: lowercase,
// spaces replaced with underscores.
func normalizeID(raw string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_"))
}
