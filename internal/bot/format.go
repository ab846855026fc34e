package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
)

// formatPriceLine - строка для /prices
func formatPriceLine(p domain.LatestPrice) string {
	return fmt.Sprintf("%s (%s) | Текущая цена: %s | Обновлено: %s",
		p.Name,
		strings.ToUpper(p.Symbol),
		humanPrice(p.Price),
		p.Timestamp.UTC().Format(time.RFC3339),
	)
}

// formatHistory - сообщение для /history, сначала новые
func formatHistory(name string, history []domain.PriceObservation) string {
	var bld strings.Builder
	fmt.Fprintf(&bld, "[%s] последние %d:\n", name, len(history))
	for _, h := range history {
		fmt.Fprintf(&bld, "%s  %s", h.Timestamp.UTC().Format("2006-01-02 15:04:05"), humanPrice(h.Price))
		if h.Change24h != nil {
			fmt.Fprintf(&bld, "  (%+.2f%%)", *h.Change24h)
		}
		bld.WriteByte('\n')
	}
	return bld.String()
}

func formatSyncResult(count int) string {
	if count == 0 {
		return "Фид не вернул ни одной цены"
	}
	return fmt.Sprintf("Обновлено монет: %d", count)
}

// humanPrice - форматирование числа с двумя знаками после запятой.
func humanPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
