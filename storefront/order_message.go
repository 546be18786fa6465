package storefront

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const orderTimeLayout = "02/01/2006 às 15:04"

// ComposeOrder renders the WhatsApp order text. Lines appear in the order given (cart
// insertion order). It returns "" for an empty cart, which callers must not dispatch.
func ComposeOrder(storeName string, lines []Line, total decimal.Decimal, now time.Time) string {
	if len(lines) == 0 {
		return ""
	}

	out := []string{
		fmt.Sprintf("🛒 *Novo pedido - %s*", storeName),
		fmt.Sprintf("📅 %s", now.Format(orderTimeLayout)),
		"",
		"*Itens do pedido:*",
	}

	for i, line := range lines {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, fmt.Sprintf("%d. *%s*", i+1, line.Item.Name))
		if desc := description(line.Item); desc != "" {
			out = append(out, fmt.Sprintf("   _%s_", desc))
		}
		out = append(out, fmt.Sprintf("   %dx %s = %s",
			line.Quantity,
			FormatPrice(line.Item.Price),
			FormatMoney(line.Subtotal())))
	}

	out = append(out,
		"",
		fmt.Sprintf("💰 *Total: %s*", FormatMoney(total)),
		"",
		"Pode confirmar o meu pedido?",
	)

	return strings.Join(out, "\n")
}

func description(item Item) string {
	if item.Description == nil {
		return ""
	}
	return strings.TrimSpace(*item.Description)
}
