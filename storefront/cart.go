package storefront

import (
	"time"

	"github.com/shopspring/decimal"
)

type Line struct {
	Item     Item
	Quantity int
}

// Subtotal is unit price times quantity, with a missing price counting as zero.
func (l Line) Subtotal() decimal.Decimal {
	return UnitPrice(l.Item.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an immutable list of lines in insertion order. Every operation returns a new
// Cart and leaves the receiver untouched, so callers can compare snapshots by identity.
// Invariants: one line per item id, every quantity >= 1.
type Cart struct {
	lines []Line
}

func (c Cart) Add(item Item) Cart {
	next := make([]Line, len(c.lines), len(c.lines)+1)
	copy(next, c.lines)
	for i := range next {
		if next[i].Item.ID == item.ID {
			next[i].Quantity++
			return Cart{lines: next}
		}
	}
	return Cart{lines: append(next, Line{Item: item, Quantity: 1})}
}

// Remove takes one unit of itemID out of the cart, dropping the line when it reaches zero.
// Removing an item that is not in the cart is a no-op.
func (c Cart) Remove(itemID string) Cart {
	next := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		if line.Item.ID == itemID {
			if line.Quantity > 1 {
				line.Quantity--
				next = append(next, line)
			}
			continue
		}
		next = append(next, line)
	}
	return Cart{lines: next}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Count is the number of units in the cart, not the number of distinct lines.
func (c Cart) Count() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart's lines.
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) Quantity(itemID string) int {
	for _, line := range c.lines {
		if line.Item.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// OrderDraft is a checkout-time snapshot of a cart.
type OrderDraft struct {
	Lines      []Line
	Total      decimal.Decimal
	ComposedAt time.Time
}

func (c Cart) Draft(now time.Time) OrderDraft {
	return OrderDraft{
		Lines:      c.Lines(),
		Total:      c.Total(),
		ComposedAt: now,
	}
}

// Message renders the draft for the given store; empty drafts render as "".
func (d OrderDraft) Message(storeName string) string {
	return ComposeOrder(storeName, d.Lines, d.Total, d.ComposedAt)
}
