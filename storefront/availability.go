package storefront

// Item is the storefront's read-only view of a catalog entry.
type Item struct {
	ID          string
	Name        string
	Description *string
	Price       *float64
	CategoryID  string
	Archived    *bool
	Active      *bool
}

// IsAvailable reports whether an item can be added to a cart. Archived always wins;
// otherwise only an explicit active=false hides the item. Absent flags mean available.
func IsAvailable(item Item) bool {
	if item.Archived != nil && *item.Archived {
		return false
	}
	if item.Active != nil && !*item.Active {
		return false
	}
	return true
}
