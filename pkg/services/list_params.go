package services

// ListParams are the common listing controls shared by every collection:
// substring search over the entity's string fields and an optional sort.
// When SortField is empty the listing falls back to a stable id order.
type ListParams struct {
	Search        string
	SortField     string
	SortAscending bool
}
