package repository

type CreateInboxItemOptions struct {
	ContentID string
	Notes     string
}

type ListInboxItemsOptions struct {
	Status    string
	ContentID string
	Limit     int
	Offset    int
}

// UpdateInboxStatusOptions describes a guarded transition. The UPDATE is
// keyed on FromStatus so a concurrent transition makes it match zero rows.
type UpdateInboxStatusOptions struct {
	ID         string
	FromStatus string
	ToStatus   string
	Notes      *string
	ReviewedBy string
}
