package repository

import "gatherup-api/pkg/paginator"

// Filter contains filtering options for notification queries.
// Queries are always scoped to the requesting recipient.
type Filter struct {
	UnreadOnly bool
	Category   string
}

// GetOptions contains options for paginated notification listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
