package notification

import (
	"gatherup-api/internal/model"
	"gatherup-api/pkg/paginator"
)

// Filter narrows a notification listing.
type Filter struct {
	UnreadOnly bool
	Category   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Notifications []model.Notification
	Paginator     paginator.Paginator
}
