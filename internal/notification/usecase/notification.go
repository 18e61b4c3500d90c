package usecase

import (
	"context"

	"gatherup-api/internal/model"
	"gatherup-api/internal/notification"
	"gatherup-api/internal/notification/repository"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip notification.GetInput) (notification.GetOutput, error) {
	notifs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			UnreadOnly: ip.Filter.UnreadOnly,
			Category:   ip.Filter.Category,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Get: %v", err)
		return notification.GetOutput{}, err
	}

	return notification.GetOutput{
		Notifications: notifs,
		Paginator:     pag,
	}, nil
}

func (uc *usecase) MarkRead(ctx context.Context, sc model.Scope, id string) (model.Notification, error) {
	notif, err := uc.repo.MarkRead(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Notification{}, notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead: %v", err)
		return model.Notification{}, err
	}

	return notif, nil
}
