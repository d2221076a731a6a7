package queries

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	// GetByID enforces visibility: only the requester, the resource owner
	// and admins may read a booking.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the actor check for internal reads such as
	// idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRequesterPaginated(ctx context.Context, requesterID uuid.UUID, limit int32, afterCursor *string) ([]*BookingListItem, error)
	FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, limit int32, afterCursor *string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != user.RoleAdmin && actorID != view.RequesterID && actorID != view.OwnerID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	return q.list(ctx, after, limit, func(cursor *string, lim int32) ([]*BookingListItem, error) {
		return q.repo.FindByRequesterPaginated(ctx, requesterID, lim, cursor)
	})
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	return q.list(ctx, after, limit, func(cursor *string, lim int32) ([]*BookingListItem, error) {
		return q.repo.FindByOwnerPaginated(ctx, ownerID, lim, cursor)
	})
}

func (q *bookingQueriesImpl) list(
	_ context.Context,
	after *Cursor,
	limit int,
	fetch func(cursor *string, limit int32) ([]*BookingListItem, error),
) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var cursor *string
	if after != nil && after.After != "" {
		cursor = &after.After
	}

	rows, err := fetch(cursor, int32(limit))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
