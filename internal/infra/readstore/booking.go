package readstore

import (
	"context"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.ListBookingsByUserFirstPageRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.ListBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:                row.ID,
		UserID:            row.UserID,
		UserName:          row.UserName,
		UserEmail:         row.UserEmail,
		RestaurantID:      row.RestaurantID,
		RestaurantName:    row.RestaurantName,
		RestaurantAdminID: pgconv.UUIDPtrFromPgtype(row.RestaurantAdminID),
		Date:              converter.DateFromPgtype(row.BookingDate).String(),
		Time:              row.BookingTime,
		PartySize:         int(row.PartySize),
		Status:            row.Status,
		SpecialRequests:   row.SpecialRequests,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	}

	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(sqlc.ListBookingsByUserKeysetRow(row))
	}

	return result, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}

	return result, nil
}

func toBookingListItem(row sqlc.ListBookingsByUserKeysetRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:              row.ID,
		RestaurantID:    row.RestaurantID,
		RestaurantName:  row.RestaurantName,
		Date:            converter.DateFromPgtype(row.BookingDate).String(),
		Time:            row.BookingTime,
		PartySize:       int(row.PartySize),
		Status:          row.Status,
		SpecialRequests: row.SpecialRequests,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
