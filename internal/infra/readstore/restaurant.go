package readstore

import (
	"context"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RestaurantViewQueries interface {
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Restaurants, error)
	ListRestaurantsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRestaurantsFirstPageParams) ([]sqlc.Restaurants, error)
	ListRestaurantsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRestaurantsKeysetParams) ([]sqlc.Restaurants, error)
	GetDayOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDayOccupancyParams) ([]sqlc.GetDayOccupancyRow, error)
	ListBookingsByRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRestaurantParams) ([]sqlc.ListBookingsByRestaurantRow, error)
}

type RestaurantReadStore struct {
	queries RestaurantViewQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantViewQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}

	return toRestaurantView(row), nil
}

func (r *RestaurantReadStore) ListFirstPage(ctx context.Context, filter queries.RestaurantFilter, limit int32) ([]*queries.RestaurantView, error) {
	params := sqlc.ListRestaurantsFirstPageParams{
		Search:   optionalText(filter.Search),
		Cuisine:  optionalText(filter.Cuisine),
		Location: optionalText(filter.Location),
		RowLimit: limit,
	}

	rows, err := r.queries.ListRestaurantsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants first page", err)
	}

	return toRestaurantViews(rows), nil
}

func (r *RestaurantReadStore) ListKeyset(ctx context.Context, filter queries.RestaurantFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RestaurantView, error) {
	params := sqlc.ListRestaurantsKeysetParams{
		Search:    optionalText(filter.Search),
		Cuisine:   optionalText(filter.Cuisine),
		Location:  optionalText(filter.Location),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListRestaurantsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants keyset", err)
	}

	return toRestaurantViews(rows), nil
}

func (r *RestaurantReadStore) DayOccupancy(ctx context.Context, id uuid.UUID, date booking.Date) (booking.Occupancy, error) {
	params := sqlc.GetDayOccupancyParams{
		RestaurantID: id,
		BookingDate:  converter.DateToPgtype(date),
	}

	rows, err := r.queries.GetDayOccupancy(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read day occupancy", err)
	}

	occ := make(booking.Occupancy, len(rows))
	for _, row := range rows {
		occ[row.BookingTime] = int(row.Booked)
	}
	return occ, nil
}

func (r *RestaurantReadStore) Bookings(ctx context.Context, id uuid.UUID, date *booking.Date) ([]*queries.RestaurantBookingItem, error) {
	params := sqlc.ListBookingsByRestaurantParams{RestaurantID: id}
	if date != nil {
		params.BookingDate = converter.DateToPgtype(*date)
	}

	rows, err := r.queries.ListBookingsByRestaurant(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant bookings", err)
	}

	items := make([]*queries.RestaurantBookingItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.RestaurantBookingItem{
			ID:              row.ID,
			UserID:          row.UserID,
			UserName:        row.UserName,
			UserEmail:       row.UserEmail,
			Date:            converter.DateFromPgtype(row.BookingDate).String(),
			Time:            row.BookingTime,
			PartySize:       int(row.PartySize),
			Status:          row.Status,
			SpecialRequests: row.SpecialRequests,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func toRestaurantViews(rows []sqlc.Restaurants) []*queries.RestaurantView {
	result := make([]*queries.RestaurantView, len(rows))
	for i, row := range rows {
		result[i] = toRestaurantView(row)
	}
	return result
}

func toRestaurantView(row sqlc.Restaurants) *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:          row.ID,
		Name:        row.Name,
		Cuisine:     row.Cuisine,
		Location:    row.Location,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		Capacity:    int(row.Capacity),
		AdminID:     pgconv.UUIDPtrFromPgtype(row.AdminID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(s)
}
