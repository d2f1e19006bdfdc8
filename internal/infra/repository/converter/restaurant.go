package converter

import (
	"table-booking/internal/domain/restaurant"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
)

func RestaurantToCreateParams(r *restaurant.Restaurant) sqlc.CreateRestaurantParams {
	return sqlc.CreateRestaurantParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Cuisine:     r.Cuisine(),
		Location:    r.Location(),
		Description: r.Description(),
		ImageUrl:    r.ImageURL(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		AdminID:     pgconv.UUIDPtrToPgtype(r.AdminID()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RestaurantToUpdateParams(r *restaurant.Restaurant) sqlc.UpdateRestaurantParams {
	return sqlc.UpdateRestaurantParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Cuisine:     r.Cuisine(),
		Location:    r.Location(),
		Description: r.Description(),
		ImageUrl:    r.ImageURL(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		AdminID:     pgconv.UUIDPtrToPgtype(r.AdminID()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RestaurantFromInfra(row sqlc.Restaurants) *restaurant.Restaurant {
	attrs := restaurant.Attributes{
		Name:        row.Name,
		Cuisine:     row.Cuisine,
		Location:    row.Location,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		Capacity:    int(row.Capacity),
		AdminID:     pgconv.UUIDPtrFromPgtype(row.AdminID),
	}
	return restaurant.ReconstructRestaurant(row.ID, attrs, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
