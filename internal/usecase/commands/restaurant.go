package commands

import (
	"context"
	"log/slog"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/user"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/patch"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRestaurantAdmin = errs.New("restaurant admin must be an active restaurant manager or admin")
)

type RestaurantInput struct {
	Name        string
	Cuisine     string
	Location    string
	Description string
	ImageURL    string
	Capacity    int
	AdminID     *uuid.UUID
}

func (in RestaurantInput) attributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:        in.Name,
		Cuisine:     in.Cuisine,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Capacity:    in.Capacity,
		AdminID:     in.AdminID,
	}
}

// RestaurantPatch carries the fields of an update; nil keeps the current value.
type RestaurantPatch struct {
	Name        *string
	Cuisine     *string
	Location    *string
	Description *string
	ImageURL    *string
	Capacity    *int
	AdminID     *uuid.UUID
}

func (p RestaurantPatch) applyTo(cur restaurant.Attributes) restaurant.Attributes {
	return restaurant.Attributes{
		Name:        patch.Coalesce(p.Name, cur.Name),
		Cuisine:     patch.Coalesce(p.Cuisine, cur.Cuisine),
		Location:    patch.Coalesce(p.Location, cur.Location),
		Description: patch.Coalesce(p.Description, cur.Description),
		ImageURL:    patch.Coalesce(p.ImageURL, cur.ImageURL),
		Capacity:    patch.Coalesce(p.Capacity, cur.Capacity),
		AdminID:     coalesceID(p.AdminID, cur.AdminID),
	}
}

func coalesceID(v, fallback *uuid.UUID) *uuid.UUID {
	if v != nil {
		return v
	}
	return fallback
}

// RestaurantViewer reloads a restaurant for the response after commit.
type RestaurantViewer interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error)
}

type RestaurantCommands interface {
	Create(ctx context.Context, actor shared.Actor, in RestaurantInput) (*queries.RestaurantView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p RestaurantPatch) (*queries.RestaurantView, error)
}

type restaurantCommandsImpl struct {
	uow    shared.UnitOfWork
	viewer RestaurantViewer
	clock  clock.Clock
}

func NewRestaurantCommands(uow shared.UnitOfWork, viewer RestaurantViewer, clk clock.Clock) RestaurantCommands {
	return &restaurantCommandsImpl{
		uow:    uow,
		viewer: viewer,
		clock:  clk,
	}
}

func (c *restaurantCommandsImpl) Create(ctx context.Context, actor shared.Actor, in RestaurantInput) (*queries.RestaurantView, error) {
	if !actor.IsAdmin() {
		return nil, errs.Mark(ErrRestaurantForbidden, errs.ErrForbidden)
	}

	rest, err := restaurant.NewRestaurant(in.attributes(), c.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if verr := checkRestaurantAdmin(ctx, tx, rest.AdminID()); verr != nil {
			return verr
		}
		created, cerr := tx.Restaurants().Create(ctx, tx.DB(), rest)
		if cerr != nil {
			return restaurantWriteErr(cerr)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.Info("restaurant created", "restaurant_id", id, "actor_id", actor.ID)
	return c.reload(ctx, id)
}

// Update applies the patch. Only a system admin may reassign the restaurant's
// manager; a manager's own edit keeps the current one.
func (c *restaurantCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p RestaurantPatch) (*queries.RestaurantView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rest, ferr := tx.Restaurants().FindByID(ctx, tx.DB(), id)
		if ferr != nil {
			return restaurantLookupErr(ferr)
		}

		if !shared.CanActOnRestaurant(actor, rest.AdminID()) {
			return errs.Mark(ErrRestaurantForbidden, errs.ErrForbidden)
		}

		if !actor.IsAdmin() {
			p.AdminID = nil
		}
		if verr := checkRestaurantAdmin(ctx, tx, p.AdminID); verr != nil {
			return verr
		}

		if uerr := rest.Update(p.applyTo(rest.Attributes()), c.clock.Now()); uerr != nil {
			return invalid(uerr)
		}
		if uerr := tx.Restaurants().Update(ctx, tx.DB(), rest); uerr != nil {
			return restaurantWriteErr(uerr)
		}
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.Info("restaurant updated", "restaurant_id", id, "actor_id", actor.ID)
	return c.reload(ctx, id)
}

func (c *restaurantCommandsImpl) reload(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	view, err := c.viewer.FindByID(ctx, id)
	if err != nil {
		return nil, classifyTxErr(restaurantLookupErr(err))
	}
	return view, nil
}

func checkRestaurantAdmin(ctx context.Context, tx shared.Tx, adminID *uuid.UUID) error {
	if adminID == nil {
		return nil
	}
	u, err := tx.Reads().UserByID(ctx, *adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invalid(ErrInvalidRestaurantAdmin)
		}
		return err
	}
	role := user.Role(u.Role)
	if !u.IsActive || (role != user.RoleRestaurantManager && role != user.RoleAdmin) {
		return invalid(ErrInvalidRestaurantAdmin)
	}
	return nil
}

func restaurantWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return invalid(errs.Mark(err, ErrInvalidRestaurantAdmin))
	case infra.IsKind(err, infra.KindCheckViolated):
		return invalid(err)
	}
	return err
}
