//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().WithPoints(30).BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, got.Points)
	})

	t.Run("inactive user is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.True(t, errs.Is(err, queries.ErrUserInactive))
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
