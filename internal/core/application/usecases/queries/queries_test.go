package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderScopedQueries_RequireOrderID(t *testing.T) {
	_, err := queries.NewListDeliveriesQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = queries.NewGetDeliveryStatusQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = queries.NewListLineItemsQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestOrderScopedQueries_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.ListDeliveriesQuery{}.Validate(), queries.ErrListDeliveriesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetDeliveryStatusQuery{}.Validate(), queries.ErrGetDeliveryStatusQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListLineItemsQuery{}.Validate(), queries.ErrListLineItemsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindOversoldOrdersQuery{}.Validate(), queries.ErrFindOversoldOrdersQueryIsNotConstructed)
}

func TestOrderScopedQueries_CarryOrderID(t *testing.T) {
	id := kernel.NewUUID()

	q, err := queries.NewGetOrderQuery(id)

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, id, q.OrderID())
}
