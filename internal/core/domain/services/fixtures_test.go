package services_test

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var france = kernel.MustNewCountry("FR")

// tb is satisfied by both *testing.T and *rapid.T.
type tb interface {
	Helper()
	require.TestingT
}

func offer(t tb, name string, price int64, days int) carrier.Offer {
	t.Helper()
	o, err := carrier.NewOffer(kernel.NewUUID(), name, decimal.NewFromInt(price), days, france)
	require.NoError(t, err)
	return o
}

func incompleteOffer(t tb) carrier.Offer {
	t.Helper()
	o, err := carrier.RestoreOffer(kernel.NewUUID(), "", decimal.NewNullDecimal(decimal.NewFromInt(1)), nil, france)
	require.NoError(t, err)
	return o
}

func item(t tb, productID kernel.UUID, qty, stock *int) *lineitem.LineItem {
	t.Helper()
	li, err := lineitem.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), productID, "", qty, decimal.NullDecimal{}, stock)
	require.NoError(t, err)
	return li
}

func intPtr(v int) *int { return &v }
