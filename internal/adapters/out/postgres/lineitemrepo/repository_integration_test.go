package lineitemrepo_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/lineitemrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LineItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *lineitemrepo.GormLineItemRepository
}

func (suite *LineItemRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&lineitemrepo.LineItemDTO{}))
}

func (suite *LineItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("line_items"))
	suite.repository = lineitemrepo.NewGormLineItemRepository(suite.database.DB)
}

func (suite *LineItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func intPtr(v int) *int { return &v }

func (suite *LineItemRepositoryIntegrationTestSuite) newItem(orderID kernel.UUID, name string, qty, stock *int) *lineitem.LineItem {
	item, err := lineitem.RestoreLineItem(
		kernel.NewUUID(), orderID, kernel.NewUUID(), name,
		qty, decimal.NewNullDecimal(decimal.RequireFromString("2.50")), stock,
	)
	suite.Require().NoError(err)
	return item
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Widget", intPtr(3), intPtr(-1))
	suite.Require().NoError(suite.repository.Add(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())

	suite.Require().NoError(err)
	suite.True(got.OrderID().IsEqual(item.OrderID()))
	suite.Equal("Widget", got.ProductName())
	qty, _ := got.Quantity()
	suite.Equal(3, qty)
	stock, ok := got.StockOnHand()
	suite.True(ok)
	suite.Equal(-1, stock)
	suite.True(got.TotalPrice().Equal(decimal.RequireFromString("7.5")))
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestAdd_MissingValuesStayMissing() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Widget", nil, nil)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())

	suite.Require().NoError(err)
	_, hasQty := got.Quantity()
	suite.False(hasQty)
	_, hasStock := got.StockOnHand()
	suite.False(hasStock)
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestListByOrder_SortedByProductName() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	for _, item := range []*lineitem.LineItem{
		suite.newItem(orderID, "Gadget", intPtr(1), intPtr(5)),
		suite.newItem(orderID, "Anvil", intPtr(1), intPtr(5)),
		suite.newItem(kernel.NewUUID(), "Other", intPtr(1), intPtr(5)),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, item))
	}

	items, err := suite.repository.ListByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Anvil", items[0].ProductName())
	suite.Equal("Gadget", items[1].ProductName())
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	item := suite.newItem(kernel.NewUUID(), "Widget", intPtr(1), intPtr(1))
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))

	_, err := suite.repository.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestDelete_Missing_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Equal("lineItem", notFoundErr.ParamName)
}

func TestLineItemRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(LineItemRepositoryIntegrationTestSuite))
}
