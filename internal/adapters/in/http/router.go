// Package http exposes fulfillment over a JSON API described by the embedded
// OpenAPI contract, which is also served at /swagger/.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with every route, the contract validator
// and the Swagger UI.
func NewRouter(ctx context.Context, server *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(apiPrefix)
	api.GET("/carrier-offers", server.LookupCarrierOffers)
	api.GET("/orders/:orderId/deliveries", server.ListDeliveries)
	api.POST("/orders/:orderId/deliveries", server.CreateDelivery)
	api.GET("/orders/:orderId/delivery-status", server.GetDeliveryStatus)
	api.GET("/orders/:orderId/line-items", server.ListLineItems)
	api.DELETE("/line-items/:lineItemId", server.DeleteLineItem)

	api.GET("/orders/:orderId/fulfillment", server.GetFulfillment)
	api.PUT("/orders/:orderId/fulfillment/carrier", server.SelectCarrier)
	api.POST("/orders/:orderId/fulfillment/launch", server.LaunchDelivery)
	api.DELETE("/orders/:orderId/fulfillment/line-items/:lineItemId", server.DeleteSessionLineItem)
	api.POST("/orders/:orderId/fulfillment/refresh", server.RefreshFulfillment)
	api.POST("/orders/:orderId/fulfillment/carriers/reload", server.ReloadCarriers)

	return e, nil
}
