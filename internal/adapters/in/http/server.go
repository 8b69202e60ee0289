package http

import (
	"context"
	"errors"
	"net/http"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Sessions hands out the orchestrator of an order. fulfillment.Registry implements it.
type Sessions interface {
	Open(ctx context.Context, orderID kernel.UUID) (*fulfillment.Orchestrator, error)
}

// Server implements the /api/v1 endpoints. Data operations go straight to the
// gateway; session operations act on the order's orchestrator.
type Server struct {
	gateway  ports.FulfillmentGateway
	sessions Sessions
}

func NewServer(gateway ports.FulfillmentGateway, sessions Sessions) *Server {
	return &Server{gateway: gateway, sessions: sessions}
}

func bindUUIDPath(c echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true},
	); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(raw[:])
}

// LookupCarrierOffers handles GET /api/v1/carrier-offers?country=.
func (s *Server) LookupCarrierOffers(c echo.Context) error {
	var raw string
	if err := runtime.BindQueryParameter("form", true, true, "country", c.QueryParams(), &raw); err != nil {
		return badRequest(c, err.Error())
	}
	country, err := kernel.NewCountry(raw)
	if err != nil {
		return badRequest(c, err.Error())
	}

	offers, err := s.gateway.LookupCarrierOffers(c.Request().Context(), country)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOffers(offers))
}

// ListDeliveries handles GET /api/v1/orders/{orderId}/deliveries.
func (s *Server) ListDeliveries(c echo.Context) error {
	orderID, err := bindUUIDPath(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	deliveries, err := s.gateway.ListDeliveries(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toDeliveries(deliveries))
}

// CreateDelivery handles POST /api/v1/orders/{orderId}/deliveries. The delivery
// is launched through the order's session, so it shares the single-flight
// admission of LaunchDelivery.
func (s *Server) CreateDelivery(c echo.Context) error {
	orderID, err := bindUUIDPath(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var body CarrierChoice
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	carrierID, err := parseCarrierChoice(body)
	if err != nil {
		return badRequest(c, err.Error())
	}

	orch, err := s.sessions.Open(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	created, err := orch.LaunchDeliveryWith(c.Request().Context(), carrierID)
	if created == nil {
		return writeError(c, err)
	}
	if err != nil {
		c.Logger().Warn(err)
	}
	return c.JSON(http.StatusCreated, toDelivery(created))
}

// GetDeliveryStatus handles GET /api/v1/orders/{orderId}/delivery-status.
func (s *Server) GetDeliveryStatus(c echo.Context) error {
	orderID, err := bindUUIDPath(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	status, err := s.gateway.AggregateDeliveryStatus(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeliveryStatus{Status: status, Badge: delivery.BadgeFor(status).String()})
}

// ListLineItems handles GET /api/v1/orders/{orderId}/line-items.
func (s *Server) ListLineItems(c echo.Context) error {
	orderID, err := bindUUIDPath(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := s.gateway.ListLineItems(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toLineItems(items))
}

// DeleteLineItem handles DELETE /api/v1/line-items/{lineItemId}.
func (s *Server) DeleteLineItem(c echo.Context) error {
	lineItemID, err := bindUUIDPath(c, "lineItemId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = s.gateway.DeleteLineItem(c.Request().Context(), lineItemID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) session(c echo.Context) (*fulfillment.Orchestrator, error) {
	orderID, err := bindUUIDPath(c, "orderId")
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return s.sessions.Open(c.Request().Context(), orderID)
}

// GetFulfillment handles GET /api/v1/orders/{orderId}/fulfillment.
func (s *Server) GetFulfillment(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFulfillment(orch.View()))
}

// SelectCarrier handles PUT /api/v1/orders/{orderId}/fulfillment/carrier.
func (s *Server) SelectCarrier(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var body CarrierChoice
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	carrierID, err := parseCarrierChoice(body)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = orch.SelectCarrier(carrierID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFulfillment(orch.View()))
}

// LaunchDelivery handles POST /api/v1/orders/{orderId}/fulfillment/launch.
// A delivery that was created but could not be listed afterwards is still a 201.
func (s *Server) LaunchDelivery(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}

	created, err := orch.LaunchDelivery(c.Request().Context())
	if created == nil {
		return writeError(c, err)
	}

	resp := Launch{Delivery: toDelivery(created)}
	if err != nil {
		resp.RefreshError = err.Error()
	}
	return c.JSON(http.StatusCreated, resp)
}

// DeleteSessionLineItem handles DELETE /api/v1/orders/{orderId}/fulfillment/line-items/{lineItemId}.
func (s *Server) DeleteSessionLineItem(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineItemID, err := bindUUIDPath(c, "lineItemId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err = orch.DeleteLineItem(c.Request().Context(), lineItemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFulfillment(orch.View()))
}

// RefreshFulfillment handles POST /api/v1/orders/{orderId}/fulfillment/refresh.
func (s *Server) RefreshFulfillment(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	if err = errors.Join(orch.RefreshDeliveries(ctx), orch.RefreshLineItems(ctx)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFulfillment(orch.View()))
}

// ReloadCarriers handles POST /api/v1/orders/{orderId}/fulfillment/carriers/reload.
func (s *Server) ReloadCarriers(c echo.Context) error {
	orch, err := s.session(c)
	if err != nil {
		return writeError(c, err)
	}

	if err = orch.LoadCarriersForDestination(c.Request().Context(), orch.View().Destination); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toFulfillment(orch.View()))
}
