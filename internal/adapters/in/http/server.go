// Package http exposes the marketplace over a JSON API built on echo.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	approveDeliveryHandler  commands.ApproveDeliveryCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	addFoodHandler          commands.AddFoodCommandHandler
	updateFoodHandler       commands.UpdateFoodCommandHandler

	// Query handlers
	getRestaurantsHandler    queries.GetRestaurantsQueryHandler
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getMerchantOrdersHandler queries.GetMerchantOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	approveDeliveryHandler commands.ApproveDeliveryCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addFoodHandler commands.AddFoodCommandHandler,
	updateFoodHandler commands.UpdateFoodCommandHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getMerchantOrdersHandler queries.GetMerchantOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		approveDeliveryHandler:   approveDeliveryHandler,
		createRestaurantHandler:  createRestaurantHandler,
		addFoodHandler:           addFoodHandler,
		updateFoodHandler:        updateFoodHandler,
		getRestaurantsHandler:    getRestaurantsHandler,
		getRestaurantMenuHandler: getRestaurantMenuHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getMerchantOrdersHandler: getMerchantOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/restaurants", s.GetRestaurants)
	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants/:id/menu", s.GetRestaurantMenu)

	api.POST("/foods", s.AddFood)
	api.PUT("/foods/:id", s.UpdateFood)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/deliver", s.ApproveDelivery)
	api.GET("/orders/my/:filter", s.GetMyOrders)
	api.GET("/orders/incoming/:filter", s.GetIncomingOrders)
}

// GetRestaurants handles GET /api/v1/restaurants - lists the catalog,
// optionally filtered with ?city=.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantsQuery(ctx.QueryParam("city"))

	rows, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Restaurant, len(rows))
	for i, row := range rows {
		response[i] = Restaurant{
			ID:       row.ID.String(),
			Name:     row.Name,
			FoodType: row.FoodType,
			City:     row.City,
			Address:  row.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/v1/restaurants - registers the acting
// merchant's restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body NewRestaurant
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var geo *restaurant.Geo
	if body.Lat != nil && body.Long != nil {
		geo = &restaurant.Geo{Lat: *body.Lat, Long: *body.Long}
	}
	var hours *restaurant.Hours
	if body.OpenMin != nil && body.CloseMin != nil {
		hours = &restaurant.Hours{OpenMinute: *body.OpenMin, CloseMinute: *body.CloseMin}
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, actor,
		body.Name, body.FoodType, body.City, body.Address, geo, hours)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: restaurantID.String()})
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid restaurant id",
		})
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Food, len(rows))
	for i, row := range rows {
		response[i] = Food{
			ID:         row.ID.String(),
			Name:       row.Name,
			PriceCents: row.PriceCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddFood handles POST /api/v1/foods - adds a menu item to the acting
// merchant's restaurant.
func (s *Server) AddFood(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body NewFood
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid restaurant id",
		})
	}

	foodID := kernel.NewUUID()
	cmd, err := commands.NewAddFoodCommand(foodID, restaurantID, actor, body.Name, body.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addFoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: foodID.String()})
}

// UpdateFood handles PUT /api/v1/foods/:id.
func (s *Server) UpdateFood(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	foodID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid food id",
		})
	}

	var body UpdateFood
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateFoodCommand(foodID, actor, body.Name, body.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateFoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	foodIDs := make([]kernel.UUID, 0, len(body.FoodIDs))
	for _, raw := range body.FoodIDs {
		foodID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "invalid food id: " + raw,
			})
		}
		foodIDs = append(foodIDs, foodID)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actor, foodIDs, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	var body AcceptOrder
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor, body.TimeToDeliver)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel for both parties.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ApproveDelivery handles POST /api/v1/orders/:id/deliver.
func (s *Server) ApproveDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewApproveDeliveryCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetMyOrders handles GET /api/v1/orders/my/:filter - the customer's own
// orders, filter one of all, active, cancelled, delivered.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	filter, err := queries.StatusFilterFromString(ctx.Param("filter"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = Order{
			ID:            row.ID.String(),
			Status:        row.Status.String(),
			Note:          row.Note,
			CreatedAt:     row.CreatedAt,
			TimeToDeliver: row.TimeToDeliver,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetIncomingOrders handles GET /api/v1/orders/incoming/:filter - the orders
// placed against the acting merchant's restaurant.
func (s *Server) GetIncomingOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	filter, err := queries.StatusFilterFromString(ctx.Param("filter"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMerchantOrdersQuery(actor, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getMerchantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = Order{
			ID:            row.ID.String(),
			Status:        row.Status.String(),
			Note:          row.Note,
			CreatedAt:     row.CreatedAt,
			TimeToDeliver: row.TimeToDeliver,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
