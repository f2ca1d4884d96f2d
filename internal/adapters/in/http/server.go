package http

import (
	"errors"
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/generated/servers"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	appendOrderItemsHandler  commands.AppendOrderItemsCommandHandler
	updateOrderItemHandler   commands.UpdateOrderItemCommandHandler
	removeOrderItemHandler   commands.RemoveOrderItemCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	registerUserHandler      commands.RegisterUserCommandHandler
	signInUserHandler        commands.SignInUserCommandHandler
	updateUserProfileHandler commands.UpdateUserProfileCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getProductHandler   queries.GetProductQueryHandler
	getProductsHandler  queries.GetProductsQueryHandler
	getUserHandler      queries.GetUserQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	appendOrderItemsHandler commands.AppendOrderItemsCommandHandler,
	updateOrderItemHandler commands.UpdateOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	signInUserHandler commands.SignInUserCommandHandler,
	updateUserProfileHandler commands.UpdateUserProfileCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		appendOrderItemsHandler:  appendOrderItemsHandler,
		updateOrderItemHandler:   updateOrderItemHandler,
		removeOrderItemHandler:   removeOrderItemHandler,
		cancelOrderHandler:       cancelOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		registerUserHandler:      registerUserHandler,
		signInUserHandler:        signInUserHandler,
		updateUserProfileHandler: updateUserProfileHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getProductHandler:        getProductHandler,
		getProductsHandler:       getProductsHandler,
		getUserHandler:           getUserHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerId.String())
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, itemArguments(newOrder.Items))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /api/v1/orders/{order_id} - retrieves one order.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// AppendOrderItems handles PATCH /api/v1/orders/{order_id}/items/append.
func (s *Server) AppendOrderItems(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.OrderItemList
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAppendOrderItemsCommand(orderID, itemArguments(body.Items))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.appendOrderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to append items")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItem handles PATCH /api/v1/orders/{order_id}/items/update.
func (s *Server) UpdateOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.OrderItemUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, body.OldName, commands.ItemArgument{
		Name:  body.Item.Name,
		Price: body.Item.Price,
	})
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles PATCH /api/v1/orders/{order_id}/items/remove.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.OrderItemRemove
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to remove item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/{order_id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{order_id}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - creates a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(newProduct.MerchantId.String())
	if err != nil {
		return badRequest(ctx, "Invalid merchant id: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		merchantID,
		newProduct.Name,
		newProduct.Description,
		newProduct.Category,
		newProduct.Price,
		newProduct.Quantity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// GetProducts handles GET /api/v1/products - lists catalog products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	var (
		skip, limit      int
		search, category string
	)
	if params.Skip != nil {
		skip = *params.Skip
	}
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Search != nil {
		search = *params.Search
	}
	if params.Category != nil {
		category = *params.Category
	}

	query, err := queries.NewGetProductsQuery(skip, limit, search, category)
	if err != nil {
		return badRequest(ctx, "Invalid paging parameters: "+err.Error())
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve products")
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProductById handles GET /api/v1/products/{product_id}.
func (s *Server) GetProductById(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromString(productId.String())
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve product")
	}

	return ctx.JSON(http.StatusOK, productResponse(p))
}

// UpdateProduct handles PATCH /api/v1/products/{product_id} - overwrites the
// mutable fields of a product.
func (s *Server) UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromString(productId.String())
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	var body servers.ProductUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		body.Name,
		body.Description,
		body.Category,
		body.Price,
		body.Quantity,
		body.Status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{product_id}.
func (s *Server) DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromString(productId.String())
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	if handleErr := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to delete product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterUser handles POST /api/v1/auth/user - registers an account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var newUser servers.NewUser
	if err := ctx.Bind(&newUser); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var phone, role string
	if newUser.Phone != nil {
		phone = *newUser.Phone
	}
	if newUser.Role != nil {
		role = *newUser.Role
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		newUser.FirstName,
		newUser.LastName,
		string(newUser.Email),
		newUser.Password,
		phone,
		role,
	)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register user")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// SignInUser handles POST /api/v1/auth/user/sign_in - issues a session token.
func (s *Server) SignInUser(ctx echo.Context) error {
	var request servers.SignInRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSignInUserCommand(string(request.Email), request.Password)
	if err != nil {
		return badRequest(ctx, "Invalid credentials format: "+err.Error())
	}

	result, err := s.signInUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to sign in")
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Token:     result.Token.Bytes(),
		UserId:    result.UserID.Bytes(),
		ExpiresAt: result.ExpiresAt,
	})
}

// UpdateUserProfile handles PATCH /api/v1/auth/user/update.
func (s *Server) UpdateUserProfile(ctx echo.Context) error {
	var body servers.UserUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserId.String())
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	var phone string
	if body.Phone != nil {
		phone = *body.Phone
	}

	cmd, err := commands.NewUpdateUserProfileCommand(userID, body.FirstName, body.LastName, phone)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.updateUserProfileHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update profile")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserById handles GET /api/v1/users/{user_id}.
func (s *Server) GetUserById(ctx echo.Context, userId openapi_types.UUID) error {
	userID, err := kernel.UUIDFromString(userId.String())
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	account, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve user")
	}

	response := servers.User{
		Id:        account.ID.Bytes(),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     openapi_types.Email(account.Email),
		Role:      account.Role,
	}
	if account.Phone != "" {
		response.Phone = &account.Phone
	}

	return ctx.JSON(http.StatusOK, response)
}

func itemArguments(items []servers.OrderItem) []commands.ItemArgument {
	arguments := make([]commands.ItemArgument, len(items))
	for i, item := range items {
		arguments[i] = commands.ItemArgument{
			Name:  item.Name,
			Price: item.Price,
		}
	}
	return arguments
}

func orderResponse(o queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return servers.Order{
		Id:         o.ID.Bytes(),
		CustomerId: o.CustomerID.Bytes(),
		Items:      items,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
	}
}

func productResponse(p queries.GetProductQueryResponse) servers.Product {
	return servers.Product{
		Id:          p.ID.Bytes(),
		MerchantId:  p.MerchantID.Bytes(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      p.Status,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors to HTTP responses. Unknown
// errors are reported as 500 without leaking internal details.
func domainError(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, order.ErrOrderAlreadyCanceled),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message + ": " + err.Error(),
	})
}
