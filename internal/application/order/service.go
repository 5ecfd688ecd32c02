package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service places orders and moves them through their lifecycle.
type Service struct {
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	mailer      notification.Mailer
	logger      *zap.Logger
}

func NewService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	mailer notification.Mailer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// PlaceOrder checks out the requested items. Prices and titles are
// frozen from the catalog at placement time; stock is reserved before
// the order is written and released again if the write fails.
func (s *Service) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*OrderResponse, error) {
	uid, err := shared.ParseID(userID)
	if err != nil {
		return nil, err
	}

	// Duplicate product lines are merged so stock is reserved once.
	quantities := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]order.Item, 0, len(ids))
	reserved := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, shared.NewNotFoundError("Product")
		}
		if !p.IsPurchasable() {
			return nil, shared.NewValidationError(p.Title + " is not available for purchase")
		}
		qty := quantities[id]
		if err := p.DecrementStock(qty); err != nil {
			return nil, err
		}
		reserved = append(reserved, p)

		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		lines = append(lines, order.Item{
			ProductID: p.ID,
			Title:     p.Title,
			Image:     image,
			Quantity:  qty,
			UnitPrice: p.Price,
		})
	}

	o, err := order.NewOrder(uid, lines, identity.Address{
		Street:  req.Shipping.Street,
		City:    req.Shipping.City,
		State:   req.Shipping.State,
		ZipCode: req.Shipping.ZipCode,
		Country: req.Shipping.Country,
	}, order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}
	o.Notes = req.Notes

	for i, p := range reserved {
		if err := s.productRepo.Save(ctx, p); err != nil {
			s.restoreReserved(ctx, reserved[:i], quantities)
			return nil, err
		}
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.releaseStock(ctx, o)
		return nil, err
	}

	s.sendConfirmation(ctx, uid, o)
	s.logger.Info("Order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("user_id", uid.String()),
		zap.String("total", o.Total.StringFixed(2)),
	)
	return toOrderResponse(o), nil
}

// ListMyOrders pages through the requesting customer's own orders.
func (s *Service) ListMyOrders(ctx context.Context, userID string, query ListOrdersQuery) ([]*OrderResponse, int64, error) {
	uid, err := shared.ParseID(userID)
	if err != nil {
		return nil, 0, err
	}
	filter, err := buildFilter(query)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = &uid
	return s.list(ctx, filter)
}

// AdminList pages through all orders.
func (s *Service) AdminList(ctx context.Context, query ListOrdersQuery) ([]*OrderResponse, int64, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, 0, err
	}
	return s.list(ctx, filter)
}

// Get returns a single order. Customers only see their own; staff of
// editor rank and above see everything.
func (s *Service) Get(ctx context.Context, orderID, requesterID string, requesterRole identity.Role) (*OrderResponse, error) {
	o, err := s.find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !requesterRole.AtLeast(identity.RoleEditor) && o.UserID.String() != requesterID {
		return nil, shared.NewNotFoundError("Order")
	}
	return toOrderResponse(o), nil
}

// UpdateStatus advances an order. Cancelling or refunding puts the
// reserved stock back on the shelf.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next := order.Status(req.Status)
	if err := o.UpdateStatus(next); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	if next == order.StatusCancelled || next == order.StatusRefunded {
		s.releaseStock(ctx, o)
	}

	s.logger.Info("Order status changed",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", string(next)),
	)
	return toOrderResponse(o), nil
}

// CancelMyOrder lets a customer cancel their own order while it has
// not shipped yet.
func (s *Service) CancelMyOrder(ctx context.Context, orderID, userID string) (*OrderResponse, error) {
	o, err := s.find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID.String() != userID {
		return nil, shared.NewNotFoundError("Order")
	}
	if !o.Cancellable() {
		return nil, shared.NewInvalidStateError("Order can no longer be cancelled")
	}
	if err := o.UpdateStatus(order.StatusCancelled); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.releaseStock(ctx, o)
	return toOrderResponse(o), nil
}

func (s *Service) list(ctx context.Context, filter order.Filter) ([]*OrderResponse, int64, error) {
	orders, total, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses, total, nil
}

func (s *Service) find(ctx context.Context, orderID string) (*order.Order, error) {
	id, err := shared.ParseID(orderID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, id)
}

func buildFilter(query ListOrdersQuery) (order.Filter, error) {
	filter := order.Filter{Page: query.Page, Limit: query.Limit}
	if query.Status != "" {
		status := order.Status(query.Status)
		if !status.Valid() {
			return filter, shared.NewValidationError("Unknown order status: " + query.Status)
		}
		filter.Status = &status
	}
	return filter, nil
}

// restoreReserved undoes reservations already written when a later
// product save fails mid-checkout. Failures are logged rather than
// surfaced; the checkout error is what the caller sees.
func (s *Service) restoreReserved(ctx context.Context, saved []*catalog.Product, quantities map[uuid.UUID]int) {
	for _, p := range saved {
		p.RestoreStock(quantities[p.ID])
		if err := s.productRepo.Save(ctx, p); err != nil {
			s.logger.Warn("Failed to restore reserved stock",
				zap.String("product_id", p.ID.String()),
				zap.Error(err),
			)
		}
	}
}

// releaseStock puts an order's quantities back. Failures are logged
// rather than surfaced; the order state change already happened.
func (s *Service) releaseStock(ctx context.Context, o *order.Order) {
	for _, line := range o.Items {
		p, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			s.logger.Warn("Failed to load product for stock release",
				zap.String("product_id", line.ProductID.String()),
				zap.Error(err),
			)
			continue
		}
		p.RestoreStock(line.Quantity)
		if err := s.productRepo.Save(ctx, p); err != nil {
			s.logger.Warn("Failed to release stock",
				zap.String("product_id", line.ProductID.String()),
				zap.Error(err),
			)
		}
	}
}

func (s *Service) sendConfirmation(ctx context.Context, userID uuid.UUID, o *order.Order) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load user for order confirmation",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return
	}
	conf := notification.OrderConfirmation{
		OrderNumber:  o.OrderNumber,
		CustomerName: user.Name,
		Total:        "$" + o.Total.StringFixed(2),
	}
	if err := s.mailer.SendOrderConfirmation(ctx, user.Email, conf); err != nil {
		s.logger.Warn("Failed to send order confirmation",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
}
