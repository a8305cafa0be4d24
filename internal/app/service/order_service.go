package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderEmpty         = errors.New("order must contain at least one item")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
)

// OrderItemInput carries the client's view of one line: the price is taken
// as submitted and frozen on the item, never recomputed from the catalog.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     float64
}

type OrderCreateInput struct {
	GuestName  string
	GuestEmail string
	Address    string
	Items      []OrderItemInput
}

type OrderService interface {
	Create(userID uint, input OrderCreateInput) (*model.Order, error)
	List(userID uint, staff bool) ([]model.Order, error)
	Get(id uint, userID uint, staff bool) (*model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error)
	ExportXLSX() ([]byte, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// Create places an order for the authenticated user. The whole order commits
// in one transaction: any missing product aborts everything.
func (s *orderService) Create(userID uint, input OrderCreateInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(input.Items),
	})

	if len(input.Items) == 0 {
		return nil, ErrOrderEmpty
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	guestEmail := input.GuestEmail
	if guestEmail == "" {
		guestEmail = user.Email
	}

	var total float64
	items := make([]model.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		total += item.Price * float64(item.Quantity)
	}

	order := &model.Order{
		CustomerID: &user.ID,
		GuestName:  input.GuestName,
		GuestEmail: guestEmail,
		Address:    input.Address,
		Status:     model.OrderStatusPending,
		Total:      total,
		Items:      items,
	}

	if err := s.orderRepo.CreateWithItems(order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order rejected: unknown product", map[string]interface{}{
				"user_id": userID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.Total,
	})
	return order, nil
}

func (s *orderService) List(userID uint, staff bool) ([]model.Order, error) {
	if staff {
		orders, err := s.orderRepo.FindAll()
		if err != nil {
			logger.Error("Failed to list orders", err, nil)
			return nil, err
		}
		return orders, nil
	}

	orders, err := s.orderRepo.FindByCustomerID(userID)
	if err != nil {
		logger.Error("Failed to list orders for customer", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

// Get returns the order. Customers can only see their own; anything else is
// reported as not found rather than forbidden.
func (s *orderService) Get(id uint, userID uint, staff bool) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}

	if !staff && (order.CustomerID == nil || *order.CustomerID != userID) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to update order status", err, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return nil, err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	return s.orderRepo.FindByID(id)
}

// ExportXLSX renders every order as one spreadsheet row for back-office
// reporting.
func (s *orderService) ExportXLSX() ([]byte, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load orders for export", err, nil)
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Customer", "Email", "Status", "Items", "Total", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, order := range orders {
		name := order.GuestName
		if name == "" && order.Customer != nil {
			name = order.Customer.FirstName + " " + order.Customer.LastName
		}

		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}

		values := []interface{}{
			order.ID,
			name,
			order.GuestEmail,
			string(order.Status),
			itemCount,
			order.Total,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to render orders spreadsheet", err, nil)
		return nil, fmt.Errorf("write spreadsheet: %w", err)
	}

	logger.Info("Orders exported", map[string]interface{}{
		"order_count": len(orders),
	})
	return buf.Bytes(), nil
}
