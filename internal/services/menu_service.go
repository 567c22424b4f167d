package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"menu_tracker_backend/internal/models"
	"menu_tracker_backend/internal/repositories"
)

// --- Custom Service Errors for Menu ---
var (
	ErrItemNotFound   = errors.New("menu item not found")
	ErrItemNameExists = errors.New("menu item name already exists")
	ErrValidation     = errors.New("validation error")
)

// --- DTOs ---
type CreateMenuItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type UpdateMenuItemRequest struct {
	Name  *string  `json:"name"` // Pointer to distinguish between empty and not provided
	Price *float64 `json:"price"`
}

type LogSaleRequest struct {
	ItemID   int64     `json:"item_id" binding:"required"`
	Date     time.Time `json:"-"`
	Quantity int       `json:"quantity"`
}

// --- MenuService Interface ---
type MenuService interface {
	CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	GetItemByID(itemID int64) (*models.MenuItem, error)
	GetItems() ([]models.MenuItem, error)
	UpdateItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteItem(itemID int64) error
	LogSale(req LogSaleRequest) (*models.SaleRecord, error)
}

type menuService struct {
	menuRepo repositories.MenuItemRepository
	saleRepo repositories.SaleRecordRepository
	db       *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuItemRepository, saleRepo repositories.SaleRecordRepository, db *sql.DB) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		saleRepo: saleRepo,
		db:       db,
	}
}

func (s *menuService) CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	item := &models.MenuItem{
		Name:  name,
		Price: req.Price,
	}
	_, err := s.menuRepo.CreateItem(s.db, item)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrItemNameExists, name)
		}
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) GetItemByID(itemID int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item by ID: %w", err)
	}
	return item, nil
}

func (s *menuService) GetItems() ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetItems()
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) UpdateItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find menu item for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty if provided", ErrValidation)
		}
		item.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		item.Price = *req.Price
	}

	err = s.menuRepo.UpdateItem(s.db, item)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrItemNameExists, item.Name)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return s.menuRepo.GetItemByID(itemID)
}

// DeleteItem removes an item together with all of its sale records in one
// transaction, so no reader can observe an orphaned sale record.
func (s *menuService) DeleteItem(itemID int64) error {
	_, err := s.menuRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to find menu item for deletion: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for item deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.saleRepo.DeleteByItemID(tx, itemID); err != nil {
		return fmt.Errorf("failed to delete sale records for item: %w", err)
	}
	if err := s.menuRepo.DeleteItem(tx, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item deletion: %w", err)
	}
	return nil
}

func (s *menuService) LogSale(req LogSaleRequest) (*models.SaleRecord, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: sale date is required", ErrValidation)
	}

	record := &models.SaleRecord{
		ItemID:   req.ItemID,
		Date:     req.Date,
		Quantity: req.Quantity,
	}
	_, err := s.saleRepo.CreateSaleRecord(s.db, record)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to log sale: %w", err)
	}
	return record, nil
}
