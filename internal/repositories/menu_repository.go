package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"menu_tracker_backend/internal/models"

	"github.com/lib/pq"
)

// MenuItemRepository defines the interface for menu item database operations.
type MenuItemRepository interface {
	CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	GetItemByID(id int64) (*models.MenuItem, error)
	GetItemByName(name string) (*models.MenuItem, error)
	GetItems() ([]models.MenuItem, error) // Ordered by name ascending.
	UpdateItem(executor SQLExecutor, item *models.MenuItem) error
	DeleteItem(executor SQLExecutor, id int64) error
	CountItems() (int, error)
}

type menuItemRepository struct {
	db *sql.DB
}

// NewMenuItemRepository creates a new instance of MenuItemRepository.
func NewMenuItemRepository(db *sql.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu_items (name, price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	currentTime := time.Now()
	err := executor.QueryRow(query, item.Name, item.Price, currentTime, currentTime).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: menu item name '%s' already exists (constraint: %s)", ErrDuplicateKey, item.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *menuItemRepository) GetItemByID(id int64) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, name, price, created_at, updated_at FROM menu_items WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&item.ID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

func (r *menuItemRepository) GetItemByName(name string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, name, price, created_at, updated_at FROM menu_items WHERE name = $1`
	err := r.db.QueryRow(query, name).Scan(&item.ID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by name '%s': %v", ErrDatabaseError, name, err)
	}
	return item, nil
}

func (r *menuItemRepository) GetItems() ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := `SELECT id, name, price, created_at, updated_at FROM menu_items ORDER BY name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *menuItemRepository) UpdateItem(executor SQLExecutor, item *models.MenuItem) error {
	query := `UPDATE menu_items SET name = $1, price = $2, updated_at = $3 WHERE id = $4`
	result, err := executor.Exec(query, item.Name, item.Price, time.Now(), item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: menu item name '%s' already exists (constraint: %s)", ErrDuplicateKey, item.Name, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating menu item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) DeleteItem(executor SQLExecutor, id int64) error {
	query := `DELETE FROM menu_items WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting menu item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) CountItems() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting menu items: %v", ErrDatabaseError, err)
	}
	return count, nil
}
