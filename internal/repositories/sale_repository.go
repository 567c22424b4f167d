package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"menu_tracker_backend/internal/models"

	"github.com/lib/pq"
)

// SaleRecordFilter enumerates the supported predicates for listing sale
// records. Unset fields add no condition. DateFrom/DateTo form a half-open
// range [DateFrom, DateTo); DateEq matches a single calendar date; Year and
// Month filter by calendar month boundaries.
type SaleRecordFilter struct {
	ItemID   *int64
	DateEq   *time.Time
	DateFrom *time.Time
	DateTo   *time.Time
	Year     *int
	Month    *int
}

// SaleRecordRepository defines the interface for sale record database operations.
// Reads return records joined with the owning item's name and current price.
type SaleRecordRepository interface {
	CreateSaleRecord(executor SQLExecutor, record *models.SaleRecord) (int64, error)
	ListSaleRecords(filter SaleRecordFilter) ([]models.SaleWithItem, error)
	DeleteByItemID(executor SQLExecutor, itemID int64) (int64, error)
	CountSaleRecords() (int, error)
}

type saleRecordRepository struct {
	db *sql.DB
}

// NewSaleRecordRepository creates a new instance of SaleRecordRepository.
func NewSaleRecordRepository(db *sql.DB) SaleRecordRepository {
	return &saleRecordRepository{db: db}
}

func (r *saleRecordRepository) CreateSaleRecord(executor SQLExecutor, record *models.SaleRecord) (int64, error) {
	query := `INSERT INTO sale_records (item_id, sale_date, quantity, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`
	err := executor.QueryRow(query, record.ItemID, record.Date, record.Quantity, time.Now()).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, fmt.Errorf("%w: menu item ID %d does not exist", ErrNotFound, record.ItemID)
		}
		return 0, fmt.Errorf("%w: creating sale record: %v", ErrDatabaseError, err)
	}
	return record.ID, nil
}

func (r *saleRecordRepository) ListSaleRecords(filter SaleRecordFilter) ([]models.SaleWithItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT
	    sr.id, sr.item_id, sr.sale_date, sr.quantity, sr.created_at,
	    mi.name, mi.price
	  FROM sale_records sr
	  JOIN menu_items mi ON sr.item_id = mi.id`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.ItemID != nil {
		conditions = append(conditions, fmt.Sprintf("sr.item_id = $%d", argCount))
		args = append(args, *filter.ItemID)
		argCount++
	}
	if filter.DateEq != nil {
		conditions = append(conditions, fmt.Sprintf("sr.sale_date = $%d", argCount))
		args = append(args, *filter.DateEq)
		argCount++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("sr.sale_date >= $%d", argCount))
		args = append(args, *filter.DateFrom)
		argCount++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("sr.sale_date < $%d", argCount))
		args = append(args, *filter.DateTo)
		argCount++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM sr.sale_date) = $%d", argCount))
		args = append(args, *filter.Year)
		argCount++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM sr.sale_date) = $%d", argCount))
		args = append(args, *filter.Month)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY sr.sale_date ASC, sr.id ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing sale records: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []models.SaleWithItem{}
	for rows.Next() {
		var rec models.SaleWithItem
		if err := rows.Scan(
			&rec.ID, &rec.ItemID, &rec.Date, &rec.Quantity, &rec.CreatedAt,
			&rec.ItemName, &rec.ItemPrice,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning sale record: %v", ErrDatabaseError, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale records: %v", ErrDatabaseError, err)
	}
	return records, nil
}

func (r *saleRecordRepository) DeleteByItemID(executor SQLExecutor, itemID int64) (int64, error) {
	result, err := executor.Exec(`DELETE FROM sale_records WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting sale records for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (r *saleRecordRepository) CountSaleRecords() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sale_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting sale records: %v", ErrDatabaseError, err)
	}
	return count, nil
}
