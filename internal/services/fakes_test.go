package services

import (
	"fmt"
	"sort"
	"time"

	"menu_tracker_backend/internal/models"
	"menu_tracker_backend/internal/period"
	"menu_tracker_backend/internal/repositories"
)

// fakeStore is an in-memory stand-in for the repositories, mirroring the
// relational behavior of the SQL layer: the sale listing joins against live
// items only, and deleting an item removes its sale records with it.
type fakeStore struct {
	items      map[int64]*models.MenuItem
	sales      []*models.SaleRecord
	nextItemID int64
	nextSaleID int64
	listErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[int64]*models.MenuItem)}
}

func (f *fakeStore) addItem(name string, price float64) *models.MenuItem {
	f.nextItemID++
	item := &models.MenuItem{ID: f.nextItemID, Name: name, Price: price, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.items[item.ID] = item
	return item
}

func (f *fakeStore) addSale(itemID int64, date time.Time, quantity int) *models.SaleRecord {
	f.nextSaleID++
	rec := &models.SaleRecord{ID: f.nextSaleID, ItemID: itemID, Date: period.Date(date), Quantity: quantity, CreatedAt: time.Now()}
	f.sales = append(f.sales, rec)
	return rec
}

// --- MenuItemRepository ---

type fakeMenuRepo struct{ store *fakeStore }

func (r *fakeMenuRepo) CreateItem(_ repositories.SQLExecutor, item *models.MenuItem) (int64, error) {
	for _, existing := range r.store.items {
		if existing.Name == item.Name {
			return 0, fmt.Errorf("%w: menu item name '%s' already exists", repositories.ErrDuplicateKey, item.Name)
		}
	}
	created := r.store.addItem(item.Name, item.Price)
	*item = *created
	return item.ID, nil
}

func (r *fakeMenuRepo) GetItemByID(id int64) (*models.MenuItem, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeMenuRepo) GetItemByName(name string) (*models.MenuItem, error) {
	for _, item := range r.store.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeMenuRepo) GetItems() ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(r.store.items))
	for _, item := range r.store.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeMenuRepo) UpdateItem(_ repositories.SQLExecutor, item *models.MenuItem) error {
	existing, ok := r.store.items[item.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for _, other := range r.store.items {
		if other.ID != item.ID && other.Name == item.Name {
			return fmt.Errorf("%w: menu item name '%s' already exists", repositories.ErrDuplicateKey, item.Name)
		}
	}
	existing.Name = item.Name
	existing.Price = item.Price
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *fakeMenuRepo) DeleteItem(_ repositories.SQLExecutor, id int64) error {
	if _, ok := r.store.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.items, id)
	// Mirrors ON DELETE CASCADE.
	kept := r.store.sales[:0]
	for _, rec := range r.store.sales {
		if rec.ItemID != id {
			kept = append(kept, rec)
		}
	}
	r.store.sales = kept
	return nil
}

func (r *fakeMenuRepo) CountItems() (int, error) {
	return len(r.store.items), nil
}

// --- SaleRecordRepository ---

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) CreateSaleRecord(_ repositories.SQLExecutor, record *models.SaleRecord) (int64, error) {
	if _, ok := r.store.items[record.ItemID]; !ok {
		return 0, fmt.Errorf("%w: menu item ID %d does not exist", repositories.ErrNotFound, record.ItemID)
	}
	created := r.store.addSale(record.ItemID, record.Date, record.Quantity)
	*record = *created
	return record.ID, nil
}

func (r *fakeSaleRepo) ListSaleRecords(filter repositories.SaleRecordFilter) ([]models.SaleWithItem, error) {
	if r.store.listErr != nil {
		return nil, r.store.listErr
	}
	out := []models.SaleWithItem{}
	for _, rec := range r.store.sales {
		item, ok := r.store.items[rec.ItemID]
		if !ok {
			continue
		}
		if filter.ItemID != nil && rec.ItemID != *filter.ItemID {
			continue
		}
		if filter.DateEq != nil && !rec.Date.Equal(*filter.DateEq) {
			continue
		}
		if filter.DateFrom != nil && rec.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && !rec.Date.Before(*filter.DateTo) {
			continue
		}
		if filter.Year != nil && rec.Date.Year() != *filter.Year {
			continue
		}
		if filter.Month != nil && int(rec.Date.Month()) != *filter.Month {
			continue
		}
		out = append(out, models.SaleWithItem{SaleRecord: *rec, ItemName: item.Name, ItemPrice: item.Price})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeSaleRepo) DeleteByItemID(_ repositories.SQLExecutor, itemID int64) (int64, error) {
	var deleted int64
	kept := r.store.sales[:0]
	for _, rec := range r.store.sales {
		if rec.ItemID == itemID {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.store.sales = kept
	return deleted, nil
}

func (r *fakeSaleRepo) CountSaleRecords() (int, error) {
	return len(r.store.sales), nil
}
