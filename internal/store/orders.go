package store

import (
	"context"

	"hemis/m/domain"
)

const orderColumns = `id, order_number, supplier_id, ordered_by_id, item_type, item_name, quantity, unit_price, total_amount,
                order_date, delivery_date, status, notes, created_at, updated_at`

type OrderRepository struct {
	repo
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	var o domain.PurchaseOrder
	if err := r.get(ctx, &o, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, number string) (*domain.PurchaseOrder, error) {
	var o domain.PurchaseOrder
	if err := r.get(ctx, &o, `SELECT `+orderColumns+` FROM purchase_orders WHERE order_number = ?`, number); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.PurchaseOrder, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM purchase_orders ORDER BY order_date DESC, id DESC`)
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.PurchaseOrder, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE status = ? ORDER BY order_date DESC, id DESC`, status)
}

func (r *OrderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "purchase_orders", id)
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "purchase_orders", id)
}

func (r *OrderRepository) Save(ctx context.Context, o *domain.PurchaseOrder) error {
	if o.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO purchase_orders (order_number, supplier_id, ordered_by_id, item_type, item_name, quantity,
                unit_price, total_amount, order_date, delivery_date, status, notes, created_at, updated_at)
                VALUES (:order_number, :supplier_id, :ordered_by_id, :item_type, :item_name, :quantity,
                :unit_price, :total_amount, :order_date, :delivery_date, :status, :notes, :created_at, :updated_at) RETURNING id`, o)
		if err != nil {
			return err
		}
		o.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE purchase_orders SET order_number = :order_number, supplier_id = :supplier_id, ordered_by_id = :ordered_by_id,
                item_type = :item_type, item_name = :item_name, quantity = :quantity, unit_price = :unit_price, total_amount = :total_amount,
                order_date = :order_date, delivery_date = :delivery_date, status = :status, notes = :notes, updated_at = :updated_at
                WHERE id = :id`, o)
}

func (r *OrderRepository) query(ctx context.Context, query string, args ...any) ([]domain.PurchaseOrder, error) {
	orders := []domain.PurchaseOrder{}
	if err := r.list(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	return orders, nil
}
