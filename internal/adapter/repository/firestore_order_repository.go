package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"reptileshop/internal/domain/entity"
	"reptileshop/internal/domain/repository"
	"reptileshop/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to get order", err)
	}

	if _, err := doc.Ref.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Where("userId", "==", userID).OrderBy("createdAt", firestore.Desc)
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query.OrderBy("createdAt", firestore.Desc)
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreOrderRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Order, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) SetPaid(ctx context.Context, id string, result *entity.PaymentResult) (*entity.Order, bool, error) {
	var order entity.Order
	alreadyPaid := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("orders").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Order", err)
			}
			return err
		}

		if err := doc.DataTo(&order); err != nil {
			return err
		}

		if order.IsPaid {
			alreadyPaid = true
			return nil
		}
		alreadyPaid = false

		now := time.Now()
		order.IsPaid = true
		order.PaidAt = &now
		order.PaymentResult = result
		order.UpdatedAt = now

		return tx.Set(docRef, &order)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, false, appErr
		}
		if status.Code(err) == codes.Aborted {
			return nil, false, errors.Conflict("Order was modified concurrently")
		}
		return nil, false, errors.Internal("Failed to mark order paid", err)
	}

	return &order, alreadyPaid, nil
}

func (r *firestoreOrderRepository) SetDelivered(ctx context.Context, id string) (*entity.Order, bool, error) {
	var order entity.Order
	alreadyDelivered := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("orders").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Order", err)
			}
			return err
		}

		if err := doc.DataTo(&order); err != nil {
			return err
		}

		if !order.IsPaid {
			return errors.BadRequest("Order is not paid", nil)
		}

		if order.IsDelivered {
			alreadyDelivered = true
			return nil
		}
		alreadyDelivered = false

		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
		order.UpdatedAt = now

		return tx.Set(docRef, &order)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, false, appErr
		}
		if status.Code(err) == codes.Aborted {
			return nil, false, errors.Conflict("Order was modified concurrently")
		}
		return nil, false, errors.Internal("Failed to mark order delivered", err)
	}

	return &order, alreadyDelivered, nil
}

func (r *firestoreOrderRepository) Summary(ctx context.Context) (*entity.OrderSummary, error) {
	docs, err := r.client.Collection("orders").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to load orders for summary", err)
	}

	summary := &entity.OrderSummary{}
	daily := make(map[string]*entity.DailySales)

	for _, doc := range docs {
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			continue
		}

		summary.NumOrders++
		summary.TotalSales += order.TotalPrice

		day := order.CreatedAt.Format("2006-01-02")
		if _, ok := daily[day]; !ok {
			daily[day] = &entity.DailySales{Date: day}
		}
		daily[day].Orders++
		daily[day].Sales += order.TotalPrice
	}

	for _, d := range daily {
		summary.Daily = append(summary.Daily, *d)
	}
	sort.Slice(summary.Daily, func(i, j int) bool {
		return summary.Daily[i].Date < summary.Daily[j].Date
	})

	return summary, nil
}
