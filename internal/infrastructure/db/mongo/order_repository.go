package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahyog/medical-store/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll     *mongo.Collection
	users    *mongo.Collection
	products *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		coll:     db.Collection(ordersCollection),
		users:    db.Collection(usersCollection),
		products: db.Collection(productsCollection),
	}
}

type mongoOrderItem struct {
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int                `bson:"quantity"`
}

type mongoOrder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"user"`
	Items      []mongoOrderItem   `bson:"products"`
	TotalPrice float64            `bson:"total_price"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (mo *mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(mo.Items))
	for _, it := range mo.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID.Hex(),
			Quantity:  it.Quantity,
		})
	}
	return &domain.Order{
		ID:         mo.ID.Hex(),
		UserID:     mo.UserID.Hex(),
		Items:      items,
		TotalPrice: mo.TotalPrice,
		CreatedAt:  mo.CreatedAt.UTC(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	userOID, err := primitive.ObjectIDFromHex(o.UserID)
	if err != nil {
		return nil, fmt.Errorf("insert order: bad user id %q", o.UserID)
	}

	items := make([]mongoOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		productOID, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, domain.ErrProductNotFound
		}
		items = append(items, mongoOrderItem{ProductID: productOID, Quantity: it.Quantity})
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoOrder{
		UserID:     userOID,
		Items:      items,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *o
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

// ListWithRefs returns every order with user emails and product names
// resolved. References are joined with two $in queries instead of a
// $lookup pipeline: the result sets are small and the stitched form is
// easier to verify.
func (r *OrderRepository) ListWithRefs(ctx context.Context) ([]*domain.OrderDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var raw []mongoOrder
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	userIDs := make([]primitive.ObjectID, 0, len(raw))
	productIDs := make([]primitive.ObjectID, 0)
	seenUsers := make(map[primitive.ObjectID]struct{})
	seenProducts := make(map[primitive.ObjectID]struct{})
	for _, mo := range raw {
		if _, ok := seenUsers[mo.UserID]; !ok {
			seenUsers[mo.UserID] = struct{}{}
			userIDs = append(userIDs, mo.UserID)
		}
		for _, it := range mo.Items {
			if _, ok := seenProducts[it.ProductID]; !ok {
				seenProducts[it.ProductID] = struct{}{}
				productIDs = append(productIDs, it.ProductID)
			}
		}
	}

	emails, err := r.userEmails(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names, err := r.productNames(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	details := make([]*domain.OrderDetail, 0, len(raw))
	for _, mo := range raw {
		items := make([]domain.OrderItemDetail, 0, len(mo.Items))
		for _, it := range mo.Items {
			items = append(items, domain.OrderItemDetail{
				ProductID:   it.ProductID.Hex(),
				ProductName: names[it.ProductID],
				Quantity:    it.Quantity,
			})
		}
		details = append(details, &domain.OrderDetail{
			ID:         mo.ID.Hex(),
			UserID:     mo.UserID.Hex(),
			UserEmail:  emails[mo.UserID],
			Items:      items,
			TotalPrice: mo.TotalPrice,
			CreatedAt:  mo.CreatedAt.UTC(),
		})
	}
	return details, nil
}

func (r *OrderRepository) userEmails(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	emails := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return emails, nil
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve user refs: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID    primitive.ObjectID `bson:"_id"`
			Email string             `bson:"email"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("resolve user refs: %w", err)
		}
		emails[doc.ID] = doc.Email
	}
	return emails, cur.Err()
}

func (r *OrderRepository) productNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cur, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve product refs: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("resolve product refs: %w", err)
		}
		names[doc.ID] = doc.Name
	}
	return names, cur.Err()
}
