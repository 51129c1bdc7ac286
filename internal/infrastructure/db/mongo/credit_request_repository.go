package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corebank/banking-system/internal/core/domain"
)

const creditRequestsCollection = "credit_requests"

type CreditRequestRepository struct {
	coll *mongo.Collection
}

func NewCreditRequestRepository(db *mongo.Database) *CreditRequestRepository {
	return &CreditRequestRepository{coll: db.Collection(creditRequestsCollection)}
}

type mongoCreditRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ClientID      string             `bson:"client_id"`
	SubmittedBy   string             `bson:"submitted_by"`
	RequestAmount float64            `bson:"request_amount"`
	TenureMonths  int                `bson:"tenure_months"`
	Purpose       string             `bson:"purpose"`
	Status        string             `bson:"status"`
	Remarks       string             `bson:"remarks"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *CreditRequestRepository) Create(ctx context.Context, req *domain.CreditRequest) (*domain.CreditRequest, error) {
	doc := mongoCreditRequest{
		ClientID:      req.ClientID,
		SubmittedBy:   req.SubmittedBy,
		RequestAmount: req.RequestAmount,
		TenureMonths:  req.TenureMonths,
		Purpose:       req.Purpose,
		Status:        string(req.Status),
		Remarks:       req.Remarks,
		CreatedAt:     req.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert credit request: %w", err)
	}

	created := *req
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CreditRequestRepository) FindByID(ctx context.Context, id string) (*domain.CreditRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCreditRequestNotFound
	}

	var mr mongoCreditRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCreditRequestNotFound
		}
		return nil, fmt.Errorf("find credit request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *CreditRequestRepository) FindBySubmitter(ctx context.Context, rmID string) ([]*domain.CreditRequest, error) {
	return r.find(ctx, bson.M{"submitted_by": rmID})
}

func (r *CreditRequestRepository) FindAll(ctx context.Context) ([]*domain.CreditRequest, error) {
	return r.find(ctx, bson.M{})
}

func (r *CreditRequestRepository) UpdateReview(ctx context.Context, id string, status domain.RequestStatus, remarks string) (*domain.CreditRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCreditRequestNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status), "remarks": remarks}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mr mongoCreditRequest
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCreditRequestNotFound
		}
		return nil, fmt.Errorf("update credit request: %w", err)
	}
	return mr.toDomain(), nil
}

// EnsureIndexes creates the submitter index backing RM-scoped lists.
func (r *CreditRequestRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "submitted_by", Value: 1}},
	})
	return err
}

func (r *CreditRequestRepository) find(ctx context.Context, filter bson.M) ([]*domain.CreditRequest, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list credit requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []*domain.CreditRequest
	for cursor.Next(ctx) {
		var mr mongoCreditRequest
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode credit request: %w", err)
		}
		reqs = append(reqs, mr.toDomain())
	}
	return reqs, cursor.Err()
}

func (mr *mongoCreditRequest) toDomain() *domain.CreditRequest {
	return &domain.CreditRequest{
		ID:            mr.ID.Hex(),
		ClientID:      mr.ClientID,
		SubmittedBy:   mr.SubmittedBy,
		RequestAmount: mr.RequestAmount,
		TenureMonths:  mr.TenureMonths,
		Purpose:       mr.Purpose,
		Status:        domain.RequestStatus(mr.Status),
		Remarks:       mr.Remarks,
		CreatedAt:     mr.CreatedAt,
	}
}
