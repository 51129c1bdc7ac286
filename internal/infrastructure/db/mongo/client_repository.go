package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corebank/banking-system/internal/core/domain"
)

const clientsCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoContact struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

type mongoClient struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	CompanyName        string             `bson:"company_name"`
	Industry           string             `bson:"industry"`
	Address            string             `bson:"address"`
	PrimaryContact     mongoContact       `bson:"primary_contact"`
	AnnualTurnover     float64            `bson:"annual_turnover"`
	DocumentsSubmitted bool               `bson:"documents_submitted"`
	RMID               string             `bson:"rm_id"`
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	res, err := r.coll.InsertOne(ctx, toMongoClient(client))
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClientRepository) FindByRM(ctx context.Context, rmID string) ([]*domain.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"rm_id": rmID})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []*domain.Client
	for cursor.Next(ctx) {
		var mc mongoClient
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, mc.toDomain())
	}
	return clients, cursor.Err()
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	doc := toMongoClient(client)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the rm_id index backing owner-scoped lists.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "rm_id", Value: 1}},
	})
	return err
}

func toMongoClient(c *domain.Client) mongoClient {
	return mongoClient{
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		Address:     c.Address,
		PrimaryContact: mongoContact{
			Name:  c.PrimaryContact.Name,
			Email: c.PrimaryContact.Email,
			Phone: c.PrimaryContact.Phone,
		},
		AnnualTurnover:     c.AnnualTurnover,
		DocumentsSubmitted: c.DocumentsSubmitted,
		RMID:               c.RMID,
	}
}

func (mc *mongoClient) toDomain() *domain.Client {
	return &domain.Client{
		ID:          mc.ID.Hex(),
		CompanyName: mc.CompanyName,
		Industry:    mc.Industry,
		Address:     mc.Address,
		PrimaryContact: domain.PrimaryContact{
			Name:  mc.PrimaryContact.Name,
			Email: mc.PrimaryContact.Email,
			Phone: mc.PrimaryContact.Phone,
		},
		AnnualTurnover:     mc.AnnualTurnover,
		DocumentsSubmitted: mc.DocumentsSubmitted,
		RMID:               mc.RMID,
	}
}
