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

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

const (
	usersCollection    = "users"
	signInsCollection  = "sign_in_events"
	countersCollection = "counters"
)

// UserRepository implements the credential point lookup and user provisioning
// against the users collection.
type UserRepository struct {
	users    *mongo.Collection
	signIns  *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:    db.Collection(usersCollection),
		signIns:  db.Collection(signInsCollection),
		counters: db.Collection(countersCollection),
	}
}

type userDocument struct {
	OID       primitive.ObjectID `bson:"_id,omitempty"`
	ID        int64              `bson:"id"`
	Field1    string             `bson:"field1"`
	Field2    string             `bson:"field2"`
	Role      int                `bson:"role"`
	Data      bson.Raw           `bson:"data,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// FindByCredentials selects the unique row where field1, field2 and role all
// equal the supplied values. No-rows is reported as ErrInvalidCredentials —
// deliberately the same outcome whichever equality failed.
func (r *UserRepository) FindByCredentials(ctx context.Context, field1, field2 string, role int) (*ports.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"field1": field1, "field2": field2, "role": role}

	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		if isConnectivityError(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}

	return r.toRecord(doc)
}

// CreateUser allocates the next numeric id and inserts a new user row.
func (r *UserRepository) CreateUser(ctx context.Context, field1, field2 string, role int, data domain.DashboardData) (*ports.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate user id: %w", err)
	}

	doc := userDocument{
		ID:        id,
		Field1:    field1,
		Field2:    field2,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if data != nil {
		raw, err := bson.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode user data: %w", err)
		}
		doc.Data = raw
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDoctorExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return r.toRecord(doc)
}

// RecordSignIn appends one entry to the sign-in audit collection.
func (r *UserRepository) RecordSignIn(ctx context.Context, event *ports.SignInEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":     event.ID,
		"user_id": event.UserID,
		"role":    event.Role,
		"at":      event.At,
	}
	if _, err := r.signIns.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert sign-in event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup and uniqueness indexes. The unique
// (field1, role) index is what turns a duplicate doctor registration into a
// clean conflict error.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "field1", Value: 1}, {Key: "field2", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "field1", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	_, err := r.signIns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "at", Value: 1}},
	})
	return err
}

// nextID increments and returns the users sequence counter.
func (r *UserRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": usersCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *UserRepository) toRecord(doc userDocument) (*ports.UserRecord, error) {
	rec := &ports.UserRecord{
		ID:        doc.ID,
		Field1:    doc.Field1,
		Field2:    doc.Field2,
		Role:      doc.Role,
		CreatedAt: doc.CreatedAt,
	}
	if len(doc.Data) > 0 {
		data, err := decodePayload(doc.Role, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("decode user data: %w", err)
		}
		rec.Data = data
	}
	return rec, nil
}

// decodePayload unmarshals the stored data document into the payload type for
// the row's role.
func decodePayload(role int, raw bson.Raw) (domain.DashboardData, error) {
	t, err := domain.UserTypeForRole(role)
	if err != nil {
		return nil, err
	}

	var data domain.DashboardData
	switch t {
	case domain.UserTypePatient:
		v := &domain.PatientData{}
		err = bson.Unmarshal(raw, v)
		data = v
	case domain.UserTypeDoctor:
		v := &domain.DoctorData{}
		err = bson.Unmarshal(raw, v)
		data = v
	case domain.UserTypeHospital:
		v := &domain.HospitalData{}
		err = bson.Unmarshal(raw, v)
		data = v
	case domain.UserTypeInsurance:
		v := &domain.InsuranceData{}
		err = bson.Unmarshal(raw, v)
		data = v
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// isConnectivityError separates transport failures from genuine store errors
// so the two surface as different messages.
func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
