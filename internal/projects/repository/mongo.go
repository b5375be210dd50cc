package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

const projectsCollection = "projects"

// projectDoc mirrors the document layout used by the original Mongoose model,
// so existing collections can be served as-is.
type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Images      []string           `bson:"images"`
	DemoURL     string             `bson:"demoUrl,omitempty"`
	GithubURL   string             `bson:"githubUrl,omitempty"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

func (d projectDoc) toDomain() domain.Project {
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = d.ID.Timestamp()
	}
	updatedAt := d.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return domain.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Images:      nonNil(d.Images),
		DemoURL:     d.DemoURL,
		GithubURL:   d.GithubURL,
		Tags:        nonNil(d.Tags),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// MongoRepository stores projects in a MongoDB collection.
// Create does a check-then-insert on the title, which is not atomic across
// concurrent requests.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(projectsCollection)}
}

// EnsureIndexes creates the title lookup index. It is not unique because
// updates are allowed to duplicate titles.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetName("title_1"),
	})
	if err != nil {
		return fmt.Errorf("create title index: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, draft domain.Fields) (*domain.Project, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title required: %w", domain.ErrInvalidInput)
	}
	draft = draft.Normalized()

	err := r.coll.FindOne(ctx, bson.M{"title": draft.Title}).Err()
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateTitle
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("check title: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := projectDoc{
		ID:          primitive.NewObjectID(),
		Title:       draft.Title,
		Description: draft.Description,
		Images:      draft.Images,
		DemoURL:     draft.DemoURL,
		GithubURL:   draft.GithubURL,
		Tags:        draft.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *MongoRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}

	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	fields = fields.Normalized()

	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"images":      fields.Images,
		"demoUrl":     fields.DemoURL,
		"githubUrl":   fields.GithubURL,
		"tags":        fields.Tags,
		"updatedAt":   time.Now().UTC().Truncate(time.Millisecond),
	}}

	var doc projectDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
