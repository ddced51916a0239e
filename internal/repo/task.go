package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	// ErrorInvalidID оборачивает ErrorNotFound: снаружи кривой id
	// неотличим от отсутствующей записи, внутри различим для логов
	ErrorInvalidID = fmt.Errorf("invalid id: %w", ErrorNotFound)
)

const collectionName = "tasks"

// taskDoc - представление задачи в хранилище. За его пределы
// ObjectID не выходит, наружу отдается hex-строка.
type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	DueDate     time.Time          `bson:"due_date"`
	CreatedAt   time.Time          `bson:"created_at"`
	Tags        []string           `bson:"tags"`
}

func (d taskDoc) toModel() model.Task {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Status:      d.Status,
		DueDate:     d.DueDate.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		Tags:        tags,
	}
}

type TaskRepo struct { // Репозиторий для работы непосредственно с коллекцией
	collection *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) *TaskRepo { // Конструктор
	return &TaskRepo{
		collection: db.Collection(collectionName),
	}
}

func (r *TaskRepo) Insert(ctx context.Context, t model.Task) (model.Task, error) {
	doc := taskDoc{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		Tags:        t.Tags,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return model.Task{}, err
	}

	// Перечитываем вставленную запись, чтобы вернуть ровно то,
	// что лежит в хранилище
	var inserted taskDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&inserted)
	if err != nil {
		return model.Task{}, err
	}
	return inserted.toModel(), nil
}

func (r *TaskRepo) FindAll(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	query := bson.M{}
	if filter.Priority != nil {
		query["priority"] = *filter.Priority
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.DueBefore != nil || filter.DueAfter != nil {
		due := bson.M{}
		if filter.DueBefore != nil {
			due["$lte"] = *filter.DueBefore
		}
		if filter.DueAfter != nil {
			due["$gte"] = *filter.DueAfter
		}
		query["due_date"] = due
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.Task, 0)
	for cursor.Next(ctx) {
		var d taskDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		tasks = append(tasks, d.toModel())
	}
	return tasks, cursor.Err()
}

func (r *TaskRepo) FindByID(ctx context.Context, id string) (model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Task{}, ErrorInvalidID
	}

	var d taskDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if err != nil {
		// Любая ошибка по id схлопывается в not found - контракт API
		return model.Task{}, ErrorNotFound
	}
	return d.toModel(), nil
}

func (r *TaskRepo) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Task{}, ErrorInvalidID
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return model.Task{}, ErrorNotFound
	}
	if res.ModifiedCount == 0 {
		// Запись не найдена либо все поля совпали - хранилище
		// эти случаи не различает
		return model.Task{}, ErrorNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *TaskRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrorInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return ErrorNotFound
	}
	if res.DeletedCount == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) FindDueWithin(ctx context.Context, hours int) ([]model.Task, error) {
	now := time.Now().UTC()
	until := now.Add(time.Duration(hours) * time.Hour)

	filter := model.TaskFilter{
		DueAfter:  &now,
		DueBefore: &until,
	}
	return r.FindAll(ctx, filter)
}

func (r *TaskRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
