package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

// SetupTestDB создает тестовую БД с помощью testcontainers
func SetupTestDB(t *testing.T) (*mongo.Client, *mongo.Database, func()) {
	t.Helper()
	ctx := context.Background()

	// Создаем MongoDB контейнер
	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start mongo container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	db := client.Database("tasktracker_test")

	cleanup := func() {
		client.Disconnect(ctx)
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return client, db, cleanup
}

// TruncateTasks очищает коллекцию задач
func TruncateTasks(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx := context.Background()

	if _, err := db.Collection("tasks").DeleteMany(ctx, bson.M{}); err != nil {
		t.Fatalf("Failed to truncate tasks: %v", err)
	}
}

// SeedTasks создает тестовые задачи с дедлайном через 2 часа
func SeedTasks(t *testing.T, db *mongo.Database, count int) []string {
	t.Helper()
	ctx := context.Background()

	priorities := []string{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	now := time.Now().UTC()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		res, err := db.Collection("tasks").InsertOne(ctx, bson.M{
			"title":       fmt.Sprintf("Task %d", i+1),
			"description": fmt.Sprintf("Description %d", i+1),
			"priority":    priorities[i%3],
			"status":      model.StatusTodo,
			"due_date":    now.Add(2 * time.Hour),
			"created_at":  now,
			"tags":        []string{},
		})
		if err != nil {
			t.Fatalf("Failed to seed task: %v", err)
		}
		ids = append(ids, res.InsertedID.(primitive.ObjectID).Hex())
	}

	return ids
}

// WaitForCondition ждет выполнения условия с таймаутом
func WaitForCondition(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
