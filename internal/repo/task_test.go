// internal/repo/task_test.go
package repo

import (
    "context"
    "errors"
    "os"
    "testing"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/BuzzLyutic/task-tracker-api/internal/model"
)

func setupTestDB(t *testing.T) *mongo.Database {
    uri := os.Getenv("TEST_MONGO_URI")
    if uri == "" {
        t.Skip("TEST_MONGO_URI not set")
    }

    client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
    if err != nil {
        t.Fatal(err)
    }

    db := client.Database("tasktracker_repo_test")

    // Очистка
    db.Collection("tasks").DeleteMany(context.Background(), bson.M{})

    return db
}

func sampleTask(title string) model.Task {
    return model.Task{
        Title:       title,
        Description: "desc",
        Priority:    model.PriorityMedium,
        Status:      model.StatusTodo,
        DueDate:     time.Now().UTC().Add(3 * time.Hour),
        CreatedAt:   time.Now().UTC(),
        Tags:        []string{},
    }
}

func TestTaskRepo_Insert(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)

    created, err := repo.Insert(context.Background(), sampleTask("Insert test"))
    if err != nil {
        t.Fatal(err)
    }

    if len(created.ID) != 24 {
        t.Errorf("expected 24-char hex id, got %q", created.ID)
    }
    if created.Tags == nil {
        t.Error("expected tags to be present, got nil")
    }
}

func TestTaskRepo_FindByID_InvalidID(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)

    // Кривой id снаружи выглядит как not found
    _, err := repo.FindByID(context.Background(), "not-a-hex-id")
    if !errors.Is(err, ErrorNotFound) {
        t.Errorf("expected ErrorNotFound, got %v", err)
    }
    if !errors.Is(err, ErrorInvalidID) {
        t.Errorf("expected ErrorInvalidID tag, got %v", err)
    }
}

func TestTaskRepo_UpdateByID_NoOp(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)

    created, err := repo.Insert(context.Background(), sampleTask("Noop test"))
    if err != nil {
        t.Fatal(err)
    }

    // Идентичные значения ничего не модифицируют - хранилище отвечает
    // так же, как на отсутствующую запись
    _, err = repo.UpdateByID(context.Background(), created.ID, map[string]interface{}{
        "title": "Noop test",
    })
    if !errors.Is(err, ErrorNotFound) {
        t.Errorf("expected ErrorNotFound on no-op update, got %v", err)
    }
}

func TestTaskRepo_FindAll_Filters(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)
    ctx := context.Background()

    high := sampleTask("High todo")
    high.Priority = model.PriorityHigh
    low := sampleTask("Low completed")
    low.Priority = model.PriorityLow
    low.Status = model.StatusCompleted

    for _, task := range []model.Task{high, low} {
        if _, err := repo.Insert(ctx, task); err != nil {
            t.Fatal(err)
        }
    }

    priority := model.PriorityHigh
    status := model.StatusTodo
    tasks, err := repo.FindAll(ctx, model.TaskFilter{Priority: &priority, Status: &status})
    if err != nil {
        t.Fatal(err)
    }

    if len(tasks) != 1 {
        t.Fatalf("expected 1 task, got %d", len(tasks))
    }
    if tasks[0].Title != "High todo" {
        t.Errorf("expected High todo, got %s", tasks[0].Title)
    }
}

func TestTaskRepo_FindDueWithin(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)
    ctx := context.Background()

    soon := sampleTask("Due soon")
    soon.DueDate = time.Now().UTC().Add(1 * time.Hour)
    late := sampleTask("Due late")
    late.DueDate = time.Now().UTC().Add(25 * time.Hour)
    past := sampleTask("Overdue")
    past.DueDate = time.Now().UTC().Add(-1 * time.Hour)

    for _, task := range []model.Task{soon, late, past} {
        if _, err := repo.Insert(ctx, task); err != nil {
            t.Fatal(err)
        }
    }

    tasks, err := repo.FindDueWithin(ctx, 24)
    if err != nil {
        t.Fatal(err)
    }

    if len(tasks) != 1 {
        t.Fatalf("expected 1 task in window, got %d", len(tasks))
    }
    if tasks[0].Title != "Due soon" {
        t.Errorf("expected Due soon, got %s", tasks[0].Title)
    }
}

func TestTaskRepo_Delete(t *testing.T) {
    db := setupTestDB(t)
    defer db.Client().Disconnect(context.Background())

    repo := NewTaskRepo(db)
    ctx := context.Background()

    created, err := repo.Insert(ctx, sampleTask("Delete test"))
    if err != nil {
        t.Fatal(err)
    }

    if err := repo.DeleteByID(ctx, created.ID); err != nil {
        t.Fatal(err)
    }

    // Повторное удаление - уже not found
    if err := repo.DeleteByID(ctx, created.ID); !errors.Is(err, ErrorNotFound) {
        t.Errorf("expected ErrorNotFound on second delete, got %v", err)
    }
}
