package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
	"bizmanager/pkg/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDatabase(config.DatabaseConfig{Driver: DriverSQLite, SQLitePath: ":memory:"}, logger.Silent)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func mustCreateTask(t *testing.T, repo repositories.TaskRepository, task *models.Task) *models.Task {
	t.Helper()
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db, now); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	counts := map[string]int64{"tasks": 3, "calendar_events": 3, "contacts": 2, "cars": 3}
	for table, want := range counts {
		var got int64
		if err := db.Table(table).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s: got %d rows, want %d", table, got, want)
		}
	}
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateTask(t, NewTaskRepository(db), &models.Task{Title: "mine", Priority: "low", Status: "pending"})

	if err := Seed(ctx, db, time.Now()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, _ := NewTaskRepository(db).Count(ctx)
	if n != 1 {
		t.Fatalf("expected existing task table untouched, got %d rows", n)
	}
	cars, _ := NewCarRepository(db).Count(ctx)
	if cars != 3 {
		t.Fatalf("expected cars seeded, got %d", cars)
	}
}

func TestSeededEventsAreToday(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	if err := Seed(ctx, db, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	from := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 6, 23, 59, 59, 999999000, time.UTC)
	events, err := NewCalendarEventRepository(db).List(ctx, repositories.EventFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events today, got %d", len(events))
	}
	hours := []int{10, 14, 16}
	for i, e := range events {
		if e.StartTime.Hour() != hours[i] {
			t.Errorf("event %d starts at %v, want hour %d", i, e.StartTime, hours[i])
		}
	}
}

func TestTaskListOrderAndFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	later := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	noDue := mustCreateTask(t, repo, &models.Task{Title: "no due", Priority: "high", Status: "pending"})
	b := mustCreateTask(t, repo, &models.Task{Title: "later", Priority: "high", Status: "pending", DueDate: &later})
	a := mustCreateTask(t, repo, &models.Task{Title: "sooner", Priority: "low", Status: "completed", DueDate: &sooner})

	all, err := repo.List(ctx, repositories.TaskFilter{Status: "all", Priority: ""})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []uint{a.ID, b.ID, noDue.ID}
	if len(all) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, all[i].ID, id)
		}
	}

	high, _ := repo.List(ctx, repositories.TaskFilter{Priority: "high"})
	if len(high) != 2 {
		t.Errorf("priority filter: got %d", len(high))
	}
	done, _ := repo.List(ctx, repositories.TaskFilter{Status: "completed"})
	if len(done) != 1 || done[0].ID != a.ID {
		t.Errorf("status filter: got %v", done)
	}
}

func TestListDueBetweenSkipsClosedTasks(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(30 * time.Minute)

	open := mustCreateTask(t, repo, &models.Task{Title: "open", Priority: "low", Status: "pending", DueDate: &soon})
	mustCreateTask(t, repo, &models.Task{Title: "done", Priority: "low", Status: "completed", DueDate: &soon})
	mustCreateTask(t, repo, &models.Task{Title: "cancelled", Priority: "low", Status: "cancelled", DueDate: &soon})

	tasks, err := repo.ListDueBetween(context.Background(), now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != open.ID {
		t.Fatalf("expected only the open task, got %+v", tasks)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewContactRepository(db).Delete(ctx, 42); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := NewCarRepository(db).GetByID(ctx, 42); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateVIN(t *testing.T) {
	db := newTestDB(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Car{VIN: "VIN00000000000001", Brand: "Lada", Model: "Niva", Status: "in_stock"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &models.Car{VIN: "VIN00000000000001", Brand: "Kia", Model: "Rio", Status: "in_stock"})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCarListOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	for _, c := range []*models.Car{
		{VIN: "V3", Brand: "Toyota", Model: "Camry", Status: "in_stock"},
		{VIN: "V1", Brand: "Kia", Model: "Rio", Status: "sold"},
		{VIN: "V2", Brand: "Kia", Model: "Ceed", Status: "in_stock"},
	} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cars, err := repo.List(ctx, repositories.CarFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{cars[0].VIN, cars[1].VIN, cars[2].VIN}
	if got[0] != "V2" || got[1] != "V1" || got[2] != "V3" {
		t.Fatalf("unexpected order %v", got)
	}

	inStock, _ := repo.List(ctx, repositories.CarFilter{Status: "in_stock"})
	if len(inStock) != 2 {
		t.Fatalf("status filter: got %d", len(inStock))
	}
}
