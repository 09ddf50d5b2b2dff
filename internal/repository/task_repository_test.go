package repository_test

import (
	"context"
	"testing"

	"todopro/internal/model"
	"todopro/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "priority", "status", "category",
		"due_date", "created_at", "updated_at", "completed_at", "parent_id", "order_index",
	})
}

func TestTaskRepository_List(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" ORDER BY created_at DESC`).
		WillReturnRows(taskRows().
			AddRow("2", "newer", "", "medium", "pending", "General", "", "2024-03-02T10:00:00Z", "2024-03-02T10:00:00Z", "", "", 0).
			AddRow("1", "older", "", "high", "completed", "Work", "2024-03-05", "2024-03-01T10:00:00Z", "2024-03-01T10:00:00Z", "2024-03-01T12:00:00Z", "", 0))

	// Act
	tasks, err := taskRepo.List(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "newer", tasks[0].Title)
	assert.Equal(t, model.PriorityHigh, tasks[1].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* LIMIT .*`).
		WillReturnRows(taskRows().
			AddRow("abc", "found", "details", "low", "in_progress", "Design", "", "2024-03-01T10:00:00Z", "2024-03-01T10:00:00Z", "", "", 0))

	// Act
	task, err := taskRepo.GetByID(context.Background(), "abc")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, task)
	assert.Equal(t, "found", task.Title)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* LIMIT .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	task, err := taskRepo.GetByID(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	task := &model.Task{ID: "abc", Title: "renamed", Priority: "high", Status: "pending"}

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	task := &model.Task{ID: "ghost", Title: "renamed", Priority: "high", Status: "pending"}

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	deleted, err := taskRepo.Delete(context.Background(), "abc")

	// Assert
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NoRow(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	deleted, err := taskRepo.Delete(context.Background(), "ghost")

	// Assert
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ByDateRange(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE due_date BETWEEN .* ORDER BY due_date ASC`).
		WithArgs("2024-03-01", "2024-03-31").
		WillReturnRows(taskRows().
			AddRow("1", "early", "", "medium", "pending", "General", "2024-03-05", "2024-02-01T10:00:00Z", "2024-02-01T10:00:00Z", "", "", 0).
			AddRow("2", "late", "", "medium", "pending", "General", "2024-03-25", "2024-02-01T10:00:00Z", "2024-02-01T10:00:00Z", "", "", 0))

	// Act
	tasks, err := taskRepo.ByDateRange(context.Background(), "2024-03-01", "2024-03-31")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "early", tasks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Stats(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`GROUP BY status, priority, category`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "priority", "category", "count", "date"}).
			AddRow("completed", "high", "Work", 3, "2024-03-02").
			AddRow("pending", "medium", "General", 1, "2024-03-01"))

	// Act
	rows, err := taskRepo.Stats(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, "Work", rows[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
