package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"storefront-backend/models"
	"storefront-backend/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func draftOrder() *models.Order {
	pid := uint(4)
	return &models.Order{
		Reference: "UN-1-abc123",
		Status:    models.OrderStatusPending,
		Total:     80,
		Currency:  "USD",
		Items: []models.OrderItem{
			{ProductID: &pid, Quantity: 2, Price: 40},
		},
	}
}

func TestCreateWithItems_Commit(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)
	order := draftOrder()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.CreateWithItems(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), order.ID)
	// items carry the generated order id and stay attached to the order
	assert.Len(t, order.Items, 1)
	assert.Equal(t, uint(7), order.Items[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItems_NoItems(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)
	order := draftOrder()
	order.Items = nil

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	err := repo.CreateWithItems(context.Background(), order)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItems_ItemInsertFailureRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)
	order := draftOrder()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnError(errors.New("item insert failed"))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), order)
	assert.Error(t, err)
	// rollback, not commit: the order row must not survive alone
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, order.Items, 1)
}

func TestCreateWithItems_OrderInsertFailureRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), draftOrder())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItems_BeginFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := repo.CreateWithItems(context.Background(), draftOrder())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByReference_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs("UN-missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByReference(context.Background(), "UN-missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, order)
}
