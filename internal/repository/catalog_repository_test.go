package repository

import (
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	// Create the products table
	_, err = testDB.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			position SERIAL,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			brand VARCHAR(100) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			rating DECIMAL(2, 1) NOT NULL,
			features TEXT NOT NULL DEFAULT '',
			use_cases TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

func seedProducts(t *testing.T) {
	t.Helper()

	_, err := testDB.Exec("DELETE FROM products")
	require.NoError(t, err)

	rows := [][]any{
		{"laptop_001", "Dell XPS 13 (2024)", "laptop", "Dell", 1299.99, 4.6, "13.4-inch display", "work, productivity, travel"},
		{"laptop_002", "MacBook Air M2", "laptop", "Apple", 1199.99, 4.8, "M2 chip", "work, creative, travel"},
		{"phone_001", "iPhone 15 Pro", "smartphone", "Apple", 999.99, 4.7, "A17 Pro chip", "photography, gaming, work"},
	}
	for _, row := range rows {
		_, err := testDB.Exec(`
			INSERT INTO products (id, name, category, brand, price, rating, features, use_cases)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, row...)
		require.NoError(t, err)
	}
}

func TestCatalogLoadAll(t *testing.T) {
	seedProducts(t)

	repo := NewCatalogRepository(testDB)
	products, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Insertion order is preserved via the position column
	assert.Equal(t, "laptop_001", products[0].ID)
	assert.Equal(t, "laptop_002", products[1].ID)
	assert.Equal(t, "phone_001", products[2].ID)

	first := products[0]
	assert.Equal(t, "Dell XPS 13 (2024)", first.Name)
	assert.Equal(t, "Dell", first.Brand)
	assert.InDelta(t, 1299.99, first.Price, 0.001)
	assert.InDelta(t, 4.6, first.Rating, 0.001)
	assert.Equal(t, []string{"work", "productivity", "travel"}, first.UseCases)
}

func TestCatalogLoadAllEmptyTable(t *testing.T) {
	_, err := testDB.Exec("DELETE FROM products")
	require.NoError(t, err)

	repo := NewCatalogRepository(testDB)
	products, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSplitUseCases(t *testing.T) {
	assert.Nil(t, splitUseCases(""))
	assert.Nil(t, splitUseCases("   "))
	assert.Equal(t, []string{"work"}, splitUseCases("work"))
	assert.Equal(t, []string{"work", "gaming"}, splitUseCases(" work , gaming "))
	assert.Equal(t, []string{"work"}, splitUseCases("work,,"))
}
