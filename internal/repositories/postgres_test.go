package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-search/internal/migrations"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	m, err := migrations.New(db.DB)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

// insertRecipe adds a catalog row and returns its id.
func insertRecipe(t *testing.T, db *sqlx.DB, title, material string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, `
		INSERT INTO recipe (recipe_title, recipe_url, food_image_url, recipe_material)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		title, "https://example.com/"+title, "https://example.com/"+title+".jpg", material,
	)
	require.NoError(t, err)
	return id
}

// insertUser adds a user and returns its id.
func insertUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, "INSERT INTO users (username, password) VALUES ($1, 'hash') RETURNING id", username)
	require.NoError(t, err)
	return id
}
