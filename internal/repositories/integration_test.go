package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/tweet-board/migrations"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		db, err = sqlx.Connect("pgx", dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(func() { db.Close() })

	schema, err := migrations.UpSQL()
	require.NoError(t, err)
	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

func TestTweetRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	authorID, err := users.Save(ctx, "Alice", "alice@example.com", "hash")
	require.NoError(t, err)

	reader := NewTweetReadRepository(db)
	writer := NewTweetWriteRepository(db)

	tweets, err := reader.ListTweets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tweets)

	firstID, err := writer.InsertTweet(ctx, "first", "first content", authorID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = writer.InsertTweet(ctx, "second", "second content", authorID)
	require.NoError(t, err)

	tweets, err = reader.ListTweets(ctx)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "second", tweets[0].Title)
	assert.Equal(t, "first", tweets[1].Title)
	assert.Equal(t, firstID, tweets[1].ID)
	assert.False(t, tweets[0].CreatedAt.Before(tweets[1].CreatedAt))

	detail, err := reader.GetTweet(ctx, tweets[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "first content", detail.Content)
	assert.Equal(t, authorID, detail.Author.ID)
	assert.Equal(t, "Alice", detail.Author.Name)

	require.NoError(t, writer.DeleteTweet(ctx, tweets[1].ID))

	_, err = reader.GetTweet(ctx, tweets[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, writer.DeleteTweet(ctx, tweets[1].ID), ErrNotFound)

	_, err = reader.GetTweet(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = writer.InsertTweet(ctx, "orphan", "no such author", uuid.New())
	assert.Error(t, err, "created_by must reference a user")
}

func TestUserRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db, nil)

	id, err := writer.Save(ctx, "Bob", "bob@example.com", "hash")
	require.NoError(t, err)

	user, err := reader.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.UserID)

	_, err = writer.Save(ctx, "Bob again", "bob@example.com", "hash")
	assert.ErrorIs(t, err, ErrDuplicate)
}
