//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/workgen-server/internal/model"
	repo "github.com/dtroode/workgen-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "workgen_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/workgen_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Ping(ctx))

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		saved, err := ur.Create(ctx, model.User{Username: "alice", PasswordHash: []byte("hash")})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, saved.ID)

		byName, err := ur.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byName.ID)

		_, err = ur.Create(ctx, model.User{Username: "alice", PasswordHash: []byte("other")})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		_, err = ur.GetByUsername(ctx, "Alice")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("quiz_repository", func(t *testing.T) {
		qr := repo.NewQuizRepository(conn)
		quiz := model.Quiz{
			Topic:        "Math",
			Difficulty:   "easy",
			NumQuestions: 2,
			Questions: []model.Question{
				{Question: "2+2?", Choices: []string{"3", "4"}, Answer: "4"},
				{Question: "1+1?", Choices: []string{"2", "11"}, Answer: "2"},
			},
			CreatorUsername: "alice",
		}

		saved, err := qr.Create(ctx, quiz)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, saved.ID)

		got, err := qr.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, quiz.Questions, got.Questions)

		list, err := qr.GetByCreator(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, list, 1)

		empty, err := qr.GetByCreator(ctx, "nobody")
		require.NoError(t, err)
		require.Empty(t, empty)

		deleted, err := qr.Delete(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, saved.ID, deleted.ID)

		_, err = qr.GetByID(ctx, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = qr.Delete(ctx, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUserRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ur.Create(ctx, model.User{Username: "racer", PasswordHash: []byte("hash")})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, model.ErrAlreadyExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	require.Equal(t, attempts-1, conflicts)
}
