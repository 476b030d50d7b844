// Package testpg starts a disposable Postgres for integration tests.
package testpg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/nikolayk812/jewelshop/internal/repository"
)

const image = "postgres:16-alpine"

type Postgres struct {
	Container testcontainers.Container
	Pool      *pgxpool.Pool
}

// Start runs a container, connects a pool and applies the schema.
func Start(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("jewelshop"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres.Run: %w", err)
	}

	pg := &Postgres{Container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return pg, fmt.Errorf("container.ConnectionString: %w", err)
	}

	pg.Pool, err = repository.Connect(ctx, connStr, 0)
	if err != nil {
		return pg, fmt.Errorf("repository.Connect: %w", err)
	}

	if err := repository.Migrate(ctx, pg.Pool); err != nil {
		return pg, fmt.Errorf("repository.Migrate: %w", err)
	}

	return pg, nil
}

// Truncate empties every table between test cases.
func (pg *Postgres) Truncate(ctx context.Context) error {
	_, err := pg.Pool.Exec(ctx, "TRUNCATE TABLE order_items, orders, cart_items, products, users CASCADE")
	return err
}

func (pg *Postgres) Stop(ctx context.Context) error {
	if pg.Pool != nil {
		pg.Pool.Close()
	}

	if pg.Container != nil {
		return pg.Container.Terminate(ctx)
	}

	return nil
}
