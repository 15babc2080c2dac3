// Command cleanup-invitations marks pending invitations past their expiry
// as expired. Intended for cron.
//
// Usage:
//
//	cleanup-invitations
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/invitation"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	n, err := invitation.New(pool).CleanupExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Fatalf("expire invitations: %v", err)
	}

	fmt.Printf("Marked %d invitations as expired.\n", n)
}
