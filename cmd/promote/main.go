// Command promote sets a user's platform role by email address. It is used
// to bootstrap the first admin; --role=user demotes again.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "platform role to set (admin or user)")
	flag.Parse()

	if *email == "" || !domain.UserRole(*role).IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|user]")
		os.Exit(1)
	}

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

	users := user.New(pool)
	u, err := users.GetByEmail(ctx, domain.NormalizeEmail(*email))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("look up user: %v", err)
	}
	if u.Role == domain.UserRole(*role) {
		fmt.Printf("User %q already has role %s.\n", *email, *role)
		return
	}

	if _, err := users.SetRole(ctx, u.ID, domain.UserRole(*role)); err != nil {
		log.Fatalf("update role: %v", err)
	}
	fmt.Printf("User %q is now %s.\n", *email, *role)
}
