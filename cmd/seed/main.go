// seed creates the schema (if needed) and inserts a demo account plus a
// small movie catalog into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/csanchez-dev/myflix-api/internal/infrastructure/postgres"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedUsername = "demo123"
	seedPassword = "demo-password"
	seedEmail    = "demo@myflix.local"
)

type movieSpec struct {
	title         string
	description   string
	genre         string
	genreDesc     string
	director      string
	directorBio   string
	directorBirth int
	featured      bool
}

var catalog = []movieSpec{
	{"Alien", "A commercial crew picks up a distress call from a desolate moon.", "Horror",
		"Fiction intended to frighten and unsettle.", "Ridley Scott",
		"English filmmaker known for atmospheric visuals.", 1937, true},
	{"Blade Runner", "A blade runner must pursue four replicants hiding in Los Angeles.", "Science Fiction",
		"Speculative fiction built on imagined technology.", "Ridley Scott",
		"English filmmaker known for atmospheric visuals.", 1937, false},
	{"Psycho", "A secretary on the run checks into a remote motel.", "Horror",
		"Fiction intended to frighten and unsettle.", "Alfred Hitchcock",
		"English director, the master of suspense.", 1899, false},
	{"Rear Window", "A photographer confined to a wheelchair suspects his neighbor of murder.", "Thriller",
		"Suspense-driven fiction.", "Alfred Hitchcock",
		"English director, the master of suspense.", 1899, true},
	{"Seven Samurai", "A village hires seven ronin to defend it from bandits.", "Drama",
		"Character-driven fiction.", "Akira Kurosawa",
		"Japanese director and screenwriter.", 1910, false},
	{"Jaws", "A great white shark terrorizes a beach town.", "Thriller",
		"Suspense-driven fiction.", "Steven Spielberg",
		"American director and producer.", 1946, false},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	// Upsert the demo account, keeping a known password across re-runs.
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id`,
		uuid.NewString(), seedUsername, string(digest), seedEmail,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert demo user: %v", err)
	}

	var inserted, skipped int
	for _, m := range catalog {
		tag, err := pool.Exec(ctx, `
			INSERT INTO movies (id, title, description, genre_name, genre_description,
				director_name, director_bio, director_birth_year, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (title) DO NOTHING`,
			uuid.NewString(), m.title, m.description, m.genre, m.genreDesc,
			m.director, m.directorBio, m.directorBirth, m.featured,
		)
		if err != nil {
			log.Fatalf("insert movie %q: %v", m.title, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Demo user:      %s / %s\n", seedUsername, seedPassword)
	fmt.Printf("  User ID:        %s\n", userID)
	fmt.Printf("  Movies created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"Username\":\"%s\",\"Password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — browse the catalog:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/movies -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    curl -s http://localhost:8080/director/Ridley%20Scott -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — favorite a movie (use an ID from the /movies response):")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/users/%s/favorites/MOVIE_ID \\\n", userID)
	fmt.Println("      -H \"Authorization: Bearer $JWT\"")
}
