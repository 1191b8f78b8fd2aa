// Benchmark tool: compares the two feed query strategies against a live
// database. The naive plan materializes followee ids in the application
// tier and issues a second filtered query; the semi-join plan resolves the
// author set inside a single SQL subquery. Both must return identical rows.
//
// Optionally seeds synthetic users/follows/posts first:
//
//	go run ./cmd/benchmark -seed -users 1000 -follows 50 -posts 20
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fotogram/internal/config"
	"fotogram/internal/database"
	"fotogram/internal/model"
)

func main() {
	var seed bool
	var users, follows, posts int
	var iterations, limit int
	flag.BoolVar(&seed, "seed", false, "seed synthetic users/follows/posts before benchmarking")
	flag.IntVar(&users, "users", 1000, "users to seed")
	flag.IntVar(&follows, "follows", 50, "follow edges per user")
	flag.IntVar(&posts, "posts", 20, "posts per user")
	flag.IntVar(&iterations, "iterations", 100, "queries per strategy")
	flag.IntVar(&limit, "limit", 100, "page size")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if seed {
		if err := seedData(ctx, db, users, follows, posts); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	var userIDs []int64
	if err := db.SelectContext(ctx, &userIDs, `SELECT id FROM users ORDER BY random() LIMIT $1`, iterations); err != nil {
		log.Fatalf("sample users: %v", err)
	}
	if len(userIDs) == 0 {
		log.Fatal("no users in database; run with -seed first")
	}

	fmt.Println("Benchmarking feed query strategies")
	runComparison(ctx, db, userIDs, limit, feedTwoStep, feedSemiJoin)

	fmt.Println("Benchmarking follower-posts query strategies")
	runComparison(ctx, db, userIDs, limit, followerPostsTwoStep, followerPostsSemiJoin)
}

type strategy func(ctx context.Context, db *sqlx.DB, userID int64, limit int) ([]model.Post, error)

func runComparison(ctx context.Context, db *sqlx.DB, userIDs []int64, limit int, naive, optimized strategy) {
	naiveTime := measure(ctx, db, userIDs, limit, naive)
	optimizedTime := measure(ctx, db, userIDs, limit, optimized)

	fmt.Printf("  two-step:  %v total, %v/query\n", naiveTime, naiveTime/time.Duration(len(userIDs)))
	fmt.Printf("  semi-join: %v total, %v/query\n", optimizedTime, optimizedTime/time.Duration(len(userIDs)))

	// Correctness check on a sample subject: both plans must agree row for row.
	sample := userIDs[rand.Intn(len(userIDs))]
	a, err := naive(ctx, db, sample, limit)
	if err != nil {
		log.Fatalf("two-step query: %v", err)
	}
	b, err := optimized(ctx, db, sample, limit)
	if err != nil {
		log.Fatalf("semi-join query: %v", err)
	}
	if err := sameResults(a, b); err != nil {
		log.Fatalf("strategies disagree for user %d: %v", sample, err)
	}
	fmt.Printf("  results identical for user %d (%d rows)\n", sample, len(a))
}

func measure(ctx context.Context, db *sqlx.DB, userIDs []int64, limit int, s strategy) time.Duration {
	start := time.Now()
	for _, id := range userIDs {
		if _, err := s(ctx, db, id, limit); err != nil {
			log.Fatalf("query for user %d: %v", id, err)
		}
	}
	return time.Since(start)
}

func sameResults(a, b []model.Post) error {
	if len(a) != len(b) {
		return fmt.Errorf("row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return fmt.Errorf("row %d differs: post %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
	return nil
}

// feedTwoStep is the rejected plan: fetch followee ids into the
// application, then issue a second query filtered on the materialized set.
func feedTwoStep(ctx context.Context, db *sqlx.DB, userID int64, limit int) ([]model.Post, error) {
	var authorIDs []int64
	if err := db.SelectContext(ctx, &authorIDs,
		`SELECT followee_id FROM follows WHERE follower_id = $1`, userID); err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, userID)

	posts := []model.Post{}
	err := db.SelectContext(ctx, &posts, `
		SELECT id, author_id, description, image_url, created_at
		FROM posts
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, pq.Array(authorIDs), limit)
	return posts, err
}

func feedSemiJoin(ctx context.Context, db *sqlx.DB, userID int64, limit int) ([]model.Post, error) {
	posts := []model.Post{}
	err := db.SelectContext(ctx, &posts, `
		SELECT id, author_id, description, image_url, created_at
		FROM posts
		WHERE author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
		   OR author_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	return posts, err
}

func followerPostsTwoStep(ctx context.Context, db *sqlx.DB, userID int64, limit int) ([]model.Post, error) {
	var authorIDs []int64
	if err := db.SelectContext(ctx, &authorIDs,
		`SELECT follower_id FROM follows WHERE followee_id = $1`, userID); err != nil {
		return nil, err
	}

	posts := []model.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := db.SelectContext(ctx, &posts, `
		SELECT id, author_id, description, image_url, created_at
		FROM posts
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, pq.Array(authorIDs), limit)
	return posts, err
}

func followerPostsSemiJoin(ctx context.Context, db *sqlx.DB, userID int64, limit int) ([]model.Post, error) {
	posts := []model.Post{}
	err := db.SelectContext(ctx, &posts, `
		SELECT id, author_id, description, image_url, created_at
		FROM posts
		WHERE author_id IN (SELECT follower_id FROM follows WHERE followee_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	return posts, err
}

func seedData(ctx context.Context, db *sqlx.DB, users, followsPerUser, postsPerUser int) error {
	log.Printf("Seeding %d users, %d follows/user, %d posts/user", users, followsPerUser, postsPerUser)
	start := time.Now()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ids := make([]int64, users)
	for i := 0; i < users; i++ {
		err := tx.GetContext(ctx, &ids[i], `
			INSERT INTO users (username, password_hashed)
			VALUES ($1, 'benchmark')
			RETURNING id
		`, fmt.Sprintf("bench_user_%d_%d", time.Now().UnixNano(), i))
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
	}

	for _, id := range ids {
		for j := 0; j < followsPerUser; j++ {
			followee := ids[rand.Intn(len(ids))]
			if followee == id {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO follows (follower_id, followee_id)
				VALUES ($1, $2)
				ON CONFLICT (follower_id, followee_id) DO NOTHING
			`, id, followee)
			if err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}

		for j := 0; j < postsPerUser; j++ {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO posts (author_id, description, image_url, image_key, created_at)
				VALUES ($1, $2, '', '', NOW() - ($3 || ' minutes')::interval)
			`, id, fmt.Sprintf("benchmark post %d", j), rand.Intn(60*24*30))
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Seeded in %v", time.Since(start))
	return nil
}
