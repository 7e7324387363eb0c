package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/qaboard/qa-backend/config"
	"github.com/qaboard/qa-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	userID := "demo-user-1"
	otherID := "demo-user-2"

	var profileID int64
	err = db.QueryRow(`
		INSERT INTO profiles (user_id, first_name, last_name, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id
	`, userID, "Demo", "User", "seeded demo profile").Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%d user_id=%s\n", profileID, userID)

	var questionID int64
	err = db.QueryRow(`
		INSERT INTO questions (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, "How do I seed demo data?", "Looking for a quick way to get a local board populated.").Scan(&questionID)
	if err != nil {
		log.Fatalf("failed to seed question: %v", err)
	}
	fmt.Printf("seeded question: id=%d\n", questionID)

	var answerID int64
	err = db.QueryRow(`
		INSERT INTO answers (user_id, question_id, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, otherID, questionID, "Run the seed command, it inserts a profile, a question and this answer.").Scan(&answerID)
	if err != nil {
		log.Fatalf("failed to seed answer: %v", err)
	}
	fmt.Printf("seeded answer: id=%d\n", answerID)

	if _, err := db.Exec(`
		INSERT INTO comments (user_id, question_id, description)
		VALUES ($1, $2, $3)
	`, otherID, questionID, "Good question, had the same problem."); err != nil {
		log.Fatalf("failed to seed comment: %v", err)
	}
	fmt.Println("seeded comment on question")

	// Mint a dev token so the seeded user can call the API right away
	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	token, exp, err := jwt.GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("failed to mint dev token: %v", err)
	}
	fmt.Printf("dev access token (expires %s):\n%s\n", exp.Format("2006-01-02 15:04:05"), token)
}
