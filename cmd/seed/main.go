package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mediarate/database"
	"mediarate/internal/config"
	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/models"
	"mediarate/internal/httpapi/repository"
	"mediarate/internal/httpapi/service"
	"mediarate/internal/middleware/auth"
)

func strPtr(s string) *string { return &s }

// Seeds a development database with sample users, contents and ratings.
// Ratings go through the same transactional service path as the API, so
// the denormalized aggregates come out consistent.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		logger.Error("could not inspect database", "error", err)
		os.Exit(1)
	}
	if userCount > 0 {
		logger.Info("database already has data, skipping seed", "users", userCount)
		return
	}

	hashed, err := auth.HashPassword("Password@123")
	if err != nil {
		logger.Error("could not hash password", "error", err)
		os.Exit(1)
	}

	users := []*models.User{
		{Username: "johndoe", Email: "john.doe@example.com", Password: hashed, FullName: strPtr("John Doe")},
		{Username: "janedoe", Email: "jane.doe@example.com", Password: hashed, FullName: strPtr("Jane Doe")},
		{Username: "bobsmith", Email: "bob.smith@example.com", Password: hashed, FullName: strPtr("Bob Smith")},
	}
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			logger.Error("could not create user", "username", u.Username, "error", err)
			os.Exit(1)
		}
		logger.Info("user created", "username", u.Username)
	}

	contents := []*models.Content{
		{
			Title:        "The Last of Us Part II",
			Description:  strPtr("An epic post-apocalyptic action-adventure game with stunning graphics and emotional storytelling."),
			Category:     models.CategoryGame,
			ThumbnailURL: strPtr("https://example.com/images/tlou2-thumbnail.jpg"),
			ContentURL:   strPtr("https://store.playstation.com/tlou2"),
			Author:       strPtr("Naughty Dog"),
			CreatedBy:    users[0].ID,
		},
		{
			Title:        "Inception - Official Trailer",
			Description:  strPtr("A mind-bending thriller trailer about dreams within dreams, directed by Christopher Nolan."),
			Category:     models.CategoryVideo,
			ThumbnailURL: strPtr("https://example.com/images/inception-thumbnail.jpg"),
			ContentURL:   strPtr("https://www.youtube.com/watch?v=YoHD9XEInc0"),
			Author:       strPtr("Warner Bros. Pictures"),
			CreatedBy:    users[0].ID,
		},
		{
			Title:       "Starry Night Reimagined",
			Description: strPtr("A digital reinterpretation of Van Gogh's classic in a cyberpunk palette."),
			Category:    models.CategoryArtwork,
			Author:      strPtr("Jane Doe"),
			CreatedBy:   users[1].ID,
		},
		{
			Title:       "Bohemian Rhapsody",
			Description: strPtr("The legendary six-minute suite by Queen."),
			Category:    models.CategoryMusic,
			Author:      strPtr("Queen"),
			CreatedBy:   users[2].ID,
		},
	}
	for _, c := range contents {
		if err := db.Create(c).Error; err != nil {
			logger.Error("could not create content", "title", c.Title, "error", err)
			os.Exit(1)
		}
		logger.Info("content created", "title", c.Title)
	}

	contentRepo := repository.NewContentRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	ratingService := service.NewRatingService(db, ratingRepo, contentRepo, logger)

	ctx := context.Background()
	ratings := []struct {
		user    *models.User
		content *models.Content
		value   int
		comment string
	}{
		{users[1], contents[0], 5, "Amazing game! Loved the story."},
		{users[2], contents[0], 4, "Great visuals, pacing drags in the middle."},
		{users[0], contents[2], 5, "Gorgeous palette."},
		{users[2], contents[1], 3, ""},
	}
	for _, r := range ratings {
		req := dto.CreateRatingRequest{Rating: r.value}
		if r.comment != "" {
			req.Comment = strPtr(r.comment)
		}
		if _, err := ratingService.RateContent(ctx, r.user.ID, r.content.ID, req); err != nil {
			logger.Error("could not create rating", "user", r.user.Username, "content", r.content.Title, "error", err)
			os.Exit(1)
		}
		logger.Info("rating created", "user", r.user.Username, "content", r.content.Title, "rating", r.value)
	}

	logger.Info("sample data seeded")
}
