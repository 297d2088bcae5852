// Package server contains the HTTP handlers and routing for the application's API endpoints.
package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet handles POST /api/tweets
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.CreateTweet(ctx, service.CreateTweetInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(tweet)
}

// GetTweets handles GET /api/tweets
func (s *Server) GetTweets(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	tweets, err := s.tweetService.ListTweets(ctx, page.Limit, page.Offset, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(tweets)
}

// GetTweet handles GET /api/tweets/:id
func (s *Server) GetTweet(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	tweet, err := s.tweetService.GetTweet(ctx, id, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(tweet)
}

// GetUserTweets handles GET /api/users/:id/tweets
func (s *Server) GetUserTweets(c *fiber.Ctx) error {
	ctx := c.Context()
	userIDParam, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	tweets, err := s.tweetService.ListUserTweets(ctx, userIDParam, page.Limit, page.Offset, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(tweets)
}

// GetFeed handles GET /api/tweets/feed
// The feed carries originals from followed accounts plus the user's own.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	tweets, err := s.tweetService.GetFeed(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(tweets)
}

// UpdateTweet handles PUT /api/tweets/:id
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.UpdateTweet(ctx, service.UpdateTweetInput{
		UserID:  userID,
		TweetID: tweetID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(tweet)
}

// DeleteTweet handles DELETE /api/tweets/:id
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tweetService.DeleteTweet(ctx, userID, tweetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Tweet deleted"})
}

// ToggleLike handles POST /api/tweets/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.tweetService.ToggleLike(ctx, userID, tweetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(result)
}

// CreateReply handles POST /api/tweets/:id/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.replyService.CreateReply(ctx, service.CreateReplyInput{
		UserID:  userID,
		TweetID: tweetID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}

// GetReplies handles GET /api/tweets/:id/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	ctx := c.Context()
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	replies, count, err := s.replyService.ListReplies(ctx, tweetID, page.Limit, page.Offset, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"replies": replies,
		"count":   count,
	})
}
