// Package server contains the HTTP handlers and routing for the application's API endpoints.
package server

import (
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /api/follows/:userId
// Following an already-followed user unfollows them; the response says which
// way the toggle went.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	result, err := s.followService.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(result)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	followers, err := s.followService.GetFollowers(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	following, err := s.followService.GetFollowing(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(following)
}

// GetFollowCounts handles GET /api/users/:id/follow-counts
func (s *Server) GetFollowCounts(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, following, err := s.followService.GetFollowCounts(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"following": following,
	})
}
