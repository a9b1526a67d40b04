package handlers

import (
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service *services.UserProfileService
}

func NewUserHandler(db *database.DB) *UserHandler {
	return &UserHandler{
		service: services.NewUserProfileService(db),
	}
}

func SetupUserRoutes(router fiber.Router, db *database.DB) {
	h := NewUserHandler(db)

	router.Get("/profile/:username", h.Get)
	router.Put("/profile/:username", h.Update)
	router.Post("/profile", h.Create)
}

// Get godoc
// @Summary Get a user profile by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserProfile
// @Router /api/user/profile/{username} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	profile, err := h.service.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Update godoc
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body services.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.UserProfile
// @Router /api/user/profile/{username} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req services.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.Update(c.UserContext(), c.Params("username"), &req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// Create godoc
// @Summary Create a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body services.CreateProfileRequest true "Profile data"
// @Success 201 {object} models.UserProfile
// @Router /api/user/profile [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req services.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}
