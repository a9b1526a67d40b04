package handlers

import (
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service *services.ExpenseService
}

func NewExpenseHandler(db *database.DB) *ExpenseHandler {
	return &ExpenseHandler{
		service: services.NewExpenseService(db),
	}
}

func SetupExpenseRoutes(router fiber.Router, db *database.DB) {
	h := NewExpenseHandler(db)

	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Delete("/:id", h.Delete)
}

// List godoc
// @Summary List all expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} models.Expense
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(expenses)
}

// Create godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body services.CreateExpenseRequest true "Expense data"
// @Success 201 {object} models.Expense
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req services.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// Delete godoc
// @Summary Delete an expense by id
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]string
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
