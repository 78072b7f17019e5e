package controller

import (
	"crypto/subtle"

	"penai-be/internal/dto"
	"penai-be/internal/pkg/serverutils"
	"penai-be/internal/service"
	"penai-be/pkg/opendays"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	GetConversationHistory(ctx *fiber.Ctx) error
	ListOpenDays(ctx *fiber.Ctx) error
	RefreshOpenDays(ctx *fiber.Ctx) error
	GetFamily(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
	refresher        *opendays.Refresher
	refreshSecret    string
}

func NewAssistantController(
	assistantService service.IAssistantService,
	refresher *opendays.Refresher,
	refreshSecret string,
) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
		refresher:        refresher,
		refreshSecret:    refreshSecret,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	r.Post("/ask", c.Ask)
	r.Post("/session", c.CreateSession)
	r.Get("/conversation/:id", c.GetConversation)
	r.Get("/conversation/:id/history", c.GetConversationHistory)
	r.Get("/open-days", c.ListOpenDays)
	r.Post("/open-days/refresh", c.RefreshOpenDays)
	r.Get("/family/:id", c.GetFamily)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	res, err := c.assistantService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *assistantController) GetConversation(ctx *fiber.Ctx) error {
	res, err := c.assistantService.GetConversation(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *assistantController) GetConversationHistory(ctx *fiber.Ctx) error {
	res, err := c.assistantService.GetConversationHistory(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation history", res))
}

func (c *assistantController) ListOpenDays(ctx *fiber.Ctx) error {
	res, err := c.assistantService.ListOpenDays(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list open days", res))
}

func (c *assistantController) RefreshOpenDays(ctx *fiber.Ctx) error {
	secret := ctx.Get("X-Refresh-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(c.refreshSecret)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorised")
	}

	count, err := c.refresher.Refresh(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Open days refreshed", fiber.Map{"count": count}))
}

func (c *assistantController) GetFamily(ctx *fiber.Ctx) error {
	res, err := c.assistantService.GetFamily(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show family", res))
}
