package controller

import (
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
}

type templateController struct {
	templateService service.ITemplateService
}

func NewTemplateController(templateService service.ITemplateService) ITemplateController {
	return &templateController{
		templateService: templateService,
	}
}

func (c *templateController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/v1")
	h.Use(auth)
	h.Get("templates", c.List)
}

func (c *templateController) List(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	res, err := c.templateService.List(ctx.Context(), callerId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
