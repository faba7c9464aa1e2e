package controller

import (
	"medinote-be/internal/dto"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetPresignedURL(ctx *fiber.Ctx) error
	NotifyChunkUploaded(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) IUploadController {
	return &uploadController{
		uploadService: uploadService,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/v1")
	h.Use(auth)
	h.Post("get-presigned-url", c.GetPresignedURL)
	h.Post("notify-chunk-uploaded", c.NotifyChunkUploaded)
}

func (c *uploadController) GetPresignedURL(ctx *fiber.Ctx) error {
	var req dto.PresignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.InvalidArgument, "Malformed request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.uploadService.GetPresignedURL(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *uploadController) NotifyChunkUploaded(ctx *fiber.Ctx) error {
	var req dto.ChunkUploadedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.InvalidArgument, "Malformed request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.uploadService.NotifyChunkUploaded(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{})
}
