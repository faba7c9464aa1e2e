package controller

import (
	"medinote-be/internal/dto"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPatientController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	IdByEmail(ctx *fiber.Ctx) error
	Details(ctx *fiber.Ctx) error
}

type patientController struct {
	patientService service.IPatientService
}

func NewPatientController(patientService service.IPatientService) IPatientController {
	return &patientController{
		patientService: patientService,
	}
}

func (c *patientController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/v1")
	h.Use(auth)
	h.Post("add-patient-ext", c.Create)
	h.Get("patients", c.List)
	h.Get("patient-id-by-email", c.IdByEmail)
	h.Get("patient-details/:patientId", c.Details)
}

func (c *patientController) Create(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	var req dto.CreatePatientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.InvalidArgument, "Malformed request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.patientService.Create(ctx.Context(), callerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *patientController) List(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	doctorId, err := uuid.Parse(ctx.Query("doctor_id"))
	if err != nil {
		return apperror.New(apperror.InvalidArgument, "Missing required fields.")
	}

	res, err := c.patientService.List(ctx.Context(), callerId, doctorId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *patientController) IdByEmail(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	email := ctx.Query("email")
	if email == "" {
		return apperror.New(apperror.InvalidArgument, "Missing required fields.")
	}

	res, err := c.patientService.IdByEmail(ctx.Context(), callerId, email)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *patientController) Details(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	patientId, err := uuid.Parse(ctx.Params("patientId"))
	if err != nil {
		return apperror.New(apperror.NotFound, "Patient not found")
	}

	res, err := c.patientService.Details(ctx.Context(), callerId, patientId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
