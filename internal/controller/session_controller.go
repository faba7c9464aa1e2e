package controller

import (
	"medinote-be/internal/dto"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListByDoctor(ctx *fiber.Ctx) error
	ListByPatient(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/sessions")
	h.Use(auth)
	// The doctor/ and patient/ routes must come before :sessionId.
	h.Get("doctor/:doctorId", c.ListByDoctor)
	h.Get("patient/:patientId", c.ListByPatient)
	h.Post("", c.Create)
	h.Get(":sessionId", c.Show)
	h.Put(":sessionId", c.Update)
	h.Delete(":sessionId", c.Delete)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.InvalidArgument, "Malformed request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), callerId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return apperror.New(apperror.NotFound, "Session not found")
	}

	res, err := c.sessionService.Show(ctx.Context(), callerId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return apperror.New(apperror.NotFound, "Session not found")
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.InvalidArgument, "Malformed request body", err)
	}
	req.Id = sessionId

	res, err := c.sessionService.Update(ctx.Context(), callerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return apperror.New(apperror.NotFound, "Session not found")
	}

	res, err := c.sessionService.Delete(ctx.Context(), callerId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) ListByDoctor(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	doctorId, err := uuid.Parse(ctx.Params("doctorId"))
	if err != nil {
		return apperror.New(apperror.Forbidden, "Doctor ID mismatch or unauthorized")
	}

	res, err := c.sessionService.ListByDoctor(ctx.Context(), callerId, doctorId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) ListByPatient(ctx *fiber.Ctx) error {
	callerId, _ := uuid.Parse(serverutils.DoctorID(ctx))

	patientId, err := uuid.Parse(ctx.Params("patientId"))
	if err != nil {
		return apperror.New(apperror.NotFound, "Patient not found or not accessible")
	}

	res, err := c.sessionService.ListByPatient(ctx.Context(), callerId, patientId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
