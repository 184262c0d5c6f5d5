package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/TigerCipher/cpu-scheduler/internal/config"
	"github.com/TigerCipher/cpu-scheduler/internal/ctxlog"
	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

// ErrTooManyDispatches rejects requests whose timeline would exceed the
// configured scheduler.max_dispatches.
var ErrTooManyDispatches = errors.New("schedule too large")

// Handler serves the scheduling endpoints. The configured quantum is used for
// round-robin when a request does not carry one.
type Handler struct {
	quantum       int64
	maxDispatches int64
	logger        *slog.Logger
}

func NewHandler(cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{quantum: cfg.TimeQuantum, maxDispatches: cfg.MaxDispatches, logger: logger}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	h.logger.Debug("Health check endpoint hit.", "remote_addr", c.IP(), "path", c.Path())
	return c.SendString("OK")
}

func (h *Handler) Schedule(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	algorithm, err := scheduler.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return h.fail(c, err)
	}
	processes, err := req.processes()
	if err != nil {
		return h.fail(c, err)
	}

	policy := scheduler.NewPolicy(algorithm, req.quantum(h.quantum))
	if err := h.checkSize(processes, policy); err != nil {
		return h.fail(c, err)
	}
	res, err := scheduler.Run(processes, policy)
	if err != nil {
		return h.fail(c, err)
	}
	h.logger.Debug("Schedule computed.", "policy", policy.String(), "processes", len(processes))
	return c.JSON(newScheduleResponse(res))
}

func (h *Handler) Compare(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	processes, err := req.processes()
	if err != nil {
		return h.fail(c, err)
	}

	quantum := req.quantum(h.quantum)
	for _, a := range scheduler.Algorithms {
		if err := h.checkSize(processes, scheduler.NewPolicy(a, quantum)); err != nil {
			return h.fail(c, err)
		}
	}

	ctx := ctxlog.WithLogger(c.UserContext(), h.logger)
	results, err := scheduler.Compare(ctx, processes, quantum)
	if err != nil {
		return h.fail(c, err)
	}
	h.logger.Debug("Comparison computed.", "processes", len(processes), "runs", len(results))
	return c.JSON(newCompareResponse(results))
}

// checkSize validates policy and refuses runs that would emit more slices
// than the server allows.
func (h *Handler) checkSize(processes []scheduler.Process, policy scheduler.Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	if n := policy.Dispatches(processes); n > h.maxDispatches {
		return fmt.Errorf("%w: %s needs %d dispatches, limit is %d", ErrTooManyDispatches, policy, n, h.maxDispatches)
	}
	return nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format: " + err.Error(),
	})
}

// fail maps domain errors to 422 and everything else to 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, scheduler.ErrInvalidInput),
		errors.Is(err, scheduler.ErrEmptyInput),
		errors.Is(err, scheduler.ErrUnknownAlgorithm),
		errors.Is(err, ErrTooManyDispatches):
		status = fiber.StatusUnprocessableEntity
	default:
		h.logger.Error("Request failed.", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
