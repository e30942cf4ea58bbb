package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

var ErrRequestTooLarge = errors.New("request too large")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestProcessNext(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	FeedbackQuantumOne(ctx *fiber.Ctx) error
	FeedbackExponential(ctx *fiber.Ctx) error
	Aging(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

// Register mounts the handlers under router, e.g. app.Group("/api/v1").
func Register(router fiber.Router, h SchedulerHandler) {
	router.Get("/algorithms", h.ListAlgorithms)
	router.Post("/fcfs", h.FirstComeFirstServe)
	router.Post("/rr", h.RoundRobin)
	router.Post("/spn", h.ShortestProcessNext)
	router.Post("/srt", h.ShortestRemainingTime)
	router.Post("/hrrn", h.HighestResponseRatioNext)
	router.Post("/fb1", h.FeedbackQuantumOne)
	router.Post("/fb2i", h.FeedbackExponential)
	router.Post("/aging", h.Aging)
	router.Post("/all", h.AllAlgorithms)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '1')
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '2')
}

func (s *SchedulerHandlerImpl) ShortestProcessNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '3')
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '4')
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '5')
}

func (s *SchedulerHandlerImpl) FeedbackQuantumOne(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '6')
}

func (s *SchedulerHandlerImpl) FeedbackExponential(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '7')
}

func (s *SchedulerHandlerImpl) Aging(ctx *fiber.Ctx) error {
	return s.schedule(ctx, '8')
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, lastInstant, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	out := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		response, err := schedulers.Schedule(processes, lastInstant, algorithm.ID, s.quantum(request, algorithm), request.WithTimeline())
		if err != nil {
			return s.badRequest(ctx, err)
		}
		out = append(out, response)
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	out := make([]responses.AlgorithmResponse, 0, len(schedulers.Algorithms()))
	for _, a := range schedulers.Algorithms() {
		out = append(out, responses.AlgorithmResponse{ID: string(a.ID), Name: a.Name, Quantized: a.Quantized})
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, id byte) error {
	request, processes, lastInstant, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	algorithm, err := schedulers.Lookup(id)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	response, err := schedulers.Schedule(processes, lastInstant, id, s.quantum(request, algorithm), request.WithTimeline())
	if err != nil {
		return s.badRequest(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, []core.Process, int, error) {
	request := &requests.ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, nil, 0, err
	}
	if n := len(request.Processes); n > s.config.MaxProcesses {
		return nil, nil, 0, fmt.Errorf("%w: %d processes, at most %d", ErrRequestTooLarge, n, s.config.MaxProcesses)
	}
	processes := request.CoreProcesses()
	lastInstant := request.Horizon(processes)
	if err := core.Validate(processes, lastInstant); err != nil {
		return nil, nil, 0, err
	}
	if lastInstant > s.config.MaxLastInstant {
		return nil, nil, 0, fmt.Errorf("%w: last instant %d, at most %d", ErrRequestTooLarge, lastInstant, s.config.MaxLastInstant)
	}
	return request, processes, lastInstant, nil
}

// quantum falls back to the configured value when the request omits one.
func (s *SchedulerHandlerImpl) quantum(request *requests.ScheduleRequest, algorithm schedulers.Algorithm) int {
	if request.Quantum != 0 || !algorithm.Quantized {
		return request.Quantum
	}
	if algorithm.ID == '8' {
		return s.config.AgingTimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.logger.Info("rejected schedule request", slog.String("path", ctx.Path()), util.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
