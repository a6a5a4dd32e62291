package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tickethub/internal/api/dto"
	"github.com/spec-kit/tickethub/internal/domain"
	"github.com/spec-kit/tickethub/internal/service"
	apperrors "github.com/spec-kit/tickethub/pkg/util"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// TicketsHandler serves the read-only ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	skip := (page - 1) * limit
	tickets, total, err := h.service.List(c.UserContext(), skip, limit, filter)
	if err != nil {
		return err
	}
	return c.JSON(listResponse(tickets, total, page, limit))
}

// SearchTickets GET /tickets/search.
func (h *TicketsHandler) SearchTickets(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return apperrors.NewValidationError("q is required", nil)
	}
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	skip := (page - 1) * limit
	tickets, total, err := h.service.List(c.UserContext(), skip, limit, service.ListFilter{Search: query})
	if err != nil {
		return err
	}
	return c.JSON(listResponse(tickets, total, page, limit))
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("ticket id must be a positive integer", nil)
	}

	detail, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromTicketDetail(detail))
}

// GetStats GET /stats.
func (h *TicketsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromTicketStats(stats))
}

func parsePagination(c *fiber.Ctx) (page, limit int, err error) {
	page, err = parseBoundedInt(c.Query("page"), defaultPage, 1, 0)
	if err != nil {
		return 0, 0, apperrors.NewValidationError("page must be an integer >= 1", nil)
	}
	limit, err = parseBoundedInt(c.Query("limit"), defaultLimit, 1, maxLimit)
	if err != nil {
		return 0, 0, apperrors.NewValidationError("limit must be an integer between 1 and 100", nil)
	}
	return page, limit, nil
}

func parseListFilter(c *fiber.Ctx) (service.ListFilter, error) {
	filter := service.ListFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		status, err := domain.ParseStatus(statusStr)
		if err != nil {
			return filter, apperrors.NewValidationError("status must be open or closed", nil)
		}
		filter.Status = &status
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority, err := domain.ParsePriority(priorityStr)
		if err != nil {
			return filter, apperrors.NewValidationError("priority must be low, medium or high", nil)
		}
		filter.Priority = &priority
	}
	return filter, nil
}

func parseBoundedInt(val string, def, min, max int) (int, error) {
	if val == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if parsed < min || (max > 0 && parsed > max) {
		return 0, strconv.ErrRange
	}
	return parsed, nil
}

func listResponse(tickets []domain.Ticket, total, page, limit int) dto.TicketListResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, dto.FromTicket(ticket))
	}
	return dto.TicketListResponse{
		Tickets: items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasNext: (page-1)*limit+limit < total,
	}
}
