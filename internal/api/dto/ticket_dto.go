package dto

import (
	"encoding/json"

	"github.com/spec-kit/tickethub/internal/domain"
)

// TicketResponse is one derived ticket.
type TicketResponse struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Status      domain.Status   `json:"status"`
	Priority    domain.Priority `json:"priority"`
	Assignee    string          `json:"assignee"`
	Description string          `json:"description"`
}

// TicketDetailResponse adds the untransformed upstream payload.
type TicketDetailResponse struct {
	TicketResponse
	RawData json.RawMessage `json:"raw_data"`
}

// TicketListResponse is one page of tickets with pagination metadata.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	HasNext bool             `json:"has_next"`
}

// TicketStatsResponse reports aggregate counts.
type TicketStatsResponse struct {
	TotalTickets   int                     `json:"total_tickets"`
	OpenTickets    int                     `json:"open_tickets"`
	ClosedTickets  int                     `json:"closed_tickets"`
	PriorityCounts map[domain.Priority]int `json:"priority_counts"`
	AssigneeCounts map[string]int          `json:"assignee_counts"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(ticket domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		Assignee:    ticket.Assignee,
		Description: ticket.Description,
	}
}

// FromTicketDetail maps a domain ticket detail to its response shape.
func FromTicketDetail(detail *domain.TicketDetail) TicketDetailResponse {
	return TicketDetailResponse{
		TicketResponse: FromTicket(detail.Ticket),
		RawData:        detail.Raw,
	}
}

// FromTicketStats maps domain stats to their response shape.
func FromTicketStats(stats *domain.TicketStats) TicketStatsResponse {
	return TicketStatsResponse{
		TotalTickets:   stats.TotalTickets,
		OpenTickets:    stats.OpenTickets,
		ClosedTickets:  stats.ClosedTickets,
		PriorityCounts: stats.PriorityCounts,
		AssigneeCounts: stats.AssigneeCounts,
	}
}
