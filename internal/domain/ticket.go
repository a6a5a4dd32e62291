package domain

import (
	"encoding/json"
	"fmt"
)

// Status enumerates lifecycle states for tickets.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Priority enumerates ticket urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority bucket in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// DescriptionLimit caps the derived ticket description length in runes.
const DescriptionLimit = 100

// ParseStatus validates a status string from the query layer.
func ParseStatus(val string) (Status, error) {
	switch Status(val) {
	case StatusOpen, StatusClosed:
		return Status(val), nil
	}
	return "", fmt.Errorf("invalid status %q", val)
}

// ParsePriority validates a priority string from the query layer.
func ParsePriority(val string) (Priority, error) {
	switch Priority(val) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(val), nil
	}
	return "", fmt.Errorf("invalid priority %q", val)
}

// StatusForCompleted derives ticket status from the upstream completion flag.
func StatusForCompleted(completed bool) Status {
	if completed {
		return StatusClosed
	}
	return StatusOpen
}

// PriorityForID derives a stable priority from the ticket id: id mod 3 maps
// 0, 1, 2 to low, medium, high. Total over negative ids as well.
func PriorityForID(id int) Priority {
	mod := id % 3
	if mod < 0 {
		mod += 3
	}
	return Priorities[mod]
}

// TruncateDescription hard-cuts text to DescriptionLimit runes, no ellipsis.
func TruncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) <= DescriptionLimit {
		return text
	}
	return string(runes[:DescriptionLimit])
}

// Ticket is the derived domain representation of an upstream task. It is
// recomputed on every request and never persisted.
type Ticket struct {
	ID          int
	Title       string
	Status      Status
	Priority    Priority
	Assignee    string
	Description string
}

// TicketDetail is a Ticket plus the untransformed upstream payload.
type TicketDetail struct {
	Ticket
	Raw json.RawMessage
}

// TicketPage is one window of the filtered ticket sequence.
type TicketPage struct {
	Tickets []Ticket
	Total   int
	Page    int
	Limit   int
	HasNext bool
}

// TicketStats aggregates counts across the entire ticket set.
type TicketStats struct {
	TotalTickets   int
	OpenTickets    int
	ClosedTickets  int
	PriorityCounts map[Priority]int
	AssigneeCounts map[string]int
}
