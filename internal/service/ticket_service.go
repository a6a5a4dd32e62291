package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/tickethub/internal/domain"
	"github.com/spec-kit/tickethub/internal/upstream"
)

// TaskFetcher is the slice of the upstream client the aggregator needs.
type TaskFetcher interface {
	FetchTasks(ctx context.Context) ([]upstream.Task, error)
	FetchTask(ctx context.Context, id int) (*upstream.Task, json.RawMessage, error)
}

// AssigneeResolver maps upstream user ids to display names.
type AssigneeResolver interface {
	Resolve(ctx context.Context, userID int) (string, error)
}

// TicketService aggregates upstream tasks into the ticket domain.
type TicketService struct {
	client    TaskFetcher
	directory AssigneeResolver
	logger    *zap.Logger
}

// Dependencies bundles collaborators for the ticket service.
type Dependencies struct {
	Client    TaskFetcher
	Directory AssigneeResolver
	Logger    *zap.Logger
}

// ListFilter describes optional listing predicates. Nil status/priority and
// empty search mean "no constraint".
type ListFilter struct {
	Status   *domain.Status
	Priority *domain.Priority
	Search   string
}

// NewTicketService constructs the service.
func NewTicketService(deps Dependencies) *TicketService {
	return &TicketService{
		client:    deps.Client,
		directory: deps.Directory,
		logger:    deps.Logger,
	}
}

// List fetches the full upstream task collection, derives tickets, applies
// the filter and returns the [skip, skip+limit) window of the filtered
// sequence along with the filtered total. Upstream order is preserved;
// out-of-range windows yield an empty slice, never an error.
func (s *TicketService) List(ctx context.Context, skip, limit int, filter ListFilter) ([]domain.Ticket, int, error) {
	tickets, err := s.fetchFiltered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total := len(tickets)
	page := paginate(tickets, skip, limit)
	return page, total, nil
}

// Get fetches a single task by id and returns its derived ticket together
// with the raw upstream payload. A missing id surfaces as upstream.ErrNotFound.
func (s *TicketService) Get(ctx context.Context, id int) (*domain.TicketDetail, error) {
	task, raw, err := s.client.FetchTask(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket, err := s.transform(ctx, *task)
	if err != nil {
		return nil, err
	}
	return &domain.TicketDetail{Ticket: ticket, Raw: raw}, nil
}

// Stats aggregates counts over the entire unfiltered ticket set. Every
// priority bucket is present even when zero; assignee buckets grow as
// encountered.
func (s *TicketService) Stats(ctx context.Context) (*domain.TicketStats, error) {
	tickets, err := s.fetchFiltered(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	stats := &domain.TicketStats{
		TotalTickets:   len(tickets),
		PriorityCounts: make(map[domain.Priority]int, len(domain.Priorities)),
		AssigneeCounts: make(map[string]int),
	}
	for _, priority := range domain.Priorities {
		stats.PriorityCounts[priority] = 0
	}

	for _, ticket := range tickets {
		if ticket.Status == domain.StatusOpen {
			stats.OpenTickets++
		} else {
			stats.ClosedTickets++
		}
		stats.PriorityCounts[ticket.Priority]++
		stats.AssigneeCounts[ticket.Assignee]++
	}
	return stats, nil
}

// fetchFiltered is the shared fetch-transform-filter step behind List and
// Stats. It never paginates, so aggregation always sees the whole set.
func (s *TicketService) fetchFiltered(ctx context.Context, filter ListFilter) ([]domain.Ticket, error) {
	tasks, err := s.client.FetchTasks(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("tasks fetched", zap.Int("count", len(tasks)))

	search := strings.ToLower(filter.Search)

	tickets := make([]domain.Ticket, 0, len(tasks))
	for _, task := range tasks {
		ticket, err := s.transform(ctx, task)
		if err != nil {
			return nil, err
		}

		if filter.Status != nil && ticket.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && ticket.Priority != *filter.Priority {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(ticket.Title), search) {
			continue
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (s *TicketService) transform(ctx context.Context, task upstream.Task) (domain.Ticket, error) {
	assignee, err := s.directory.Resolve(ctx, task.UserID)
	if err != nil {
		return domain.Ticket{}, err
	}

	return domain.Ticket{
		ID:          task.ID,
		Title:       task.Todo,
		Status:      domain.StatusForCompleted(task.Completed),
		Priority:    domain.PriorityForID(task.ID),
		Assignee:    assignee,
		Description: domain.TruncateDescription(task.Todo),
	}, nil
}

func paginate(tickets []domain.Ticket, skip, limit int) []domain.Ticket {
	if skip >= len(tickets) {
		return []domain.Ticket{}
	}
	end := skip + limit
	if end > len(tickets) {
		end = len(tickets)
	}
	return tickets[skip:end]
}
