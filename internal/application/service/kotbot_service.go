package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// KotBotService handles kitchen and bar preparation tickets. Tickets live
// their own lifecycle: settling or deleting the order does not touch them.
type KotBotService struct {
	uow       repository.UnitOfWork
	numbering *NumberingService
}

// NewKotBotService creates a new ticket service
func NewKotBotService(uow repository.UnitOfWork, numbering *NumberingService) *KotBotService {
	return &KotBotService{uow: uow, numbering: numbering}
}

// TicketItemInput is one requested ticket item
type TicketItemInput struct {
	ProductID    uuid.UUID
	Quantity     int
	Instructions string
}

// GenerateTicketInput represents the generate ticket input. When OrderID
// is set, LineIDs selects which of the order's lines go on the ticket.
type GenerateTicketInput struct {
	UserID  uuid.UUID
	Type    enum.TicketType
	OrderID *uuid.UUID
	LineIDs []uuid.UUID
	Items   []TicketItemInput
}

// GenerateTicket cuts a new KOT or BOT with a sequential ticket number.
// For order-bound tickets the items snapshot the selected order lines and
// the order's kot_sent flag is raised.
func (s *KotBotService) GenerateTicket(ctx context.Context, input *GenerateTicketInput) (*entity.KotBot, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Unknown ticket type")
	}

	var ticket *entity.KotBot
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		var items []entity.KotBotItem

		if input.OrderID != nil {
			order, err := r.Orders().GetWithLines(ctx, *input.OrderID)
			if err != nil {
				return err
			}
			if order == nil {
				return apperror.NewNotFoundError("Order")
			}

			selected := make(map[uuid.UUID]bool, len(input.LineIDs))
			for _, id := range input.LineIDs {
				selected[id] = true
			}

			var lineIDs []uuid.UUID
			for _, l := range order.Lines {
				if len(input.LineIDs) > 0 && !selected[l.ID] {
					continue
				}
				items = append(items, entity.KotBotItem{
					ProductID:    l.ProductID,
					Name:         l.Name,
					Quantity:     l.Quantity,
					Instructions: l.Instructions,
				})
				lineIDs = append(lineIDs, l.ID)
			}
			if len(items) == 0 {
				return apperror.NewBadRequestError("No order lines selected for the ticket")
			}

			if err := r.OrderLines().MarkKotSelected(ctx, lineIDs); err != nil {
				return err
			}
			if err := r.Orders().SetKotSent(ctx, order.ID, true); err != nil {
				return err
			}
		} else {
			if len(input.Items) == 0 {
				return apperror.NewBadRequestError("Ticket must have at least one item")
			}
			ids := make([]uuid.UUID, 0, len(input.Items))
			for _, it := range input.Items {
				if it.Quantity <= 0 {
					return apperror.NewBadRequestError("Item quantity must be positive")
				}
				ids = append(ids, it.ProductID)
			}
			products, err := r.Products().GetByIDs(ctx, ids)
			if err != nil {
				return err
			}
			byID := make(map[uuid.UUID]entity.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}
			for _, it := range input.Items {
				product, ok := byID[it.ProductID]
				if !ok {
					return apperror.NewNotFoundError("Product")
				}
				items = append(items, entity.KotBotItem{
					ProductID:    product.ID,
					Name:         product.Name,
					Quantity:     it.Quantity,
					Instructions: it.Instructions,
				})
			}
		}

		ticketNo, err := s.numbering.Next(ctx, r, input.Type.Prefix())
		if err != nil {
			return err
		}

		ticket = &entity.KotBot{
			TicketNo:    ticketNo,
			Type:        input.Type,
			OrderID:     input.OrderID,
			Status:      enum.TicketStatusSent,
			CreatedByID: input.UserID,
		}
		if err := r.Tickets().Create(ctx, ticket); err != nil {
			return err
		}

		for i := range items {
			items[i].KotBotID = ticket.ID
		}
		if err := r.TicketItems().CreateBatch(ctx, items); err != nil {
			return err
		}
		ticket.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// UpdateTicketStatus moves a ticket through its lifecycle, rejecting
// transitions the lifecycle does not allow
func (s *KotBotService) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) (*entity.KotBot, error) {
	var ticket *entity.KotBot
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		var err error
		ticket, err = r.Tickets().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		if ticket == nil {
			return apperror.NewNotFoundError("Ticket")
		}
		if !ticket.Status.CanTransitionTo(status) {
			return apperror.NewConflictError(
				"Ticket cannot move from " + ticket.Status.String() + " to " + status.String())
		}
		if err := r.Tickets().UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		ticket.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// SetItemPrepared toggles the prepared flag on one ticket item
func (s *KotBotService) SetItemPrepared(ctx context.Context, itemID uuid.UUID, prepared bool) error {
	item, err := s.uow.Repos().TicketItems().GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Ticket item")
	}
	return s.uow.Repos().TicketItems().SetPrepared(ctx, itemID, prepared)
}

// GetTicket retrieves a ticket with its items
func (s *KotBotService) GetTicket(ctx context.Context, id uuid.UUID) (*entity.KotBot, error) {
	ticket, err := s.uow.Repos().Tickets().GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	return ticket, nil
}

// ListTickets lists tickets for the kitchen or bar display
func (s *KotBotService) ListTickets(ctx context.Context, params *repository.TicketFilterParams) (*pagination.PaginatedResult[entity.KotBot], error) {
	tickets, total, err := s.uow.Repos().Tickets().List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tickets, pag), nil
}
