package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/application/service"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/presentation/http/dto/request"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses an optional UUID string from a request body
func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// bindPagination reads page/per_page query parameters
func bindPagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}

// parseDiscountType maps a wire discount type to the enum, defaulting to
// a fixed amount when absent
func parseDiscountType(s string) enum.DiscountType {
	if s == "" {
		return enum.DiscountTypeAmount
	}
	t, err := enum.ParseDiscountType(s)
	if err != nil {
		return enum.DiscountTypeAmount
	}
	return t
}

// toOrderLineInputs converts request cart lines to service inputs
func toOrderLineInputs(lines []request.OrderLineRequest) ([]service.OrderLineInput, bool) {
	out := make([]service.OrderLineInput, 0, len(lines))
	for _, l := range lines {
		productID, err := uuid.Parse(l.ProductID)
		if err != nil {
			return nil, false
		}
		out = append(out, service.OrderLineInput{
			ProductID:    productID,
			Quantity:     l.Quantity,
			Discount:     l.Discount,
			DiscountType: parseDiscountType(l.DiscountType),
			Instructions: l.Instructions,
		})
	}
	return out, true
}

// toPaymentInputs converts request payments to service inputs
func toPaymentInputs(payments []request.PaymentRequest) []service.PaymentInput {
	out := make([]service.PaymentInput, 0, len(payments))
	for _, p := range payments {
		out = append(out, service.PaymentInput{
			Method:    p.Method,
			Amount:    p.Amount,
			Reference: p.Reference,
		})
	}
	return out
}
