package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreateSOVLineRequest is the project-setup payload for one schedule-of-values
// line. Amounts arrive as JSON strings or numbers; decimal handles both.
type CreateSOVLineRequest struct {
	Description    string          `json:"description" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
}

func (r CreateSOVLineRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}

func (r CreateSOVLineRequest) ResolveCategory() string {
	return strings.TrimSpace(r.Category)
}
