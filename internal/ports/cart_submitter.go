package ports

import (
	"context"

	"github.com/aalvaropc/byobox/internal/domain"
)

// CartSubmitter posts a batch of line items to a storefront cart.
type CartSubmitter interface {
	Submit(ctx context.Context, req domain.CartRequest) (domain.CartResponse, error)
}
