package ports

import "github.com/aalvaropc/byobox/internal/domain"

// ReceiptStore persists receipts of successful submissions.
type ReceiptStore interface {
	SaveReceipt(r domain.Receipt) (id string, err error)
}
