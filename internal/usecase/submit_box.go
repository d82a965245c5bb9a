package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/ports"
)

type SubmitBox struct {
	submitter ports.CartSubmitter
	receipts  ports.ReceiptStore

	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
	catalogName string
	endpoint    string
}

type SubmitOption func(*SubmitBox)

// WithReceiptStore saves a receipt after every accepted submission.
func WithReceiptStore(rs ports.ReceiptStore) SubmitOption {
	return func(uc *SubmitBox) { uc.receipts = rs }
}

func WithLogger(l *slog.Logger) SubmitOption {
	return func(uc *SubmitBox) {
		if l != nil {
			uc.logger = l
		}
	}
}

func WithClock(now func() time.Time) SubmitOption {
	return func(uc *SubmitBox) { uc.now = now }
}

// WithBundleIDs replaces the uuid generator used for bundle ids.
func WithBundleIDs(gen func() string) SubmitOption {
	return func(uc *SubmitBox) { uc.newID = gen }
}

// WithSource records where the box came from and went to on receipts.
func WithSource(catalogName, endpoint string) SubmitOption {
	return func(uc *SubmitBox) {
		uc.catalogName = catalogName
		uc.endpoint = endpoint
	}
}

func NewSubmitBox(cs ports.CartSubmitter, opts ...SubmitOption) *SubmitBox {
	uc := &SubmitBox{
		submitter: cs,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute sends a complete box to the cart in one request. Nothing is retried and
// nothing is recorded when the cart refuses it; the caller's session is untouched
// either way, so a failed box can be fixed and submitted again.
//
// The returned id is the receipt id, empty when no store is configured.
func (uc *SubmitBox) Execute(ctx context.Context, s domain.Session, settings domain.BundleSettings) (domain.Receipt, string, error) {
	bundleID := uc.newID()
	now := uc.now().UTC()

	build, err := domain.BuildCartRequest(s, settings, bundleID, now)
	if err != nil {
		return domain.Receipt{}, "", err
	}

	log := uc.logger.With("bundle_id", bundleID, "box", s.Box().Name)
	for _, sk := range build.Skipped {
		log.Warn("submit.item_skipped",
			"category", sk.CategoryID,
			"product", sk.ProductID,
			"reason", sk.Reason,
		)
	}
	log.Info("submit.start", "items", len(build.Request.Items), "endpoint", uc.endpoint)

	resp, err := uc.submitter.Submit(ctx, build.Request)
	if err != nil {
		var se *domain.SubmitError
		if errors.As(err, &se) {
			log.Error("submit.failed", "kind", se.Kind, "status", se.Status, "message", se.Message)
			return domain.Receipt{}, "", &domain.OpError{
				Op:   "box.submit",
				Kind: domain.KindSubmission,
				Path: uc.endpoint,
				Err:  err,
			}
		}
		log.Error("submit.failed", "err", err)
		return domain.Receipt{}, "", err
	}

	receipt := domain.Receipt{
		BundleID:        bundleID,
		CatalogName:     uc.catalogName,
		BoxName:         s.Box().Name,
		SubmittedAt:     now,
		Endpoint:        uc.endpoint,
		Request:         build.Request,
		Quote:           s.Quote(),
		Skipped:         build.Skipped,
		ResponseStatus:  resp.Status,
		ResponseHeaders: resp.Headers,
	}
	log.Info("submit.done", "status", resp.Status, "lines", len(resp.Items))

	if uc.receipts == nil {
		return receipt, "", nil
	}

	id, err := uc.receipts.SaveReceipt(receipt)
	if err != nil {
		// The cart already holds the box; a lost receipt is not a failed submission.
		log.Warn("receipt.save_failed", "err", err)
		return receipt, "", nil
	}
	receipt.ID = id
	return receipt, id, nil
}
