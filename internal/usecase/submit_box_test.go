package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/byobox/internal/domain"
)

func completeGiftSession(t *testing.T) domain.Session {
	t.Helper()
	s, err := ApplySelections(domain.NewSession(giftBox()), []Selection{
		{CategoryID: "treats", ProductID: "fudge", Quantity: 2},
		{CategoryID: "card", ProductID: "thanks"},
		{CategoryID: "wrap", ProductID: "ribbon"},
	})
	require.NoError(t, err)
	return s
}

func fixedSubmit(cs *recordingSubmitter, opts ...SubmitOption) *SubmitBox {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	base := []SubmitOption{
		WithClock(func() time.Time { return at }),
		WithBundleIDs(func() string { return "bundle-1" }),
		WithSource("gifts", "http://shop.test/cart/add.js"),
	}
	return NewSubmitBox(cs, append(base, opts...)...)
}

func TestSubmitBox_Success(t *testing.T) {
	cs := &recordingSubmitter{resp: domain.CartResponse{Status: http.StatusOK}}
	store := &fakeStore{}

	r, id, err := fixedSubmit(cs, WithReceiptStore(store)).Execute(context.Background(), completeGiftSession(t), domain.DefaultBundleSettings())
	require.NoError(t, err)

	require.Len(t, cs.reqs, 1, "exactly one request per submission")
	items := cs.reqs[0].Items
	// anchor + fudge + card; ribbon has no variant id
	require.Len(t, items, 3)
	assert.Equal(t, "42153738141780", items[0].ID)
	assert.Equal(t, "bundle-1", items[0].Properties[domain.PropBundleID])
	assert.Equal(t, "2026-03-04T05:06:07Z", items[0].Properties[domain.PropCreatedAt])
	assert.Equal(t, "501", items[1].ID)
	assert.Equal(t, 2, items[1].Quantity)

	assert.Equal(t, "receipt-1", id)
	assert.Equal(t, id, r.ID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "gifts", store.saved[0].CatalogName)
	assert.Equal(t, "17.75", store.saved[0].Quote.Total.StringFixed(2))
	require.Len(t, r.Skipped, 1)
	assert.Equal(t, "ribbon", r.Skipped[0].ProductID)
}

func TestSubmitBox_IncompleteSendsNothing(t *testing.T) {
	cs := &recordingSubmitter{}
	s, err := ApplySelections(domain.NewSession(giftBox()), []Selection{{CategoryID: "treats", ProductID: "fudge"}})
	require.NoError(t, err)

	_, _, err = fixedSubmit(cs).Execute(context.Background(), s, domain.DefaultBundleSettings())
	assert.True(t, errors.Is(err, domain.ErrIncomplete))
	assert.Equal(t, "Please complete all required categories", err.Error())
	assert.Empty(t, cs.reqs)
}

func TestSubmitBox_FailureKeepsNothing(t *testing.T) {
	cs := &recordingSubmitter{err: &domain.SubmitError{
		Kind:    domain.SubmitErrorHTTP,
		Status:  http.StatusUnprocessableEntity,
		Message: "Sold out",
	}}
	store := &fakeStore{}
	s := completeGiftSession(t)

	_, id, err := fixedSubmit(cs, WithReceiptStore(store)).Execute(context.Background(), s, domain.DefaultBundleSettings())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindSubmission))

	var se *domain.SubmitError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Sold out", se.Message)

	assert.Empty(t, id)
	assert.Empty(t, store.saved)
	// the caller's session is a value and still holds the selection
	assert.Equal(t, 2, s.Quantity("treats", "fudge"))
	assert.True(t, s.Complete())
}

func TestSubmitBox_ReceiptFailureIsNotSubmissionFailure(t *testing.T) {
	cs := &recordingSubmitter{resp: domain.CartResponse{Status: http.StatusOK}}
	store := &fakeStore{err: errors.New("disk full")}

	r, id, err := fixedSubmit(cs, WithReceiptStore(store)).Execute(context.Background(), completeGiftSession(t), domain.DefaultBundleSettings())
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, "bundle-1", r.BundleID)
}

func TestSubmitBox_EmptyAnchorIsConfigError(t *testing.T) {
	cs := &recordingSubmitter{}
	settings := domain.DefaultBundleSettings()
	settings.AnchorVariantID = ""

	_, _, err := fixedSubmit(cs).Execute(context.Background(), completeGiftSession(t), settings)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Empty(t, cs.reqs)
}
