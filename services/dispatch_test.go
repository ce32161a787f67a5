package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-service/models"
)

// captureNotifier 记录投递的消息
type captureNotifier struct {
	shops    []models.Shop
	messages []string
	fail     error
}

func (n *captureNotifier) Notify(shop models.Shop, text string) error {
	if n.fail != nil {
		return n.fail
	}
	n.shops = append(n.shops, shop)
	n.messages = append(n.messages, text)
	return nil
}

func TestRenderTemplate_AllTokens(t *testing.T) {
	ticket := models.Ticket{
		ID:    "TKT-042",
		Match: "Real Madrid vs Barcelona",
		Odds:  2.35,
		Stake: 100,
	}

	got := RenderTemplate("Match: {match} | Odds: {odds} | Stake: {stake} | Win: {potential_win} | ID: {ticket_id}", ticket)
	assert.Equal(t, "Match: Real Madrid vs Barcelona | Odds: 2.35 | Stake: 100 | Win: 235.00 | ID: TKT-042", got)
}

func TestRenderTemplate_UnknownTokenLeftIntact(t *testing.T) {
	got := RenderTemplate("{match} {unknown}", models.Ticket{Match: "A vs B"})
	assert.Equal(t, "A vs B {unknown}", got)
}

func TestDispatch_CreatesPendingTicket(t *testing.T) {
	repo := NewSeedRepository()
	notifier := &captureNotifier{}
	svc := NewDispatchService(repo, notifier, nil, zerolog.Nop())

	result, err := svc.Dispatch(context.Background(), DispatchRequest{
		MatchID:     "1",
		BookmakerID: "eurobet",
		ShopID:      "1",
	})
	require.NoError(t, err)

	// 种子有 15 张票，新票顺延编号
	assert.Equal(t, "TKT-016", result.Ticket.ID)
	assert.Equal(t, models.TicketPending, result.Ticket.Status)
	assert.Equal(t, "Real Madrid vs Barcelona", result.Ticket.Match)
	assert.Equal(t, "Eurobet", result.Ticket.Bookmaker)
	assert.Equal(t, 2.35, result.Ticket.Odds)
	assert.Equal(t, 100.0, result.Ticket.Stake)
	assert.Nil(t, result.Ticket.Profit)
	assert.Nil(t, result.Ticket.Result)

	// 追加进了历史
	tickets := repo.Tickets()
	require.Len(t, tickets, 16)
	assert.Equal(t, "TKT-016", tickets[15].ID)

	// 默认模板（第一个 telegram 模板）渲染后投递到店铺
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Shop Milano Centro", notifier.shops[0].Name)
	assert.Contains(t, notifier.messages[0], "Real Madrid vs Barcelona")
	assert.Contains(t, notifier.messages[0], "TKT-016")
	assert.Contains(t, notifier.messages[0], "Potential Win: €235.00")
	assert.NotContains(t, notifier.messages[0], "{match}")
}

func TestDispatch_OverridesStakeAndOdds(t *testing.T) {
	repo := NewSeedRepository()
	svc := NewDispatchService(repo, &captureNotifier{}, nil, zerolog.Nop())

	result, err := svc.Dispatch(context.Background(), DispatchRequest{
		MatchID:     "2",
		BookmakerID: "snai",
		ShopID:      "2",
		Stake:       250,
		Odds:        2.41, // 刷新后的报价快照
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, result.Ticket.Stake)
	assert.Equal(t, 2.41, result.Ticket.Odds)
}

func TestDispatch_UnavailableBookmakerRejected(t *testing.T) {
	svc := NewDispatchService(NewSeedRepository(), &captureNotifier{}, nil, zerolog.Nop())

	// goldbet 种子数据里 available=false
	_, err := svc.Dispatch(context.Background(), DispatchRequest{
		MatchID:     "1",
		BookmakerID: "goldbet",
		ShopID:      "1",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDispatch_UnknownReferences(t *testing.T) {
	svc := NewDispatchService(NewSeedRepository(), &captureNotifier{}, nil, zerolog.Nop())

	_, err := svc.Dispatch(context.Background(), DispatchRequest{MatchID: "999", BookmakerID: "eurobet", ShopID: "1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Dispatch(context.Background(), DispatchRequest{MatchID: "1", BookmakerID: "nope", ShopID: "1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Dispatch(context.Background(), DispatchRequest{MatchID: "1", BookmakerID: "eurobet", ShopID: "999"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDispatch_ExplicitTemplate(t *testing.T) {
	repo := NewSeedRepository()
	notifier := &captureNotifier{}
	svc := NewDispatchService(repo, notifier, nil, zerolog.Nop())

	_, err := svc.Dispatch(context.Background(), DispatchRequest{
		MatchID:     "1",
		BookmakerID: "eurobet",
		ShopID:      "1",
		TemplateID:  "2",
	})
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "New betting ticket:")
}
