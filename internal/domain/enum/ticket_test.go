package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusTransitions(t *testing.T) {
	tests := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{TicketStatusSent, TicketStatusPreparing, true},
		{TicketStatusSent, TicketStatusReady, true},
		{TicketStatusSent, TicketStatusCancelled, true},
		{TicketStatusPreparing, TicketStatusReady, true},
		{TicketStatusPreparing, TicketStatusCancelled, true},
		{TicketStatusPreparing, TicketStatusSent, false},
		{TicketStatusReady, TicketStatusCancelled, false},
		{TicketStatusReady, TicketStatusPreparing, false},
		{TicketStatusCancelled, TicketStatusSent, false},
		{TicketStatusCancelled, TicketStatusReady, false},
	}
	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestParseTicketType(t *testing.T) {
	kot, err := ParseTicketType("KOT")
	assert.NoError(t, err)
	assert.Equal(t, TicketTypeKOT, kot)

	bot, err := ParseTicketType("BOT")
	assert.NoError(t, err)
	assert.Equal(t, TicketTypeBOT, bot)

	_, err = ParseTicketType("SOT")
	assert.Error(t, err)
}

func TestTicketTypePrefix(t *testing.T) {
	assert.Equal(t, "KOT", TicketTypeKOT.Prefix())
	assert.Equal(t, "BOT", TicketTypeBOT.Prefix())
	assert.False(t, TicketType(7).Valid())
}
