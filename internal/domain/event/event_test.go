package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/alanyang/skillswap/internal/domain/event"
)

func TestChannelFor(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want Channel
	}{
		{name: "online is agent", in: TypeAgentOnline, want: ChannelAgent},
		{name: "offline is agent", in: TypeAgentOffline, want: ChannelAgent},
		{name: "published is skill", in: TypeSkillPublished, want: ChannelSkill},
		{name: "rated is skill", in: TypeSkillRated, want: ChannelSkill},
		{name: "shared is exchange", in: TypeSkillShared, want: ChannelExchange},
		{name: "request opened is exchange", in: TypeRequestOpened, want: ChannelExchange},
		{name: "request fulfilled is exchange", in: TypeRequestFulfilled, want: ChannelExchange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelFor(tt.in))
		})
	}
}
