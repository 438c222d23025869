package memcache_fx

import (
	"go.uber.org/fx"

	mem "retreatly/pkg/memcache"
)

var Module = fx.Provide(provideConversationStore)

func provideConversationStore() mem.ConversationStore {
	return mem.NewConversationSessions()
}
