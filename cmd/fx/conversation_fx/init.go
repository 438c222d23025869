package conversation_fx

import (
	"go.uber.org/fx"

	"retreatly/internal/api/controllers"
	"retreatly/internal/services"
	mem "retreatly/pkg/memcache"
	"retreatly/pkg/utils"
)

var Module = fx.Provide(
	provideConversationService, provideChatController)

func provideConversationService(
	store mem.ConversationStore,
	ai utils.AIClientInterface,
	prefSvc services.PreferenceService,
) services.ConversationService {
	return services.NewConversationService(store, ai, prefSvc)
}

func provideChatController(conversationService services.ConversationService) *controllers.ChatController {
	return controllers.NewChatController(conversationService)
}
