package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/config"
	"github.com/JeSappelleWilly/dokalbot/internal/adapter/http/handlers"
	"github.com/JeSappelleWilly/dokalbot/internal/adapter/http/middlewares"
	"github.com/JeSappelleWilly/dokalbot/internal/adapter/persistence/repository"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/catalog"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/database"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/eventbus"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/messaging"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/ocr"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/payments"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

var router = gin.Default()

// Run wires the application together and starts the server.
func Run(cfg config.Config) {
	setMiddlewares()
	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg config.Config) {
	stateRepo, cartRepo, orderRepo, dedupRepo := buildStores(cfg)

	cat := catalog.NewStaticCatalog()
	messenger := messaging.NewWhatsAppMessenger(
		cfg.WhatsAppToken, cfg.WhatsAppPhoneNumberID, cfg.WhatsAppAPIBaseURL, cfg.ExternalCallTimeout)
	extractor := ocr.NewOmniExtractor(
		cfg.OmniAPIKey, cfg.OmniTemplateID, cfg.OmniBaseURL, cfg.ExternalCallTimeout)

	// Payment gateway and event publisher are optional: without them orders
	// still flow, credit-card charges decline and events are only logged.
	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	var publisher interfaces.IOrderEventPublisher
	if cfg.RabbitMQURL != "" {
		rmq, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq publisher not configured")
		} else {
			publisher = rmq
		}
	}

	states := usecase.NewConversationStateUseCase(stateRepo, cfg.StateTTL)
	cart := usecase.NewCartUseCase(cartRepo, cat, cfg.TaxRate, cfg.CartTTL)
	guard := usecase.NewDuplicateGuard(dedupRepo, cfg.DedupTTL)
	menu := usecase.NewMenuUseCase(cat, messenger)
	checkout := usecase.NewCheckoutUseCase(
		states, cart, orderRepo, messenger, gateway, extractor, publisher, cfg.OrderTTL)
	eventRouter := usecase.NewRouterUseCase(guard, states, cart, checkout, menu, cat, messenger)

	webhookHandler := handlers.NewWebhookHandler(eventRouter, cfg.WhatsAppVerifyToken)
	orderHandler := handlers.NewOrderHandler(checkout)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addWebhookRoutes(v1, webhookHandler)
	addOrderRoutes(v1, orderHandler)
}

// buildStores selects the persistence backend. The memory backend keeps
// local runs free of AWS dependencies.
func buildStores(cfg config.Config) (
	interfaces.IConversationStateRepository,
	interfaces.ICartRepository,
	interfaces.IOrderRepository,
	interfaces.IDedupRepository,
) {
	if cfg.StoreBackend == "memory" {
		log.Info().Msg("using in-memory store backend")
		mem := repository.NewMemoryStore()
		return mem, mem.CartStore(), mem.OrderStore(), mem
	}

	ddb := database.ConnectDynamoDB()
	return repository.NewConversationStateDynamoRepository(ddb),
		repository.NewCartDynamoRepository(ddb),
		repository.NewOrderDynamoRepository(ddb),
		repository.NewDedupDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middlewares.PrometheusMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
