// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as storage, HTTP communication, the model API and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory key-value store using sync.Map
// - cache/redis: Redis-backed key-value store
// - cache/sqlite: SQLite-backed key-value store with expiry sweeping
// - http/standard: Standard library HTTP client with retry logic
// - llm/anthropic: Summarizer and Explainer over the Anthropic Messages API
// - fetch/colly: Page fetcher used when only a URL is provided
// - settings: Settings and API key storage on top of a key-value store
// - logger/logrus, logger/zap: Structured loggers, with file rotation via lumberjack
//
// # Key-Value Stores
//
// Every store returns errors.ErrKeyNotFound for absent or expired keys, and
// treats a TTL of 0 as durable:
//
//	store := memory.NewStore()
//	err := store.Set(ctx, "savedPoints", data, 0)
//	data, err := store.Get(ctx, "savedPoints")
//
//	store, err := redis.NewStore(cfg.Cache.Redis)
//	store, err := sqlite.NewStore("summarizer.db")
//
// # Model Client
//
//	httpClient := standard.NewClient(60 * time.Second)
//	llm := anthropic.NewClient(httpClient, settingsService, logger, anthropic.Config{})
//	reply, err := llm.Summarize(ctx, domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: text})
//
// # Logger
//
// The logger factory picks the backend from configuration:
//
//	logger, closeLog := logger.New(cfg.Log)
//	defer closeLog()
//	logger.Info("Panel opened", map[string]interface{}{
//	    "panel_id": id,
//	})
package infrastructure
