package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"lucidlog-backend/application/analysis"
	"lucidlog-backend/application/commands"
	commandbus "lucidlog-backend/application/commands/bus"
	commands_handlers "lucidlog-backend/application/commands/handlers"
	"lucidlog-backend/application/ports"
	"lucidlog-backend/application/queries"
	querybus "lucidlog-backend/application/queries/bus"
	queries_handlers "lucidlog-backend/application/queries/handlers"
	"lucidlog-backend/infrastructure/config"
	"lucidlog-backend/infrastructure/messaging/eventbridge"
	"lucidlog-backend/infrastructure/persistence/dynamodb"
	"lucidlog-backend/infrastructure/suggestions"
	"lucidlog-backend/pkg/observability"
)

// entryListCacheTTL is how long entry list queries stay cached, in seconds.
// Pattern results are cached through the repository instead, so only the
// raw entry reads go through the query cache.
const entryListCacheTTL = 60

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	EntryRepo   ports.EntryReader
	PatternRepo ports.PatternRepository
	EventBus    ports.EventBus
	Engine      *analysis.Engine
	CommandBus  *commandbus.CommandBus
	QueryBus    *querybus.QueryBus
	Cache       ports.Cache
	Metrics     *observability.Metrics
	Tracer      *observability.Tracer
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideEntryRepository creates the entry snapshot reader
func ProvideEntryRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.EntryReader {
	return dynamodb.NewEntryRepository(client, cfg.DynamoDBTable, logger)
}

// ProvidePatternRepository creates the pattern store
func ProvidePatternRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PatternRepository {
	return dynamodb.NewPatternRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventBus creates an event bus
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	namespace := fmt.Sprintf("LucidLog/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client)
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("lucidlog-backend")
}

// ProvideSuggestionService creates the generative suggestion collaborator.
// Returns nil when suggestions are disabled; the engine treats a nil
// service as "rule-based analysis only".
func ProvideSuggestionService(cfg *config.Config, logger *zap.Logger) ports.SuggestionService {
	if !cfg.SuggestionsEnabled || cfg.OpenAIAPIKey == "" {
		return nil
	}
	return suggestions.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.SuggestionModel, logger)
}

// ProvideAnalysisOptions builds the engine thresholds from config
func ProvideAnalysisOptions(cfg *config.Config) analysis.Options {
	opts := analysis.DefaultOptions()
	if cfg.SuggestionTimeoutMilli > 0 {
		opts.SuggestionTimeout = time.Duration(cfg.SuggestionTimeoutMilli) * time.Millisecond
	}
	return opts
}

// ProvideEngine creates the pattern analysis engine
func ProvideEngine(
	entryRepo ports.EntryReader,
	patternRepo ports.PatternRepository,
	suggester ports.SuggestionService,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
	opts analysis.Options,
) *analysis.Engine {
	return analysis.NewEngine(entryRepo, patternRepo, suggester, eventBus, metrics, tracer, logger, opts)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	patternRepo ports.PatternRepository,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	commandBus := commandbus.NewCommandBus()

	deactivateHandler := commands_handlers.NewDeactivatePatternHandler(patternRepo, logger)
	if err := commandBus.Register(commands.DeactivatePatternCommand{}, deactivateHandler); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers. Entry
// listing goes through the caching middleware; pattern queries do not,
// since the engine already serves repeat requests from persisted patterns.
func ProvideQueryBus(
	engine *analysis.Engine,
	entryRepo ports.EntryReader,
	cache ports.Cache,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	getPatternsHandler := queries_handlers.NewGetPatternsHandler(engine, logger)
	if err := queryBus.Register(queries.GetPatternsQuery{}, getPatternsHandler); err != nil {
		return nil, err
	}

	getInsightsHandler := queries_handlers.NewGetPatternInsightsHandler(engine, logger)
	if err := queryBus.Register(queries.GetPatternInsightsQuery{}, getInsightsHandler); err != nil {
		return nil, err
	}

	caching := querybus.NewCachingMiddleware(cache, entryListCacheTTL)
	listEntriesHandler := queries_handlers.NewListEntriesHandler(entryRepo, logger)
	if err := queryBus.Register(queries.ListEntriesQuery{}, caching.Wrap(listEntriesHandler)); err != nil {
		return nil, err
	}

	return queryBus, nil
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() ports.Cache {
	return NewInMemoryCache()
}
