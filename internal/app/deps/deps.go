package deps

import (
	"context"
	"fmt"
	"net/url"
	"swapcloset/internal/config"
	"swapcloset/internal/core/domain/account"
	"swapcloset/internal/core/domain/catalog"
	dl "swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/domain/product"
	drl "swapcloset/internal/core/domain/rate_limiter"
	"swapcloset/internal/core/domain/rating"
	duow "swapcloset/internal/core/domain/unit_of_work"
	dbaccount "swapcloset/internal/db/account"
	dbcatalog "swapcloset/internal/db/catalog"
	dbproduct "swapcloset/internal/db/product"
	dbrating "swapcloset/internal/db/rating"
	uow "swapcloset/internal/db/unit_of_work"
	"swapcloset/internal/implementations/email"
	"swapcloset/internal/implementations/logging"
	passwordhasher "swapcloset/internal/implementations/password_hasher"
	ratelimiter "swapcloset/internal/implementations/rate_limiter"
	"swapcloset/internal/implementations/session"
	tokengenerator "swapcloset/internal/implementations/token_generator"
	"swapcloset/internal/rabbitmq"
	resetemail "swapcloset/internal/rabbitmq/publishers/reset_email"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork           duow.UnitOfWork
	AccountRepository    account.AccountRepository
	SessionRepository    account.SessionRepository
	ResetTokenRepository account.ResetTokenRepository
	CategoryRepository   catalog.CategoryRepository
	ProductRepository    product.Repository
	FavoriteRepository   product.FavoriteRepository
	RatingRepository     rating.Repository

	RateLimiter drl.RateLimiter

	PasswordHasher            account.PasswordHasher
	SessionTokenGenerator     account.SessionTokenGenerator
	ResetTokenSecretGenerator account.ResetTokenSecretGenerator
	RememberTokenGenerator    account.RememberTokenGenerator

	// ResetTokenSender enqueues reset emails; EmailSender delivers them.
	// The HTTP binary uses the former, the notifier the latter.
	ResetTokenSender account.ResetTokenSender
	EmailSender      *email.ResetTokenSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbaccount.NewPgxSessionRepository(deps.DB)
	deps.ResetTokenRepository = dbaccount.NewPgxResetTokenRepository(deps.DB)
	deps.CategoryRepository = dbcatalog.NewPgxRepository(deps.DB)
	deps.ProductRepository = dbproduct.NewPgxRepository(deps.DB)
	deps.FavoriteRepository = dbproduct.NewPgxFavoriteRepository(deps.DB)
	deps.RatingRepository = dbrating.NewPgxRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.SessionTokenGenerator = session.NewUUID()
	tokenGenerator := tokengenerator.NewGenerator()
	deps.ResetTokenSecretGenerator = tokenGenerator
	deps.RememberTokenGenerator = tokenGenerator

	deps.EmailSender = email.NewResetTokenSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.passwordResetBaseURL(),
	)

	closeResetEmailPublisher := deps.initRabbitmqResetEmailPublisher()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeResetEmailPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKeyID,
				deps.Config.AwsSecretAccessKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqResetEmailPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	exchange := deps.Config.RabbitmqResetEmailExchange
	queue := deps.Config.RabbitmqResetEmailQueue
	routingKey := deps.Config.RabbitmqResetEmailRoutingKey

	if exchange != "" {
		if err := rabbitmqChannel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
			deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
			panic(err)
		}
	}
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if exchange != "" {
		if err := rabbitmqChannel.QueueBind(queue, routingKey, exchange, false, nil); err != nil {
			deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
			panic(err)
		}
	}

	deps.ResetTokenSender = resetemail.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		exchange,
		routingKey,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reset email publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reset email publisher shut down.")
	}
}

func (deps *Deps) passwordResetBaseURL() url.URL {
	baseURL, err := url.Parse(deps.Config.PasswordResetBaseURL)
	if err != nil {
		panic(fmt.Sprintf("invalid PASSWORD_RESET_BASE_URL: %v", err))
	}
	return *baseURL
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDSN,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
