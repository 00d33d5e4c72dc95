package deps

import (
	"context"
	"sync"
	"tabnews/internal/config"
	"tabnews/internal/core/domain/activation"
	dl "tabnews/internal/core/domain/logging"
	drl "tabnews/internal/core/domain/rate_limiter"
	duow "tabnews/internal/core/domain/unit_of_work"
	"tabnews/internal/core/domain/user"
	dbactivation "tabnews/internal/db/activation"
	uow "tabnews/internal/db/unit_of_work"
	dbuser "tabnews/internal/db/user"
	"tabnews/internal/endpoints"
	"tabnews/internal/implementations/email"
	"tabnews/internal/implementations/logging"
	ratelimiter "tabnews/internal/implementations/rate_limiter"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UnitOfWork      duow.UnitOfWork
	UserRepository  user.Repository
	TokenRepository activation.TokenRepository

	RateLimiter drl.RateLimiter

	Endpoints             endpoints.Builder
	ActivationEmailSender activation.EmailSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.TokenRepository = dbactivation.NewPgxTokenRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.Endpoints = endpoints.New(deps.Config)
	deps.ActivationEmailSender = email.NewActivationEmailSender(
		deps.AwsConfig,
		deps.Config.EmailSenderName,
		deps.Config.EmailSenderAddress,
		deps.Endpoints,
	)

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
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
		awsConfig.WithRegion(deps.Config.AWSRegion),
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
