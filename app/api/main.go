package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/database/mongoclient"
	"github.com/nextswap/auction-api/base/database/redisclient"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/base/metrics"
	bValidator "github.com/nextswap/auction-api/base/validator"
	"github.com/nextswap/auction-api/domain"
	mmiddleware "github.com/nextswap/auction-api/middleware"
	"github.com/nextswap/auction-api/service/chain"
	"github.com/nextswap/auction-api/service/chain/contract"
	chainlink_service "github.com/nextswap/auction-api/service/chainlink"
	"github.com/nextswap/auction-api/service/lock"
	"github.com/nextswap/auction-api/service/notifier"
	"github.com/nextswap/auction-api/service/query"
	"github.com/nextswap/auction-api/service/redis"
	"github.com/nextswap/auction-api/service/vault"
	auction_delivery "github.com/nextswap/auction-api/stores/auction/delivery/http"
	auction_repository "github.com/nextswap/auction-api/stores/auction/repository"
	auction_usecase "github.com/nextswap/auction-api/stores/auction/usecase"
	auth_delivery "github.com/nextswap/auction-api/stores/auth/delivery/http"
	auth_middleware "github.com/nextswap/auction-api/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/nextswap/auction-api/stores/auth/usecase"
	balance_delivery "github.com/nextswap/auction-api/stores/balance/delivery/http"
	balance_repository "github.com/nextswap/auction-api/stores/balance/repository"
	balance_usecase "github.com/nextswap/auction-api/stores/balance/usecase"
	hc_delivery "github.com/nextswap/auction-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/nextswap/auction-api/stores/healthcheck/repository"
	hc_usecase "github.com/nextswap/auction-api/stores/healthcheck/usecase"
	pricefeed_usecase "github.com/nextswap/auction-api/stores/pricefeed/usecase"
	settings_delivery "github.com/nextswap/auction-api/stores/settings/delivery/http"
	settings_repository "github.com/nextswap/auction-api/stores/settings/repository"
	settings_usecase "github.com/nextswap/auction-api/stores/settings/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	archiveRpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
		archiveRpcUrl := networks.GetString(fmt.Sprintf("%s.archiveRpcUrl", k))
		archiveRpcs[chainId] = archiveRpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
		SignerKey:      viper.GetString("vault.signerKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	chainlinkService := chainlink_service.New(chainService)
	vaultService := vault.New(chainService, erc721Service)
	lockService := lock.New(redisCache)

	var notifierService notifier.Service
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		notifierService, err = notifier.New(&notifier.Config{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
		})
		if err != nil {
			context.WithField("err", err).Warn("discord notifier disabled")
		} else {
			defer notifierService.Close()
		}
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	auctionRepo := auction_repository.New(q)
	eventRepo := auction_repository.NewEventRepo(q)
	balanceRepo := balance_repository.New(q)
	settingsRepo := settings_repository.New(q)

	hc := hc_usecase.New(hcRepo)

	pricefeedCfg := pricefeed_usecase.DefaultConfig()
	if d := viper.GetDuration("pricefeed.maxStaleness"); d > 0 {
		pricefeedCfg.MaxStaleness = d
	}
	if s := viper.GetString("pricefeed.minPrice"); s != "" {
		pricefeedCfg.MinPrice = decimal.RequireFromString(s)
	}
	if s := viper.GetString("pricefeed.maxPrice"); s != "" {
		pricefeedCfg.MaxPrice = decimal.RequireFromString(s)
	}
	pricefeed := pricefeed_usecase.New(pricefeedCfg, chainlinkService, settingsRepo)

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), redisCache)
	auctionUC := auction_usecase.New(auctionRepo, eventRepo, balanceRepo, settingsRepo, pricefeed, q, lockService, vaultService, notifierService)
	balanceUC := balance_usecase.New(balanceRepo, q, vaultService)
	settingsUC := settings_usecase.New(settingsRepo, eventRepo, q)

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, auctionUC, authMiddleware)
	balance_delivery.New(e, balanceUC, authMiddleware)
	settings_delivery.New(e, settingsUC, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
