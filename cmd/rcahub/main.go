package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/pavelnovac/rcahub/internal/api"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
	"github.com/pavelnovac/rcahub/internal/pkg/store/xpgx"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
)

func initConfig() error {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperDebug, false)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/rcahub")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func loadTaxonomy(ctx context.Context) *taxonomy.Taxonomy {
	path := viper.GetString(constants.ViperTaxonomyPath)
	if path == "" {
		return taxonomy.Default()
	}

	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	return tax
}

func main() {
	ctx := context.Background()

	if err := initConfig(); err != nil {
		panic(err)
	}

	if err := logger.Init(viper.GetBool(constants.ViperDebug)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	pool, err := xpgx.Dial(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	apiService, err := api.NewAPIService(store.NewStore(pool), loadTaxonomy(ctx))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go apiService.Serve(viper.GetString(constants.ViperListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
