package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/chimera/app/container"
	"github.com/x-xyz/chimera/base/config"
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	bValidator "github.com/x-xyz/chimera/base/validator"
	mmiddleware "github.com/x-xyz/chimera/middleware"
	ens_delivery "github.com/x-xyz/chimera/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/chimera/stores/healthcheck/delivery/http"
	home_delivery "github.com/x-xyz/chimera/stores/home/delivery/http"
	listing_delivery "github.com/x-xyz/chimera/stores/listing/delivery/http"
	nftpage_delivery "github.com/x-xyz/chimera/stores/nftpage/delivery/http"
	profile_delivery "github.com/x-xyz/chimera/stores/profile/delivery/http"
	session_delivery "github.com/x-xyz/chimera/stores/session/delivery/http"
)

var configPath = pflag.String("config", config.DefaultPath, "path of the yaml config")

func init() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		panic(err)
	}
	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	context := ctx.Background()

	c, err := container.New(context)
	if err != nil {
		context.WithField("err", err).Fatal("container.New failed")
	}
	defer c.Close()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware(viper.GetString("server.allowOrigin"))
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(c.Validate)

	// a returning user sees their wallet without a prompt
	if _, err := c.Session.CheckExistingConnection(context); err != nil {
		context.WithField("err", err).Warn("CheckExistingConnection failed")
	}

	hc_delivery.New(e, c.HealthCheck)
	session_delivery.New(e, c.Session)
	home_delivery.New(e, c.Home)
	listing_delivery.New(e, c.Form)
	nftpage_delivery.New(e, c.NftPage)
	profile_delivery.New(e, c.Profile)
	if c.ENS != nil {
		ens_delivery.New(e, c.ENS)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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
