package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"plantlog/config"
	"plantlog/database"
	"plantlog/router"

	// Auth
	authCtrlImp "plantlog/pkg/auth/controllerImp"
	authRepoImp "plantlog/pkg/auth/repositoryImp"
	authSvcImp "plantlog/pkg/auth/serviceImp"

	// Parcel
	parcelCtrlImp "plantlog/pkg/parcel/controllerImp"
	parcelRepoImp "plantlog/pkg/parcel/repositoryImp"
	parcelSvcImp "plantlog/pkg/parcel/serviceImp"

	// Activity
	actCtrlImp "plantlog/pkg/activity/controllerImp"
	actRepoImp "plantlog/pkg/activity/repositoryImp"

	// Reminder
	remCtrlImp "plantlog/pkg/reminder/controllerImp"
	remRepoImp "plantlog/pkg/reminder/repositoryImp"

	// Analytics + export
	statsCtrlImp "plantlog/pkg/analytics/controllerImp"
	exportCtrlImp "plantlog/pkg/export/controllerImp"

	// Health
	healthCtrlImp "plantlog/pkg/health/controllerImp"
)

func main() {
	log := zerolog.New(os.Stdout).With().Str("service", "plantlog").Timestamp().Logger()

	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 4) Repos / services
	accountRepo := authRepoImp.New(db)
	authSvc := authSvcImp.New(accountRepo)
	pRepo := parcelRepoImp.New(db)
	pSvc := parcelSvcImp.New(pRepo)
	aRepo := actRepoImp.New(db)
	rRepo := remRepoImp.New(db)

	// 5) Controllers
	authCtrl := authCtrlImp.New(authSvc, cfg.JWTSecret)
	pCtrl := parcelCtrlImp.New(pSvc)
	aCtrl := actCtrlImp.New(aRepo, pSvc)
	rCtrl := remCtrlImp.New(rRepo, pSvc)
	sCtrl := statsCtrlImp.New(pSvc, aRepo, rRepo)
	xCtrl := exportCtrlImp.New(pSvc, aRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, cfg.JWTSecret, authCtrl, pCtrl, aCtrl, rCtrl, sCtrl, xCtrl, hCtrl)

	// 7) Start
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
