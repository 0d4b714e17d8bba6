package main

import (
	"log/slog"
	"os"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/roman"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/router"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/server"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/sorter"
	pkgserver "github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Royal Names Sorter API is running")
	})

	converter := roman.NewConverter()
	royalRouter := router.NewRoyalRouter(s.Echo, converter, sorter.New(converter))
	royalRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
