package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"breezy.app/internal/adapters/database"
	"breezy.app/internal/adapters/infrastructure"
	"breezy.app/internal/app"
	"breezy.app/internal/config"
	"breezy.app/internal/core/city"
	"breezy.app/internal/core/dashboard"
	"breezy.app/internal/core/weather"
	"breezy.app/pkg/logger"
)

// CLI is the breezy command tree
type CLI struct {
	LogLevel string `help:"Log level for diagnostics on stderr." default:"warn" enum:"debug,info,warn,error"`

	Weather WeatherCmd `cmd:"" help:"Print aggregated weather for one or more cities as JSON."`
	Cities  CitiesCmd  `cmd:"" help:"Manage the tracked cities."`
}

type runtime struct {
	ctx      context.Context
	out      io.Writer
	logLevel string
}

func (r *runtime) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewWithWriter(os.Stderr, r.logLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log.Logger, nil
}

func (r *runtime) print(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WeatherCmd fetches the views for the given cities without tracking them
type WeatherCmd struct {
	Cities []string `arg:"" name:"city" help:"City names, e.g. London \"New York\"."`
	Units  string   `help:"Unit system." default:"metric" enum:"metric,imperial,standard"`
}

func (c *WeatherCmd) Run(rt *runtime) error {
	cfg, log, err := rt.load()
	if err != nil {
		return err
	}

	deps, err := app.NewDependencyContainer(rt.ctx, cfg, log, app.DependencyOptions{})
	if err != nil {
		return err
	}
	defer deps.Close()

	ports := deps.ApplicationPorts()
	cities, err := city.NewUseCase(city.UseCaseDependencies{Store: ports.CityStore, Logger: ports.Logger})
	if err != nil {
		return err
	}
	board, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Client:  ports.WeatherClient,
		Cities:  cities,
		Config:  ports.ConfigProvider,
		Logger:  ports.Logger,
		Metrics: ports.Metrics,
	})
	if err != nil {
		return err
	}

	views := make([]weather.CityWeatherView, len(c.Cities))
	g, ctx := errgroup.WithContext(rt.ctx)
	g.SetLimit(cfg.Refresh.Concurrency)
	for i, name := range c.Cities {
		g.Go(func() error {
			view, err := board.Preview(ctx, name, c.Units)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return rt.print(views)
}

// CitiesCmd groups the city list subcommands
type CitiesCmd struct {
	List   CitiesListCmd   `cmd:"" help:"List tracked cities in display order."`
	Add    CitiesAddCmd    `cmd:"" help:"Track a city."`
	Remove CitiesRemoveCmd `cmd:"" help:"Stop tracking a city."`
}

func openCities(rt *runtime) (*city.UseCase, func(), error) {
	cfg, log, err := rt.load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = database.Close(db) }

	cities, err := city.NewUseCase(city.UseCaseDependencies{
		Store:  database.NewCityRepositoryAdapter(db),
		Logger: infrastructure.NewSlogLoggerAdapter(log),
	})
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	if err := cities.Load(rt.ctx); err != nil {
		closeDB()
		return nil, nil, err
	}
	return cities, closeDB, nil
}

type CitiesListCmd struct{}

func (c *CitiesListCmd) Run(rt *runtime) error {
	cities, done, err := openCities(rt)
	if err != nil {
		return err
	}
	defer done()

	return rt.print(map[string][]string{"cities": cities.List()})
}

type CitiesAddCmd struct {
	City string `arg:"" help:"City name."`
}

func (c *CitiesAddCmd) Run(rt *runtime) error {
	cities, done, err := openCities(rt)
	if err != nil {
		return err
	}
	defer done()

	stored, err := cities.Add(rt.ctx, c.City)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rt.out, "added %s\n", stored)
	return err
}

type CitiesRemoveCmd struct {
	City string `arg:"" help:"City name."`
}

func (c *CitiesRemoveCmd) Run(rt *runtime) error {
	cities, done, err := openCities(rt)
	if err != nil {
		return err
	}
	defer done()

	stored, err := cities.Remove(rt.ctx, c.City)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rt.out, "removed %s\n", stored)
	return err
}
