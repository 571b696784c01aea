package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"summoner-rating/internal/config"
	"summoner-rating/internal/domain"
	fxmodules "summoner-rating/internal/fx"
	"summoner-rating/internal/rating"

	"go.uber.org/dig"
	"go.uber.org/fx"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [summoner name]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(context.Background(), strings.Join(flag.Args(), " "), os.Stdout))
}

func run(ctx context.Context, name string, out io.Writer) int {
	var (
		cfg   *config.Config
		rater *rating.Rater
	)

	app := fx.New(
		fxmodules.RatingModule,
		fx.NopLogger,
		fx.Populate(&cfg, &rater),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", dig.RootCause(err))
		return 1
	}

	if strings.TrimSpace(name) == "" {
		name = cfg.SummonerName
	}

	result, err := rater.RatePlayer(ctx, name)
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", reportMessage(err))
		return 1
	}

	fmt.Fprintln(out, result.String())
	return 0
}

var notFoundMessages = map[rating.Stage]string{
	rating.StageSummoner:     "Summoner could not be found.",
	rating.StageLeague:       "League data could not be found.",
	rating.StageMatchHistory: "Match history could not be found.",
	rating.StageMatch:        "Match data could not be found.",
	rating.StageScoring:      "Participant data could not be found.",
}

func reportMessage(err error) string {
	var stageErr *rating.StageError
	if errors.Is(err, domain.ErrNotFound) && errors.As(err, &stageErr) {
		if msg, ok := notFoundMessages[stageErr.Stage]; ok {
			return msg
		}
	}
	if errors.Is(err, domain.ErrInvalidArgument) {
		return "A summoner name is required (argument or SUMMONER_NAME)."
	}
	return err.Error()
}
