package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/burger/pkg/i18n"
	"github.com/dmitrymomot/burger/pkg/logger"
	"github.com/dmitrymomot/burger/pkg/recipe"
	"github.com/dmitrymomot/burger/pkg/validator"
)

// errInvalidRecipe is returned after the rejection messages have been printed.
var errInvalidRecipe = errors.New("invalid recipe")

func newCommand(tr *i18n.Translator, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "burger",
		Usage:     "Assemble a burger from validated ingredient quantities",
		UsageText: "burger [--buns 2] [--cheese 1] [--tomatoes 1] [--cutlets 1] [--eggs 0] [--sauce ketchup]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "buns", Value: 2, Usage: "number of buns"},
			&cli.IntFlag{Name: "cheese", Value: 1, Usage: "slices of cheese"},
			&cli.IntFlag{Name: "tomatoes", Value: 1, Usage: "slices of tomato"},
			&cli.IntFlag{Name: "cutlets", Value: 1, Usage: "number of cutlets"},
			&cli.IntFlag{Name: "eggs", Value: 0, Usage: "number of eggs"},
			&cli.StringFlag{Name: "sauce", Value: "ketchup", Usage: "sauce, one of the allowed sauces (see rules)"},
			&cli.StringFlag{Name: "lang", Value: tr.DefaultLanguage(), Usage: "language of error messages", Sources: cli.EnvVars("BURGER_LANG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx = i18n.SetLocale(ctx, tr.Resolve(cmd.String("lang")))

			b, err := recipe.New(
				cmd.Int("buns"),
				cmd.Int("cheese"),
				cmd.Int("tomatoes"),
				cmd.Int("cutlets"),
				cmd.Int("eggs"),
				cmd.String("sauce"),
			)
			if err != nil {
				return reportRejection(ctx, tr, stderr, err)
			}

			slog.InfoContext(ctx, "burger assembled", logger.RecipeID(b.ID()))
			_, err = fmt.Fprintln(stdout, b.String())
			return err
		},
		Commands: []*cli.Command{
			newRulesCommand(stdout),
		},
	}
}

// newRulesCommand lists every field with its constraint in construction order.
func newRulesCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List burger fields and their constraints",
		Action: func(_ context.Context, _ *cli.Command) error {
			title := cases.Title(language.English)
			w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			for _, name := range recipe.Fields() {
				rule, _ := recipe.Rule(name)
				fmt.Fprintf(w, "%s\t%v\n", title.String(name), rule)
			}
			return w.Flush()
		},
	}
}

// reportRejection prints one localized line per validation error.
// Errors that carry no validation details are returned unchanged.
func reportRejection(ctx context.Context, tr *i18n.Translator, stderr io.Writer, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}

	slog.DebugContext(ctx, "burger rejected", logger.Error(err))
	for _, msg := range verrs.Localize(tr, i18n.GetLocale(ctx)) {
		fmt.Fprintln(stderr, msg)
	}
	return errInvalidRecipe
}
