package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/usecase"
	"github.com/laptopfinder/backend/internal/validation"
)

var tableHeaders = []string{"#", "SCORE", "BRAND", "MODEL", "PRICE", "RAM", "STORAGE", "GPU"}

type recommendOptions struct {
	Budget      float64 `json:"budget" validate:"gt=0"`
	UseCategory string  `json:"use" validate:"omitempty,oneof=gaming business student creative programming general"`
	Brand       string  `json:"brand"`
	MinRAMGB    int     `json:"min-ram" validate:"omitempty,min=4"`
	MinStorage  int     `json:"min-storage" validate:"omitempty,min=128"`
	PreferGPU   bool    `json:"gpu"`
	Limit       int     `json:"limit" validate:"omitempty,min=1,max=50"`
}

func newRecommendCommand(global *globalOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank catalog laptops for a budget and use",
		Example: `  laptopctl recommend --budget 1500 --use gaming
  laptopctl recommend --budget 1200 --use business --brand lenovo --limit 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, global, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Budget, "budget", 0, "maximum price in USD (required)")
	cmd.Flags().StringVar(&opts.UseCategory, "use", string(domain.UseGeneral),
		"use category: gaming, business, student, creative, programming or general")
	cmd.Flags().StringVar(&opts.Brand, "brand", "", "preferred brand")
	cmd.Flags().IntVar(&opts.MinRAMGB, "min-ram", 0, "minimum RAM in GB (default from the use category)")
	cmd.Flags().IntVar(&opts.MinStorage, "min-storage", 0, "minimum storage in GB (default from the use category)")
	cmd.Flags().BoolVar(&opts.PreferGPU, "gpu", false, "require a dedicated GPU")
	cmd.Flags().IntVar(&opts.Limit, "limit", 5, "maximum number of results")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func runRecommend(cmd *cobra.Command, global *globalOptions, opts *recommendOptions) error {
	if err := validation.ValidateStruct(opts); err != nil {
		return err
	}

	store, err := openCatalog(cmd.Context(), global.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	req := domain.RecommendRequest{
		Budget:          opts.Budget,
		UseCategory:     domain.UseCategory(opts.UseCategory),
		BrandPreference: opts.Brand,
		PreferGPU:       opts.PreferGPU,
		Limit:           opts.Limit,
	}
	if req.UseCategory == "" {
		req.UseCategory = domain.UseGeneral
	}
	if opts.MinRAMGB > 0 {
		req.MinRAMGB = &opts.MinRAMGB
	}
	if opts.MinStorage > 0 {
		req.MinStorageGB = &opts.MinStorage
	}

	engine := usecase.NewRecommendationEngine(store, usecase.EngineConfig{EnableDebugLogging: global.verbose})
	rec := engine.Recommend(req)

	out := cmd.OutOrStdout()
	if len(rec.Items) == 0 {
		fmt.Fprintln(out, "No laptops match these criteria.")
		return nil
	}
	if rec.Relaxed {
		color.New(color.FgYellow).Fprintf(out,
			"⚠ No exact match; showing laptops slightly over budget, ignoring brand and hardware minimums.\n\n")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(tableHeaders, "\t"))
	separator := make([]string, len(tableHeaders))
	for i, h := range tableHeaders {
		separator[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))
	for i, item := range rec.Items {
		gpu := "-"
		if item.HasDedicatedGPU() {
			gpu = *item.GPU
		}
		fmt.Fprintf(w, "%d\t%.3f\t%s\t%s\t$%s\t%dGB\t%dGB\t%s\n",
			i+1, item.Score, item.Brand, item.Name,
			humanize.CommafWithDigits(item.Price, 2), item.RAMGB, item.StorageGB, gpu)
	}
	return w.Flush()
}
