package cli

import (
	"github.com/spf13/cobra"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
	"github.com/hapkiduki/resin-calc/internal/application/service"
	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// tuning holds the per-calculation overrides.
type tuning struct {
	margin float64
	ratio  string
}

func (t *tuning) register(c *cobra.Command) {
	c.Flags().Float64Var(&t.margin, "margin", valueobject.DefaultMarginRate, "safety margin as a fraction (0.05 = 5%)")
	c.Flags().StringVar(&t.ratio, "ratio", "", "Part A to Part B mix ratio, e.g. 1:1 or 2:1 (default from config)")
}

// input builds the service input; the margin only overrides config when set.
func (t *tuning) input(c *cobra.Command, shape valueobject.MoldShape) service.CalculateInput {
	in := service.CalculateInput{Shape: shape, MixRatio: t.ratio}
	if c.Flags().Changed("margin") {
		margin := t.margin
		in.MarginRate = &margin
	}
	return in
}

func rectangleCmd(opts *options) *cobra.Command {
	var dims valueobject.MoldDimensions
	var tune tuning

	c := &cobra.Command{
		Use:   "rectangle",
		Short: "Resin for a rectangular mold (length x width x depth, inches)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return calculate(cmd, opts, valueobject.ShapeRectangle, dims, &tune)
		},
	}

	c.Flags().Float64VarP(&dims.Length, "length", "l", 0, "mold length in inches (required)")
	c.Flags().Float64VarP(&dims.Width, "width", "w", 0, "mold width in inches (required)")
	c.Flags().Float64VarP(&dims.Depth, "depth", "d", 0, "pour depth in inches (required)")
	tune.register(c)

	_ = c.MarkFlagRequired("length")
	_ = c.MarkFlagRequired("width")
	_ = c.MarkFlagRequired("depth")
	return c
}

func circleCmd(opts *options) *cobra.Command {
	var dims valueobject.MoldDimensions
	var tune tuning

	c := &cobra.Command{
		Use:     "circle",
		Aliases: []string{"round"},
		Short:   "Resin for a round mold (diameter x depth, inches)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return calculate(cmd, opts, valueobject.ShapeCircle, dims, &tune)
		},
	}

	c.Flags().Float64Var(&dims.Diameter, "diameter", 0, "mold diameter in inches (required)")
	c.Flags().Float64VarP(&dims.Depth, "depth", "d", 0, "pour depth in inches (required)")
	tune.register(c)

	_ = c.MarkFlagRequired("diameter")
	_ = c.MarkFlagRequired("depth")
	return c
}

func calculate(cmd *cobra.Command, opts *options, kind valueobject.ShapeKind, dims valueobject.MoldDimensions, tune *tuning) error {
	shape, err := valueobject.NewMoldShape(kind, dims)
	if err != nil {
		return err
	}

	return run(cmd, opts, func(a *app) error {
		result, err := a.calculator.Calculate(cmd.Context(), tune.input(cmd, shape))
		if err != nil {
			return err
		}

		resp := dto.NewCalculationResponse(result.Calculation, result.Product, result.Accessories)
		if opts.output == OutputJSON {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		return writeCalculationText(cmd.OutOrStdout(), resp)
	})
}
