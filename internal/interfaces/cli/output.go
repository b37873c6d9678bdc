package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCalculationText(w io.Writer, resp dto.CalculationResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Mold:\t%s\n", describeMold(resp))
	fmt.Fprintf(tw, "Volume:\t%s in³ (%s)\n", dto.Round(resp.Volume.CubicInches, 2), resp.Display.Gallons)
	fmt.Fprintf(tw, "Total mix:\t%s / %s (includes %s safety margin)\n",
		resp.Display.MarginedFluidOunces, resp.Display.MarginedLiters, resp.Display.MarginPercent)
	fmt.Fprintf(tw, "Mix %s:\tPart A %s, Part B %s\n",
		resp.Mix.Ratio, resp.Display.PartAOunces, resp.Display.PartBOunces)
	fmt.Fprintf(tw, "Resin:\t%s\n", resp.Recommendation.Message)
	if p := resp.Recommendation.Product; p != nil {
		fmt.Fprintf(tw, "Buy:\t%s\n", productLine(*p))
	}
	for _, p := range resp.Recommendation.Accessories {
		fmt.Fprintf(tw, "Tools:\t%s\n", productLine(p))
	}
	return tw.Flush()
}

func writeProductsText(w io.Writer, products []dto.ProductResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tCATEGORY\tNAME\tPRICE\tURL")
	for _, p := range products {
		price := p.Price
		if price == "" {
			price = "-"
		}
		name := p.Name
		if p.BestSeller {
			name += " (Best Seller)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.SKU, p.Category, name, price, p.URL)
	}
	return tw.Flush()
}

func describeMold(resp dto.CalculationResponse) string {
	d := resp.Dimensions
	if d.Diameter > 0 {
		return fmt.Sprintf("%s, %s in diameter x %s in deep", resp.Shape, dto.Round(d.Diameter, 2), dto.Round(d.Depth, 2))
	}
	return fmt.Sprintf("%s, %s x %s x %s in", resp.Shape, dto.Round(d.Length, 2), dto.Round(d.Width, 2), dto.Round(d.Depth, 2))
}

func productLine(p dto.ProductResponse) string {
	line := p.Name
	if p.BestSeller {
		line += " (Best Seller)"
	}
	if p.Price != "" {
		line += " (" + p.Price + ")"
	}
	return line + " " + p.URL
}
