package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
)

func productsCmd(opts *options) *cobra.Command {
	var category string

	c := &cobra.Command{
		Use:   "products [sku]",
		Short: "List the products in the catalog, or show one by SKU",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && category != "" {
				return errors.New("--category cannot be combined with a SKU")
			}
			return run(cmd, opts, func(a *app) error {
				if len(args) == 1 {
					product, err := a.calculator.GetProduct(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					resp := dto.NewProductResponse(product)
					if opts.output == OutputJSON {
						return writeJSON(cmd.OutOrStdout(), resp)
					}
					return writeProductsText(cmd.OutOrStdout(), []dto.ProductResponse{resp})
				}

				products, err := a.calculator.ListProducts(cmd.Context(), category)
				if err != nil {
					return err
				}

				list := dto.NewListResponse(dto.NewProductResponses(products))
				if opts.output == OutputJSON {
					return writeJSON(cmd.OutOrStdout(), list)
				}
				return writeProductsText(cmd.OutOrStdout(), list.Items)
			})
		},
	}

	c.Flags().StringVarP(&category, "category", "c", "", "filter by category: deep_pour, standard or accessory")
	return c
}
