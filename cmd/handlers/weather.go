package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaipengyu/ppl-small-win/internal/render"
	"github.com/kaipengyu/ppl-small-win/internal/weather"
)

// NewWeatherCmd creates the weather command
func NewWeatherCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "weather <address>",
		Short: "Show the 7-day energy outlook for an address",
		Long: `Weather geocodes the address (falling back to its city/state or ZIP
when the full address does not resolve) and prints the 7-day outlook
with its energy impact narrative.

Examples:
  smallwin weather "123 Main St, Allentown, PA 18104"
  smallwin weather 18104`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.Join(args, " ")

			client := weather.NewClient(weather.Config{
				APIKey:  cfg.Weather.APIKey,
				BaseURL: cfg.Weather.BaseURL,
				Timeout: cfg.Weather.Timeout,
			})
			data := client.Forecast(cmd.Context(), address)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			fmt.Println(render.Weather(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the forecast as JSON instead of styled text")

	return cmd
}
