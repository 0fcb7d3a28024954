// Command pathtracer renders scenes with the offline Monte-Carlo path
// tracer in github.com/go-monte/pathtracer/internal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-monte/pathtracer/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "pathtracer",
		Short: "An offline Monte-Carlo path tracer",
	}

	root.AddCommand(newRenderCmd(v))
	root.AddCommand(newScenesCmd())
	return root
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "two-spheres    - ground sphere + a small red Lambertian sphere")
			fmt.Fprintln(cmd.OutOrStdout(), "random-spheres - classic random spheres over a checkered ground")
			fmt.Fprintln(cmd.OutOrStdout(), "cornell-box    - the 555-unit Cornell box with a ceiling light")
			fmt.Fprintln(cmd.OutOrStdout(), "Any other value is treated as a path to a .yaml, .obj, or .gltf/.glb scene file.")
			return nil
		},
	}
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.SetDefaults(v)
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file %s: %w", configFile, err)
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runRender(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}
