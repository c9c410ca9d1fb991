package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/vkcap"
	"github.com/gogpu/vkcap/gen"
)

var (
	registryPath string
	outDir       string
	packageName  string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate extension set source from a registry document",
	Long: `Read a vk.xml registry document and write one Go source file per
scope: instance_extensions.go and device_extensions.go. Output is
deterministic; regenerating from the same registry yields the same
bytes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&registryPath, "registry", "vk.xml", "Path to the registry document")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	generateCmd.Flags().StringVar(&packageName, "package", "ext", "Package name of the generated files")

	// Flags may also come from the config file or VKCAPGEN_* env vars.
	_ = viper.BindPFlag("registry", generateCmd.Flags().Lookup("registry"))
	_ = viper.BindPFlag("out", generateCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("package", generateCmd.Flags().Lookup("package"))
}

// runGenerate implements the core logic for the generate command.
func runGenerate(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("registry") {
		registryPath = viper.GetString("registry")
	}
	if !cmd.Flags().Changed("out") {
		outDir = viper.GetString("out")
	}
	if !cmd.Flags().Changed("package") {
		packageName = viper.GetString("package")
	}

	slog.Info("reading registry", "path", registryPath)

	f, err := os.Open(registryPath)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	output, err := vkcap.GenerateWithOptions(f, gen.Options{
		PackageName: packageName,
		Source:      filepath.Base(registryPath),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		src  []byte
	}{
		{"instance_extensions.go", output.Instance},
		{"device_extensions.go", output.Device},
	}

	for _, file := range files {
		path := filepath.Join(outDir, file.name)
		if err := os.WriteFile(path, file.src, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		slog.Info("wrote generated source", "path", path, "bytes", len(file.src))
	}

	return nil
}
