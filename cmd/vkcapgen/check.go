package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/vkcap/ext"
)

var (
	apiVersion         string
	instanceExtensions []string
	deviceExtensions   []string
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an extension configuration against the registry",
	Long: `Check that a set of enabled extensions has every dependency
satisfied at the given core API version. Unknown extension names are
ignored, matching what a real driver enumeration may report.

Examples:
  vkcapgen check --api-version 1.0 --instance VK_KHR_surface --device VK_KHR_swapchain
  vkcapgen check --api-version 1.3 --device VK_EXT_shader_object`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&apiVersion, "api-version", "1.0", "Core API version, e.g. 1.3")
	checkCmd.Flags().StringSliceVar(&instanceExtensions, "instance", nil, "Enabled instance extensions (comma-separated)")
	checkCmd.Flags().StringSliceVar(&deviceExtensions, "device", nil, "Enabled device extensions (comma-separated)")
}

// runCheck implements the core logic for the check command.
func runCheck() error {
	version, err := ext.ParseVersion(apiVersion)
	if err != nil {
		return err
	}

	instance := ext.InstanceExtensionsFromNames(instanceExtensions)
	device := ext.DeviceExtensionsFromNames(deviceExtensions)

	slog.Debug("checking configuration",
		"api_version", version,
		"instance", instance.Names(),
		"device", device.Names(),
	)

	if err := instance.Validate(version); err != nil {
		return reportValidation(err)
	}
	if err := device.Validate(instance, version); err != nil {
		return reportValidation(err)
	}

	fmt.Println("configuration is valid")
	return nil
}

// reportValidation prints the full diagnostic before failing the
// command.
func reportValidation(err error) error {
	var verr *ext.ValidationError
	if errors.As(err, &verr) {
		fmt.Print(verr.Verbose())
	}
	return err
}
