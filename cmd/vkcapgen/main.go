// Command vkcapgen generates typed Vulkan extension capability sets
// from the Khronos API registry.
//
// Usage:
//
//	vkcapgen generate --registry vk.xml --out ./ext
//	vkcapgen check --api-version 1.3 --device VK_KHR_swapchain --instance VK_KHR_surface
package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	Execute()
}
