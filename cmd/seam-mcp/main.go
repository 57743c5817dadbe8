package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/seam-carving-mcp/internal/ocr"
	"github.com/ironsheep/seam-carving-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seam-carving-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  Tesseract:  %s\n", ocr.Version())
			return
		case "--help", "-h", "help":
			fmt.Println("seam-carving-mcp - MCP server for content-aware image resizing")
			fmt.Println()
			fmt.Println("Usage: seam-carving-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug      Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=r,g,b    Default intensity weights (default 1,1,1)\n", server.EnvRGBWeights)
			fmt.Printf("  %s=N        Longest edge of inline images (default 1024, 0 = no limit)\n", server.EnvPreviewMax)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Seam Carving MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("RGB weights %d,%d,%d, preview limit %d", cfg.Weights.Red, cfg.Weights.Green, cfg.Weights.Blue, cfg.PreviewMax)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
