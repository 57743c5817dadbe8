// Package server implements the MCP (Model Context Protocol) server for the
// seam carving tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Seam Carving:
//   - image_seam_carve: Shrink or grow the width by seam carving
//   - image_show_seams: Paint the seams a resize would use
//   - image_mask_after_resize: Move a mask along with a resize
//   - image_energy_map: Visualize the gradient energy
//
// Color Operations:
//   - image_greyscale: Weighted greyscale conversion
//   - image_change_hue: Scale channels by relative weights
//   - image_rotate_hue: Rotate hue by degrees
//
// Resampling:
//   - image_nearest_neighbor: Plain nearest-neighbor resize, for comparison
//
// OCR:
//   - image_text_mask: Detect text and render it as a mask
//
// Every tool that produces an image returns it inline as a base64 PNG,
// shrunk so no edge exceeds Config.PreviewMax, and writes the full-size
// result to output_path when one is given.
//
// # Image Caching
//
// Images and masks are cached by path and reused across tool calls. The
// cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
