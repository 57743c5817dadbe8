package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also write the full-size result to. Format follows the extension (png, jpg, gif, tif, bmp).",
	}
}

func weightsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"red":   map[string]interface{}{"type": "integer", "minimum": 0},
			"green": map[string]interface{}{"type": "integer", "minimum": 0},
			"blue":  map[string]interface{}{"type": "integer", "minimum": 0},
		},
		"required":    []string{"red", "green", "blue"},
		"description": "Relative RGB weights. Defaults to the server's configured weights (equal weights unless SEAM_MCP_RGB_WEIGHTS is set).",
	}
}

// carveProperties are shared by every tool that runs the seam carver.
func carveProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"target_width": map[string]interface{}{
			"type":        "integer",
			"description": "Output width in pixels. Must be within half the source width of the source width.",
		},
		"mask_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional mask image with the same dimensions. Pixels brighter than mid-grey are masked.",
		},
		"mask_mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"attract", "repel"},
			"description": "attract (default): seams pass through masked pixels first, for removing objects. repel: seams avoid masked pixels, for protecting them.",
			"default":     "attract",
		},
		"protect_text": map[string]interface{}{
			"type":        "boolean",
			"description": "Detect text with OCR and add it to the mask. Switches mask_mode to repel, so mask_path then protects its pixels too; combining it with mask_path and an explicit mask_mode attract is rejected.",
			"default":     false,
		},
		"text_padding": map[string]interface{}{
			"type":        "integer",
			"description": "Pixels added around each detected text block (default 4)",
			"default":     4,
		},
		"language": map[string]interface{}{
			"type":        "string",
			"description": "OCR language used by protect_text (default 'eng')",
			"default":     "eng",
		},
		"weights":     weightsProperty(),
		"output_path": outputPathProperty(),
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Seam Carving
		{
			Name:        "image_seam_carve",
			Description: "Change the width of an image by seam carving: remove or duplicate low-energy vertical seams so important content keeps its shape.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": carveProperties(),
				"required":   []string{"path", "target_width"},
			},
		},
		{
			Name:        "image_show_seams",
			Description: "Return the original image with every seam that a resize to target_width would remove or duplicate painted in seam_color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(carveProperties(), map[string]interface{}{
					"seam_color": map[string]interface{}{
						"type":        "string",
						"description": "Seam color as hex (default #FF0000)",
						"default":     "#FF0000",
					},
				}),
				"required": []string{"path", "target_width"},
			},
		},
		{
			Name:        "image_mask_after_resize",
			Description: "Return the mask moved along with the pixels of a resize to target_width, as a black and white PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": carveProperties(),
				"required":   []string{"path", "target_width"},
			},
		},
		{
			Name:        "image_energy_map",
			Description: "Return the gradient energy the seam carver sees, brightest where content is most important.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"weights":     weightsProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_greyscale",
			Description: "Convert an image to greyscale with weighted RGB channels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"weights":     weightsProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_change_hue",
			Description: "Scale each RGB channel by its weight relative to the largest weight.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"weights":     weightsProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "weights"},
			},
		},
		{
			Name:        "image_rotate_hue",
			Description: "Rotate the hue of every pixel by a number of degrees.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"degrees": map[string]interface{}{
						"type":        "integer",
						"description": "Hue rotation in degrees (-360 to 360)",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "degrees"},
			},
		},

		// Resampling
		{
			Name:        "image_nearest_neighbor",
			Description: "Resize an image to any width and height with nearest-neighbor sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"width":       map[string]interface{}{"type": "integer", "description": "Output width in pixels"},
					"height":      map[string]interface{}{"type": "integer", "description": "Output height in pixels"},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "width", "height"},
			},
		},

		// OCR
		{
			Name:        "image_text_mask",
			Description: "Detect text blocks with OCR and return them as a mask image suitable for mask_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint (default 'eng')",
						"default":     "eng",
					},
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum confidence threshold (0-1, default 0.5)",
						"default":     0.5,
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels added around each text block (default 4)",
						"default":     4,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
