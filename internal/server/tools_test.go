package server

import (
	"testing"
)

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_seam_carve",
		"image_show_seams",
		"image_mask_after_resize",
		"image_energy_map",
		"image_greyscale",
		"image_change_hue",
		"image_rotate_hue",
		"image_nearest_neighbor",
		"image_text_mask",
	}

	toolMap := toolsByName()
	if len(toolMap) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(toolMap), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			if _, ok := props["path"]; !ok {
				t.Error("every tool takes a path")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema required should be a string slice")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_CarveTools(t *testing.T) {
	toolMap := toolsByName()

	for _, name := range []string{"image_seam_carve", "image_show_seams", "image_mask_after_resize"} {
		t.Run(name, func(t *testing.T) {
			tool := toolMap[name]
			props := tool.InputSchema["properties"].(map[string]interface{})

			for _, p := range []string{"target_width", "mask_path", "mask_mode", "protect_text", "weights", "output_path"} {
				if _, ok := props[p]; !ok {
					t.Errorf("missing property %s", p)
				}
			}

			mode := props["mask_mode"].(map[string]interface{})
			if mode["default"] != "attract" {
				t.Errorf("mask_mode default: got %v, want attract", mode["default"])
			}
		})
	}

	seamColor := toolMap["image_show_seams"].InputSchema["properties"].(map[string]interface{})["seam_color"]
	if seamColor == nil {
		t.Error("image_show_seams should take seam_color")
	}
	if _, ok := toolMap["image_seam_carve"].InputSchema["properties"].(map[string]interface{})["seam_color"]; ok {
		t.Error("seam_color leaked into image_seam_carve")
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(DefaultConfig())
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools, want %d", len(tools), len(GetToolDefinitions()))
	}
}
