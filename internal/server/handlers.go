package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/pkg/errors"

	"github.com/ironsheep/seam-carving-mcp/internal/carving"
	"github.com/ironsheep/seam-carving-mcp/internal/imaging"
	"github.com/ironsheep/seam-carving-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_seam_carve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Seam Carving
	case "image_seam_carve":
		return s.handleImageSeamCarve(args)
	case "image_show_seams":
		return s.handleImageShowSeams(args)
	case "image_mask_after_resize":
		return s.handleImageMaskAfterResize(args)
	case "image_energy_map":
		return s.handleImageEnergyMap(args)

	// Color Operations
	case "image_greyscale":
		return s.handleImageGreyscale(args)
	case "image_change_hue":
		return s.handleImageChangeHue(args)
	case "image_rotate_hue":
		return s.handleImageRotateHue(args)

	// Resampling
	case "image_nearest_neighbor":
		return s.handleImageNearestNeighbor(args)

	// OCR
	case "image_text_mask":
		return s.handleImageTextMask(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// imageResult is the response of every tool that produces an image.
type imageResult struct {
	*imaging.EncodedImage
	OutputPath string `json:"output_path,omitempty"`
}

// respondImage writes img to outputPath when one is given and returns it
// inline, shrunk to the configured preview size.
func (s *Server) respondImage(img image.Image, outputPath string) (*imageResult, error) {
	if outputPath != "" {
		if err := imaging.SaveImage(img, outputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(outputPath)
	}
	enc, err := imaging.EncodePreview(img, s.cfg.PreviewMax)
	if err != nil {
		return nil, err
	}
	return &imageResult{EncodedImage: enc, OutputPath: outputPath}, nil
}

// weightsOrDefault returns w, or the server's configured weights when the
// caller sent none.
func (s *Server) weightsOrDefault(w *imaging.RGBWeights) imaging.RGBWeights {
	if w == nil {
		return s.cfg.Weights
	}
	return *w
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Seam Carving Handlers ===

type carveArgs struct {
	Path        string              `json:"path"`
	TargetWidth int                 `json:"target_width"`
	MaskPath    string              `json:"mask_path"`
	MaskMode    string              `json:"mask_mode"`
	ProtectText bool                `json:"protect_text"`
	TextPadding *int                `json:"text_padding"`
	Language    string              `json:"language"`
	Weights     *imaging.RGBWeights `json:"weights"`
	OutputPath  string              `json:"output_path"`
}

func (a *carveArgs) applyDefaults() {
	if a.TextPadding == nil {
		p := 4
		a.TextPadding = &p
	}
	if a.Language == "" {
		a.Language = "eng"
	}
}

// carveResult describes a seam carving run.
type carveResult struct {
	Width         int                   `json:"width"`
	Height        int                   `json:"height"`
	OriginalWidth int                   `json:"original_width"`
	Seams         int                   `json:"seams"`
	Operation     string                `json:"operation"`
	MaskedPixels  int                   `json:"masked_pixels"`
	MaskMode      string                `json:"mask_mode"`
	OutputPath    string                `json:"output_path,omitempty"`
	Image         *imaging.EncodedImage `json:"image"`
}

// newCarver loads the image and its mask and prepares a carver for a.
// It also returns the mask it used, which may be nil.
func (s *Server) newCarver(a *carveArgs) (*carving.SeamsCarver, [][]bool, carving.MaskMode, error) {
	a.applyDefaults()

	mode, ok := carving.ParseMaskMode(a.MaskMode)
	if !ok {
		return nil, nil, 0, fmt.Errorf("invalid mask_mode %q: want attract or repel", a.MaskMode)
	}
	if a.ProtectText && a.MaskPath != "" && a.MaskMode == "attract" {
		return nil, nil, 0, fmt.Errorf("protect_text uses repel mode and cannot be combined with an attract mask_path")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, 0, err
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	var mask [][]bool
	if a.MaskPath != "" {
		mask, err = imaging.LoadMask(s.cache, a.MaskPath, width, height)
		if err != nil {
			return nil, nil, 0, err
		}
	}

	if a.ProtectText {
		regions, err := ocr.DetectTextRegions(img, a.Language, 0.5)
		if err != nil {
			return nil, nil, 0, errors.Wrap(err, "protect_text")
		}
		mask = ocr.MergeMasks(mask, ocr.TextMask(regions.Regions, width, height, *a.TextPadding))
		mode = carving.MaskRepel
	}

	opts := []carving.Option{
		carving.WithWeights(s.weightsOrDefault(a.Weights)),
		carving.WithMaskMode(mode),
	}
	if s.engineLog != nil {
		opts = append(opts, carving.WithLogger(s.engineLog))
	}

	c, err := carving.New(img, a.TargetWidth, mask, opts...)
	if err != nil {
		return nil, nil, 0, err
	}
	return c, mask, mode, nil
}

func operationName(from, to int) string {
	switch {
	case to < from:
		return "shrink"
	case to > from:
		return "grow"
	}
	return "identity"
}

func (s *Server) handleImageSeamCarve(args json.RawMessage) (interface{}, error) {
	var a carveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, mask, mode, err := s.newCarver(&a)
	if err != nil {
		return nil, err
	}

	out, err := c.Resize()
	if err != nil {
		return nil, err
	}
	res, err := s.respondImage(out, a.OutputPath)
	if err != nil {
		return nil, err
	}

	return &carveResult{
		Width:         c.OutputWidth(),
		Height:        c.Height(),
		OriginalWidth: c.Width(),
		Seams:         c.NumSeams(),
		Operation:     operationName(c.Width(), c.OutputWidth()),
		MaskedPixels:  imaging.CountMask(mask),
		MaskMode:      mode.String(),
		OutputPath:    res.OutputPath,
		Image:         res.EncodedImage,
	}, nil
}

type showSeamsArgs struct {
	carveArgs
	SeamColor string `json:"seam_color"`
}

func (s *Server) handleImageShowSeams(args json.RawMessage) (interface{}, error) {
	var a showSeamsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SeamColor == "" {
		a.SeamColor = "#FF0000"
	}
	highlight, err := imaging.ParseHexColor(a.SeamColor)
	if err != nil {
		return nil, err
	}

	c, _, _, err := s.newCarver(&a.carveArgs)
	if err != nil {
		return nil, err
	}
	out, err := c.ShowSeams(highlight)
	if err != nil {
		return nil, err
	}
	return s.respondImage(out, a.OutputPath)
}

func (s *Server) handleImageMaskAfterResize(args json.RawMessage) (interface{}, error) {
	var a carveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, _, err := s.newCarver(&a)
	if err != nil {
		return nil, err
	}
	mask, err := c.MaskAfterResize()
	if err != nil {
		return nil, err
	}
	return s.respondImage(imaging.MaskToImage(mask), a.OutputPath)
}

type weightedImageArgs struct {
	Path       string              `json:"path"`
	Weights    *imaging.RGBWeights `json:"weights"`
	OutputPath string              `json:"output_path"`
}

func (s *Server) handleImageEnergyMap(args json.RawMessage) (interface{}, error) {
	var a weightedImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	w := s.weightsOrDefault(a.Weights)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.respondImage(carving.EnergyMap(img, w.Intensity), a.OutputPath)
}

// === Color Operation Handlers ===

func (s *Server) handleImageGreyscale(args json.RawMessage) (interface{}, error) {
	var a weightedImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.Greyscale(img, s.weightsOrDefault(a.Weights))
	if err != nil {
		return nil, err
	}
	return s.respondImage(out, a.OutputPath)
}

func (s *Server) handleImageChangeHue(args json.RawMessage) (interface{}, error) {
	var a weightedImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Weights == nil {
		return nil, fmt.Errorf("weights are required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.ChangeHue(img, *a.Weights)
	if err != nil {
		return nil, err
	}
	return s.respondImage(out, a.OutputPath)
}

type rotateHueArgs struct {
	Path       string `json:"path"`
	Degrees    int    `json:"degrees"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageRotateHue(args json.RawMessage) (interface{}, error) {
	var a rotateHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.RotateHue(img, a.Degrees)
	if err != nil {
		return nil, err
	}
	return s.respondImage(out, a.OutputPath)
}

// === Resampling Handlers ===

type nearestNeighborArgs struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageNearestNeighbor(args json.RawMessage) (interface{}, error) {
	var a nearestNeighborArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.NearestNeighbor(img, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.respondImage(out, a.OutputPath)
}

// === OCR Handlers ===

type textMaskArgs struct {
	Path          string   `json:"path"`
	Language      string   `json:"language"`
	MinConfidence *float64 `json:"min_confidence"`
	Padding       *int     `json:"padding"`
	OutputPath    string   `json:"output_path"`
}

// textMaskResult lists the detected regions next to the rendered mask.
type textMaskResult struct {
	ocr.DetectTextRegionsResult
	MaskedPixels int                   `json:"masked_pixels"`
	OutputPath   string                `json:"output_path,omitempty"`
	Image        *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleImageTextMask(args json.RawMessage) (interface{}, error) {
	var a textMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}
	minConf := 0.5
	if a.MinConfidence != nil {
		minConf = *a.MinConfidence
	}
	padding := 4
	if a.Padding != nil {
		padding = *a.Padding
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	regions, err := ocr.DetectTextRegions(img, a.Language, minConf)
	if err != nil {
		return nil, err
	}

	mask := ocr.TextMask(regions.Regions, img.Bounds().Dx(), img.Bounds().Dy(), padding)
	res, err := s.respondImage(imaging.MaskToImage(mask), a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &textMaskResult{
		DetectTextRegionsResult: *regions,
		MaskedPixels:            imaging.CountMask(mask),
		OutputPath:              res.OutputPath,
		Image:                   res.EncodedImage,
	}, nil
}
