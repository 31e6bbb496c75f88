package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image/color"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

// AvatarService renders an initials avatar for a new account and returns it
// as a PNG data URL, so the client can use it without any object storage.
type AvatarService interface {
	Generate(name string) (string, error)
}

type avatarService struct {
	log      *logger.Logger
	bgColors []color.NRGBA
	fontFace font.Face
}

var avatarPalette = []color.NRGBA{
	{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}, // indigo
	{R: 0x05, G: 0x96, B: 0x69, A: 0xFF}, // emerald
	{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF}, // red
	{R: 0xD9, G: 0x77, B: 0x06, A: 0xFF}, // amber
	{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}, // violet
	{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF}, // sky
	{R: 0xDB, G: 0x27, B: 0x77, A: 0xFF}, // pink
}

func NewAvatarService(baseLog *logger.Logger) (AvatarService, error) {
	serviceLog := baseLog.With("service", "AvatarService")

	fontPath := os.Getenv("AVATAR_FONT")
	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("Env var AVATAR_FONT is empty")
	}
	serviceLog.Info("Loading avatar font", "font", fontPath)

	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	return &avatarService{
		log:      serviceLog,
		bgColors: avatarPalette,
		fontFace: face,
	}, nil
}

func (as *avatarService) Generate(name string) (string, error) {
	const size = 512

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(as.pickColor(name))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(name)

	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// pickColor hashes the name so the same account always gets the same color.
func (as *avatarService) pickColor(name string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return as.bgColors[int(h.Sum32())%len(as.bgColors)]
}

func computeInitials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

// firstRune returns the leading rune, not the leading byte, so accented
// names keep valid UTF-8 initials.
func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return face, nil
}
