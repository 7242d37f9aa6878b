package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
██╗     ██╗███╗   ██╗██╗  ██╗██████╗  ██████╗  █████╗ ██████╗ ██████╗
██║     ██║████╗  ██║██║ ██╔╝██╔══██╗██╔═══██╗██╔══██╗██╔══██╗██╔══██╗
██║     ██║██╔██╗ ██║█████╔╝ ██████╔╝██║   ██║███████║██████╔╝██║  ██║
██║     ██║██║╚██╗██║██╔═██╗ ██╔══██╗██║   ██║██╔══██║██╔══██╗██║  ██║
███████╗██║██║ ╚████║██║  ██╗██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝
╚══════╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	if len(chars) < 2 {
		return text
	}

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%(len(chars)/2)), endColor).Sprint(ch))
	}
	return b.String()
}

// PrintBanner writes the application banner to w unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}
