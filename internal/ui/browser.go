package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Browser opens product pages with the system URL handler
type Browser struct{}

// NewBrowser creates a new browser launcher
func NewBrowser() *Browser {
	return &Browser{}
}

// Open hands the URL to the platform opener. SHOPGRID_BROWSER overrides the
// binary so tests and headless environments can stub it out.
func (b *Browser) Open(url string) error {
	if bin := os.Getenv("SHOPGRID_BROWSER"); bin != "" {
		return exec.Command(bin, url).Start()
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return fmt.Errorf("xdg-open not found in PATH")
		}
		return exec.Command("xdg-open", url).Start()
	}
}
