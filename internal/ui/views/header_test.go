package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryPluralizesOnExactlyOne(t *testing.T) {
	t.Parallel()
	h := NewHeaderRenderer(NewStyles())

	assert.Contains(t, h.RenderSummary(0, "mouse", 1, 1, 80), `0 products for "mouse"`)
	assert.Contains(t, h.RenderSummary(1, "mouse", 1, 1, 80), `1 product for "mouse"`)
	assert.Contains(t, h.RenderSummary(2, "mouse", 1, 1, 80), `2 products for "mouse"`)
}

func TestSummaryGroupsThousands(t *testing.T) {
	t.Parallel()
	h := NewHeaderRenderer(NewStyles())

	line := h.RenderSummary(1234, "usb hub", 3, 12, 100)
	assert.Contains(t, line, `1,234 products for "usb hub"`)
	assert.Contains(t, line, "page 3 of 12")
}

func TestSummaryKeywordVerbatim(t *testing.T) {
	t.Parallel()
	h := NewHeaderRenderer(NewStyles())

	// The keyword renders exactly as searched, casing and accents intact
	line := h.RenderSummary(5, "Café crème 50%", 1, 2, 100)
	assert.Contains(t, line, `5 products for "Café crème 50%"`)
}

func TestSummaryCollapsesWhenNarrow(t *testing.T) {
	t.Parallel()
	h := NewHeaderRenderer(NewStyles())

	// No room to right-align, so the parts sit two spaces apart
	line := h.RenderSummary(5, "x", 1, 1, 10)
	assert.Equal(t, `5 products for "x"  page 1 of 1`, line)
}
