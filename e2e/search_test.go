//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFlow(t *testing.T) {
	t.Parallel()
	api := newMockAPI(3)
	defer api.Close()

	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.SetEnv("SHOPGRID_API_URL=" + api.URL())
	require.NoError(t, tf.StartApp(), "Failed to start app")

	require.True(t, tf.SeePlain("shopgrid"), "Should show the title")
	require.True(t, tf.SeePlain("Press / to search"), "Should show the empty-state hint")

	// Type a keyword and submit
	require.NoError(t, tf.Search("wireless mouse"), "Failed to type search")
	require.True(t, tf.SeePlain(`products for "wireless mouse"`), "Should show the result summary")
	require.True(t, tf.SeePlain("page 1 of 3"), "Should land on page 1")
	require.True(t, tf.SeePlain("wireless mouse item 1-1"), "Should render product cards")

	// Walk forward and back through pages
	require.NoError(t, tf.SendKeys(KeyNextPage))
	require.True(t, tf.SeePlain("page 2 of 3"), "n should advance a page")
	require.NoError(t, tf.SendKeys(KeyPrevPage))
	require.True(t, tf.SeePlain("page 1 of 3"), "p should go back a page")

	// Jump straight to the last page
	require.NoError(t, tf.GotoPage("3"))
	require.True(t, tf.SeePlain("page 3 of 3"), "g should jump to the requested page")
	require.True(t, tf.SeePlain("wireless mouse item 3-1"), "Cards should come from the new page")
}

func TestPaginationBarKeyboardFocus(t *testing.T) {
	t.Parallel()
	api := newMockAPI(3)
	defer api.Close()

	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.SetEnv("SHOPGRID_API_URL=" + api.URL())
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.SeePlain("Press / to search"), "Should show the empty-state hint")

	require.NoError(t, tf.Search("ssd drive"))
	require.True(t, tf.SeePlain("page 1 of 3"), "Search should land on page 1")

	// Tab moves focus to the page bar, l walks it to the next page number,
	// Enter activates the focused control
	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.SendKeys("l"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("page 2 of 3"), "Activating the focused page control should navigate")
	require.True(t, tf.SeePlain("ssd drive item 2-1"), "Cards should come from the activated page")
}

func TestStartupKeywordFlag(t *testing.T) {
	t.Parallel()
	api := newMockAPI(2)
	defer api.Close()

	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.SetEnv("SHOPGRID_API_URL=" + api.URL())
	require.NoError(t, tf.StartApp("-keyword", "usb hub"), "Failed to start app")

	require.True(t, tf.SeePlain(`products for "usb hub"`), "Startup keyword should search immediately")
	require.True(t, tf.SeePlain("page 1 of 2"), "Startup search should land on page 1")
}

func TestEmptySearchRejected(t *testing.T) {
	t.Parallel()
	api := newMockAPI(1)
	defer api.Close()

	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.SetEnv("SHOPGRID_API_URL=" + api.URL())
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.SeePlain("Press / to search"), "Should show the empty-state hint")

	// Whitespace-only input never issues a request
	require.NoError(t, tf.Search("   "))
	require.True(t, tf.SeePlain("Type a keyword to search."), "Blank search should show a hint")

	snapshot := tf.SnapshotPlain()
	require.NotContains(t, snapshot, "products for", "Blank search must not fetch anything")
}
