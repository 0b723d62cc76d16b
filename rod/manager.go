package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// recycled. Chrome accumulates memory over time and the baseline never
// returns to initial levels even with proper page cleanup, so a
// long-running discovery process restarts it periodically.
const DefaultMaxPages = 75

// browserManager owns the headless Chrome instance used by Fetcher. The
// browser is launched lazily on first use and recycled after maxPages
// pages. Safe for concurrent use.
type browserManager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    bool
}

func newBrowserManager(maxPages int64) *browserManager {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &browserManager{maxPages: maxPages}
}

// browserFor returns a connected browser, launching or recycling as needed,
// and counts one page against the recycling threshold.
func (m *browserManager) browserFor() (*rod.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("browser manager is closed")
	}

	if m.browser != nil && m.pageCount >= m.maxPages {
		m.recycleLocked()
	}

	if m.browser == nil {
		if err := m.launchLocked(); err != nil {
			return nil, err
		}
	}

	m.pageCount++
	return m.browser, nil
}

// Close shuts down the browser. Safe to call multiple times.
func (m *browserManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	return m.shutdownLocked()
}

// launchLocked starts a new browser with stability flags.
// Must be called with mu held.
func (m *browserManager) launchLocked() error {
	lnchr := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	m.browser = browser
	m.launcher = lnchr
	m.pageCount = 0
	return nil
}

// recycleLocked drops the current browser so the next use launches a fresh
// one. Must be called with mu held.
func (m *browserManager) recycleLocked() {
	_ = m.shutdownLocked()
}

// shutdownLocked closes the browser and kills the launcher process.
// Must be called with mu held.
func (m *browserManager) shutdownLocked() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.launcher != nil {
		m.launcher.Kill()
		m.launcher = nil
	}
	return err
}
