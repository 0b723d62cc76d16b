//go:build integration

package rod_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/jobscout/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests launch a real headless Chrome. Run with:
//
//	go test -tags integration ./rod/...

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/careers":
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<html><body>
				<div id="root"></div>
				<script>
					fetch("/api/postings").then(function() {
						var a = document.createElement("a");
						a.href = "/jobs/rendered-engineer";
						a.textContent = "Rendered Engineer";
						document.getElementById("root").appendChild(a);
					});
				</script>
			</body></html>`)
		case "/api/postings":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			fmt.Fprint(w, `{"postings":[{"url":"/jobs/api-engineer"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := rod.NewFetcher(rod.WithTimeout(30*time.Second), rod.WithAnchorWait(5*time.Second))
	defer f.Close()

	t.Run("renders scripted content", func(t *testing.T) {
		content, err := f.Fetch(context.Background(), srv.URL+"/careers")
		require.NoError(t, err)
		assert.Contains(t, content.Body, "/jobs/rendered-engineer")
	})

	t.Run("captures background JSON responses", func(t *testing.T) {
		content, err := f.Fetch(context.Background(), srv.URL+"/careers")
		require.NoError(t, err)
		require.NotEmpty(t, content.Captured)
		assert.Contains(t, content.Captured[0], "/jobs/api-engineer")
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/nope")
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.Fetch(ctx, srv.URL+"/careers")
		require.Error(t, err)
	})
}
