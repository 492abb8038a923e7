package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/realtor/pkg/config"
	"github.com/umputun/realtor/pkg/favorites"
	"github.com/umputun/realtor/pkg/listing"
	"github.com/umputun/realtor/server"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_BadStorage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{DBPath: "file:/non/existent/dir/realtor.db?mode=rw", Listen: "127.0.0.1:0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open storage")
}

func TestRun_ServerStartStop(t *testing.T) {
	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/properties/featured":
			_, _ = w.Write([]byte(`[{"id": 42, "title": "Дом в Чолпон-Ате", "price": 99000, "type": "house", "operation": "sale",
				"location": "Чолпон-Ата", "rooms": 4, "area": 150, "image": "", "featured": true}]`))
		case "/leads":
			_, _ = w.Write([]byte(`{"success": true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer crm.Close()

	t.Setenv("DB_PATH", t.TempDir())
	t.Setenv("CRM_URL", crm.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: "testdata/test_config.yml"})
	}()

	waitForServer(t, "127.0.0.1:18765")

	resp, err := http.Get("http://127.0.0.1:18765/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	resp, err = http.Get("http://127.0.0.1:18765/api/v1/listings/featured")
	require.NoError(t, err)
	var listings []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listings))
	resp.Body.Close()
	require.Len(t, listings, 1)
	assert.Equal(t, "Дом в Чолпон-Ате", listings[0]["title"])

	resp, err = http.Post("http://127.0.0.1:18765/api/v1/leads", "application/json", strings.NewReader(`{"name": "test"}`))
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.JSONEq(t, `{"delivered": true, "stored": false, "message": "Мы скоро вам перезвоним!"}`, string(body))

	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestRun_DemoMode(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_txlock=immediate", filepath.Join(t.TempDir(), "demo.db"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Listen: addr, DBPath: dsn})
	}()

	waitForServer(t, addr)

	// favorites survive in storage
	resp, err := http.Post("http://"+addr+"/api/v1/favorites/2", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get("http://" + addr + "/api/v1/listings/featured")
	require.NoError(t, err)
	var listings []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listings))
	resp.Body.Close()
	require.Len(t, listings, 2)
	assert.Equal(t, false, listings[0]["favorite"])
	assert.Equal(t, true, listings[1]["favorite"])

	// lead without CRM is kept locally
	resp, err = http.Post("http://"+addr+"/api/v1/leads", "application/json", strings.NewReader(`{"name": "offline"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.JSONEq(t, `{"delivered": false, "stored": true, "message": "Заявка сохранена"}`, string(body))

	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestWatchStorage(t *testing.T) {
	t.Run("stops cleanly on cancel", func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- watchStorage(ctx, pingFunc(func(context.Context) error {
				calls.Add(1)
				return nil
			}), 5*time.Millisecond, 3)
		}()

		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("watcher didn't stop")
		}
	})

	t.Run("fails after consecutive errors", func(t *testing.T) {
		var calls atomic.Int32
		err := watchStorage(context.Background(), pingFunc(func(context.Context) error {
			calls.Add(1)
			return errors.New("database is closed")
		}), time.Millisecond, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage unavailable: database is closed")
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("success resets failure count", func(t *testing.T) {
		var calls atomic.Int32
		err := watchStorage(context.Background(), pingFunc(func(context.Context) error {
			n := calls.Add(1)
			if n%2 == 0 && n < 10 {
				return nil
			}
			return errors.New("busy")
		}), time.Millisecond, 2)
		require.Error(t, err)
		assert.Equal(t, int32(10), calls.Load())
	})
}

func TestRun_StorageFailureStopsServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	cfg := config.Default()
	cfg.Server.Listen = addr

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv := server.New(cfg, server.Params{Listings: listing.NewRepository(nil), Favorites: favorites.New(ctx, nil)})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		return watchStorage(gctx, pingFunc(func(context.Context) error { return errors.New("disk gone") }), 10*time.Millisecond, 2)
	})

	err = g.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable: disk gone")
	assert.NoError(t, ctx.Err(), "group stopped by the watcher, not by timeout")
}

func waitForServer(t *testing.T, addr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 50*time.Millisecond)
}
