package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"foodcourt/internal/config"
	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
)

type stubFetcher struct {
	payload *menuservice.Payload
	err     error
}

func (s stubFetcher) FetchMenuData(ctx context.Context) (*menuservice.Payload, error) {
	return s.payload, s.err
}

func samplePayload() *menuservice.Payload {
	return &menuservice.Payload{Menus: []menu.RawItem{
		{RestaurantSlug: "alley", RestaurantName: "Wing Alley", Name: "Buffalo Wings", Price: 250},
		{RestaurantSlug: "sunset", RestaurantName: "Sunset Diner", Name: "Burger", Price: 8.99},
	}}
}

func TestRunPlain(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name    string
		fetcher stubFetcher
		query   string
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name:    "all restaurants",
			fetcher: stubFetcher{payload: samplePayload()},
			want:    []string{"Wing Alley", "Sunset Diner", "৳ 9", "2 restaurants | 2 items"},
		},
		{
			name:    "search",
			fetcher: stubFetcher{payload: samplePayload()},
			query:   " WING ",
			want:    []string{"Wing Alley", "Buffalo Wings"},
			notWant: []string{"Sunset Diner"},
		},
		{
			name:    "no results",
			fetcher: stubFetcher{payload: samplePayload()},
			query:   "Sushi",
			want:    []string{`No items found matching "Sushi"`},
		},
		{
			name:    "empty menu",
			fetcher: stubFetcher{payload: &menuservice.Payload{}},
			want:    []string{cfg.ErrorTitle, cfg.EmptyDataErrorMessage},
			wantErr: menu.ErrEmptyMenu,
		},
		{
			name:    "service down",
			fetcher: stubFetcher{err: menuservice.ErrServiceUnavailable},
			want:    []string{cfg.APIErrorMessage},
			wantErr: menuservice.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runPlain(context.Background(), &buf, tt.fetcher, cfg, tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Expected %q in:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("Did not expect %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodcourt.yaml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "init", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != config.DefaultConfig().APIURL {
		t.Errorf("Expected default API URL, got %q", cfg.APIURL)
	}

	// Refuses to overwrite
	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"config", "init", path})
	if err := root.Execute(); err == nil {
		t.Error("Expected an error for an existing file")
	}
}
