// Package app wires configuration, the API client, publishers and storage
// into the prospector runtime.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/config"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/logger"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/search"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/storage"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/publishers"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/searches"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/zoominfo"
)

// Prospector represents the prospect collector runtime. It manages the poll
// loop, coordinating between saved searches, the search service, and
// publishers. It also handles storage initialization and cleanup.
type Prospector struct {
	cfg           *config.Config
	searchReg     *searches.Registry
	fanout        *publishers.Fanout
	searchService *search.Service
	pollInterval  time.Duration
	log           logger.Logger
	store         storage.Store
}

// NewProspector builds a prospector runtime from config files.
func NewProspector(ctx context.Context, cfg *config.Config, log logger.Logger) (*Prospector, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	searchReg, err := searches.LoadRegistry(cfg.SearchesFile)
	if err != nil {
		return nil, fmt.Errorf("load searches registry: %w", err)
	}
	searchList := searchReg.All()
	searchIDs := make([]string, 0, len(searchList))
	for _, s := range searchList {
		searchIDs = append(searchIDs, s.ID)
	}
	log.InfoObj("searches registry loaded", "searches_meta", map[string]any{
		"count": len(searchIDs),
		"ids":   searchIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		RecordTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"record_ttl_seconds":       int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	client := zoominfo.New(cfg.ZoomInfoUsername, cfg.ZoomInfoPassword,
		zoominfo.WithBaseURL(cfg.ZoomInfoBaseURL),
		zoominfo.WithTimeout(cfg.HTTPTimeout),
		zoominfo.WithLogger(log),
	)
	log.InfoObj("zoominfo client configured", "client_config", map[string]any{
		"base_url": client.BaseURL(),
		"username": cfg.ZoomInfoUsername,
	})

	searchService := search.NewService(client, fanout, log, store)

	return &Prospector{
		cfg:           cfg,
		searchReg:     searchReg,
		fanout:        fanout,
		searchService: searchService,
		pollInterval:  cfg.PollInterval,
		log:           log,
		store:         store,
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (p *Prospector) Run(ctx context.Context) error {
	if p == nil || p.searchService == nil {
		return fmt.Errorf("prospector is not initialized")
	}
	defer p.closeStore()
	searchList := p.searchReg.All()
	if len(searchList) == 0 {
		p.log.WarnObj("no searches configured; prospector idle", "searches_file", p.cfg.SearchesFile)
		<-ctx.Done()
		return ctx.Err()
	}

	p.log.InfoObj("prospector loop starting", "prospector_state", map[string]any{
		"searches_count":   len(searchList),
		"publishers_count": p.fanout.Size(),
		"poll_interval":    p.pollInterval.String(),
	})

	if err := p.runOnce(ctx, searchList); err != nil {
		p.log.ErrorObj("initial poll failed", "error", err)
	}

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.InfoObj("prospector loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := p.runOnce(ctx, searchList); err != nil {
				p.log.ErrorObj("scheduled poll failed", "error", err)
			}
		}
	}
}

// runOnce performs a single pass across all saved searches.
func (p *Prospector) runOnce(ctx context.Context, searchList []searches.Search) error {
	start := time.Now()
	p.log.InfoObj("poll started", "poll_meta", map[string]any{
		"searches_count": len(searchList),
		"started_at":     start.UTC(),
	})
	if err := p.searchService.Run(ctx, searchList); err != nil {
		return err
	}
	p.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"searches_count": len(searchList),
		"elapsed_ms":     time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (p *Prospector) closeStore() {
	if p == nil || p.store == nil {
		return
	}
	if err := p.store.Close(); err != nil {
		p.log.ErrorObj("storage close failed", "error", err)
	}
}
