// Package search runs saved searches against the ZoomInfo API, extracts
// result records, drops already-seen ones, and fans the rest out to the
// configured publishers.
package search

import (
	"context"
	"crypto/sha1" //nolint:gosec // non-cryptographic id generation
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/domain"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/logger"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/storage"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/publishers"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/searches"
)

// Service coordinates one poll pass over all saved searches.
type Service struct {
	searcher Searcher
	fanout   EventPublisher
	log      logger.Logger
	store    storage.Store
}

// NewService wires the search service with its API client, publisher fanout
// and seen-record store.
func NewService(searcher Searcher, fanout EventPublisher, log logger.Logger, store storage.Store) *Service {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Service{
		searcher: searcher,
		fanout:   fanout,
		log:      log,
		store:    store,
	}
}

// Run executes a pass for all configured searches. Failures are collected per
// search so one broken search does not block the rest.
func (s *Service) Run(ctx context.Context, cfgs []searches.Search) error {
	if s == nil || s.searcher == nil {
		return fmt.Errorf("search service is not initialized")
	}
	if len(cfgs) == 0 {
		return fmt.Errorf("no searches configured")
	}

	errs := make([]error, 0, len(cfgs))
	for _, cfg := range cfgs {
		if err := s.runSearch(ctx, cfg); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("search run failed", "search_error", map[string]any{
				"search_id": cfg.ID,
				"error":     err.Error(),
			})
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) runSearch(ctx context.Context, cfg searches.Search) error {
	result, err := s.execute(ctx, cfg)
	if err != nil {
		return fmt.Errorf("execute search %s: %w", cfg.ID, err)
	}

	records := extractRecords(result, string(cfg.Kind))
	published, skipped, errs := s.dispatch(ctx, cfg, records)

	s.log.InfoObj("search run completed", "search_result", map[string]any{
		"search_id":         cfg.ID,
		"records_found":     len(records),
		"records_published": published,
		"records_skipped":   skipped,
	})
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) execute(ctx context.Context, cfg searches.Search) (any, error) {
	switch cfg.Kind {
	case searches.KindContact:
		if cfg.Contact == nil {
			return nil, fmt.Errorf("search %s has no contact query", cfg.ID)
		}
		return s.searcher.SearchContacts(ctx, *cfg.Contact)
	case searches.KindCompany:
		if cfg.Company == nil {
			return nil, fmt.Errorf("search %s has no company query", cfg.ID)
		}
		return s.searcher.SearchCompanies(ctx, *cfg.Company)
	default:
		return nil, fmt.Errorf("search %s has unsupported kind %q", cfg.ID, cfg.Kind)
	}
}

// dispatch publishes records that were not seen before and marks them only
// after at least one sink accepted the event.
func (s *Service) dispatch(ctx context.Context, cfg searches.Search, records []domain.Record) (published, skipped int, errs []error) {
	for _, rec := range records {
		key := rec.Kind + ":" + rec.ID

		if s.store != nil {
			seen, err := s.store.SeenRecord(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("check record %s: %w", key, err))
				continue
			}
			if seen {
				skipped++
				continue
			}
		}

		evt := publishers.NewEvent(cfg.ID, cfg.Name, rec.Kind, rec)
		count, err := s.fanout.Publish(ctx, evt)
		if err != nil {
			errs = append(errs, fmt.Errorf("publish record %s: %w", key, err))
		}
		if count == 0 {
			continue
		}
		published++

		if s.store != nil {
			if err := s.store.MarkRecord(key); err != nil {
				errs = append(errs, fmt.Errorf("mark record %s: %w", key, err))
			}
		}
	}
	return published, skipped, errs
}

// extractRecords peels records out of the open-ended JSON response. The API
// returns {"data": [...]} with one object per match; anything else yields no
// records.
func extractRecords(result any, kind string) []domain.Record {
	body, ok := result.(map[string]any)
	if !ok {
		return nil
	}
	data, ok := body["data"].([]any)
	if !ok {
		return nil
	}

	records := make([]domain.Record, 0, len(data))
	for _, item := range data {
		attrs, ok := item.(map[string]any)
		if !ok {
			continue
		}
		records = append(records, domain.Record{
			ID:         recordID(attrs),
			Kind:       kind,
			Attributes: attrs,
		})
	}
	return records
}

// recordID takes the record's own id when present and falls back to a
// content fingerprint so dedupe still works for id-less payloads.
func recordID(attrs map[string]any) string {
	switch id := attrs["id"].(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case json.Number:
		return id.String()
	}
	return fingerprint(attrs)
}

func fingerprint(attrs map[string]any) string {
	raw, err := json.Marshal(attrs)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", attrs))
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
