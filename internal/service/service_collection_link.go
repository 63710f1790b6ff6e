// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// fieldExpiresAt names the link expiry in validation errors.
const fieldExpiresAt = "expiresAt"

type collectionLinkService struct {
	links     store.CollectionLinkRepository
	items     store.VaultItemRepository
	access    accessResolver
	cipher    crypto.CipherService
	hasher    crypto.PassphraseHasher
	validator *validators.VaultValidator
	ttl       config.Links
	verifies  *semaphore.Weighted
	deps      Deps
}

func NewCollectionLinkService(deps Deps, ttl config.Links) CollectionLinkService {
	return &collectionLinkService{
		links:     deps.Storages.Links,
		items:     deps.Storages.Items,
		access:    newAccessResolver(deps.Storages),
		cipher:    deps.Cipher,
		hasher:    deps.Hasher,
		validator: deps.Validator,
		ttl:       ttl,
		verifies:  semaphore.NewWeighted(int64(max(ttl.MaxConcurrentVerifies, 1))),
		deps:      deps,
	}
}

func (s *collectionLinkService) Create(ctx context.Context, actor models.Principal, req models.NewCollectionLink) (models.CollectionLink, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAuthenticated() {
		return models.CollectionLink{}, ErrPermissionDenied
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CollectionLink{}, err
	}

	now := s.deps.now()
	expiresAt, err := s.expiry(req.ExpiresAt, now)
	if err != nil {
		return models.CollectionLink{}, err
	}

	if req.ItemID != nil {
		item, _, err := s.access.require(ctx, actor, *req.ItemID, models.PermissionOwner)
		if err != nil {
			return models.CollectionLink{}, err
		}
		if item.IsTrashed {
			return models.CollectionLink{}, ErrItemTrashed
		}
		if item.ItemType != req.ItemType {
			return models.CollectionLink{}, validators.NewFieldError(validators.FieldItemType, fmt.Sprintf("must match the linked %s item", item.ItemType))
		}
	}

	maxUses := req.MaxUses
	if req.LinkType == models.LinkTypeOneTime && maxUses == nil {
		one := 1
		maxUses = &one
	}

	link := models.CollectionLink{
		ID:               s.deps.IDs.Generate(),
		OwnerID:          actor.ID,
		ItemID:           req.ItemID,
		LinkType:         req.LinkType,
		ItemType:         req.ItemType,
		AllowedFields:    dedupe(req.AllowedFields),
		ExpiresAt:        expiresAt,
		MaxUses:          maxUses,
		RequiresAuth:     req.RequiresAuth,
		WebsiteURL:       req.WebsiteURL,
		SiteName:         req.SiteName,
		SiteTagline:      req.SiteTagline,
		CustomFaviconURL: req.CustomFaviconURL,
		CreatedAt:        now,
	}

	if req.Passphrase != "" {
		hash, err := s.hasher.Hash(req.Passphrase)
		if err != nil {
			log.Err(err).Str("func", "collectionLinkService.Create").Msg("failed to hash passphrase")
			return models.CollectionLink{}, fmt.Errorf("error hashing passphrase: %w", err)
		}
		link.PassphraseHash = &hash
	}

	created, err := s.links.CreateLink(ctx, link)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkService.Create").Str("link_id", link.ID).Msg("failed to store link")
		return models.CollectionLink{}, fmt.Errorf("error storing link: %w", err)
	}

	log.Info().
		Str("func", "collectionLinkService.Create").
		Str("link_id", created.ID).
		Str("link_type", string(created.LinkType)).
		Bool("disclosure", created.IsDisclosure()).
		Time("expires_at", created.ExpiresAt).
		Msg("collection link created")
	return created, nil
}

func (s *collectionLinkService) Revoke(ctx context.Context, actor models.Principal, linkID string) error {
	log := logger.FromContext(ctx)

	link, err := s.getLink(ctx, linkID)
	if err != nil {
		return err
	}
	if !actor.IsAuthenticated() || link.OwnerID != actor.ID {
		return ErrPermissionDenied
	}
	if link.RevokedAt != nil {
		return ErrLinkRevoked
	}

	err = s.links.RevokeLink(ctx, linkID, s.deps.now())
	if errors.Is(err, store.ErrAlreadyRevoked) {
		return ErrLinkRevoked
	}
	if err != nil {
		log.Err(err).Str("func", "collectionLinkService.Revoke").Str("link_id", linkID).Msg("failed to revoke link")
		return fmt.Errorf("error revoking link: %w", err)
	}

	log.Info().Str("func", "collectionLinkService.Revoke").Str("link_id", linkID).Msg("collection link revoked")
	return nil
}

func (s *collectionLinkService) List(ctx context.Context, actor models.Principal) ([]models.CollectionLink, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrPermissionDenied
	}

	links, err := s.links.ListLinks(ctx, actor.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "collectionLinkService.List").Msg("failed to list links")
		return nil, fmt.Errorf("error listing links: %w", err)
	}
	return links, nil
}

func (s *collectionLinkService) Status(ctx context.Context, linkID string) (models.LinkStatus, error) {
	link, err := s.getLink(ctx, linkID)
	if err != nil {
		return models.LinkStatus{}, err
	}

	status := models.LinkStatus{
		ID:                 link.ID,
		State:              link.State(s.deps.now()),
		ItemType:           link.ItemType,
		AllowedFields:      slices.Clone(link.AllowedFields),
		RequiresPassphrase: link.HasPassphrase(),
		RequiresAuth:       link.RequiresAuth,
		WebsiteURL:         link.WebsiteURL,
		SiteName:           link.SiteName,
		SiteTagline:        link.SiteTagline,
		CustomFaviconURL:   link.CustomFaviconURL,
	}

	// Submit and Open answer "unavailable" for a wrong passphrase, an
	// expired link and a revoked one alike, so the status of a passphrase
	// link must not tell those apart either.
	if !link.HasPassphrase() {
		status.ExpiresAt = &link.ExpiresAt
	} else if status.State != models.LinkStateExhausted {
		status.State = models.LinkStateLocked
	}
	return status, nil
}

func (s *collectionLinkService) Submit(ctx context.Context, actor models.Principal, linkID string, submission models.LinkSubmission) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	link, err := s.getLink(ctx, linkID)
	if err != nil {
		return models.VaultItem{}, err
	}
	if link.IsDisclosure() {
		return models.VaultItem{}, ErrWrongLinkKind
	}

	now := s.deps.now()
	if err = s.checkConsumable(ctx, link, actor, submission.Passphrase, now); err != nil {
		return models.VaultItem{}, err
	}

	scoped := scopeFields(submission.Fields, link.AllowedFields)
	payload, err := s.buildPayload(ctx, link.ItemType, scoped)
	if err != nil {
		return models.VaultItem{}, err
	}

	title := strings.TrimSpace(submission.Title)
	if title == "" {
		title = defaultSubmissionTitle(link)
	}
	if err = s.validator.Validate(ctx, models.NewItem{Title: title, Payload: payload}, validators.FieldTitle, validators.FieldPayload); err != nil {
		return models.VaultItem{}, err
	}

	encrypted, err := s.cipher.EncryptPayload(payload, nil)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkService.Submit").Str("link_id", linkID).Msg("failed to encrypt submission")
		return models.VaultItem{}, fmt.Errorf("error encrypting submission: %w", err)
	}

	item := models.VaultItem{
		ID:            s.deps.IDs.Generate(),
		UserID:        link.OwnerID,
		ItemType:      link.ItemType,
		Title:         title,
		EncryptedData: encrypted,
		SourceLinkID:  &link.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if actor.IsAuthenticated() {
		submitter := actor.ID
		item.SubmitterID = &submitter
	}

	consumed, err := s.links.ConsumeLink(ctx, linkID, now, &item)
	if err != nil {
		return models.VaultItem{}, s.consumeError(ctx, linkID, now, err)
	}

	log.Info().
		Str("func", "collectionLinkService.Submit").
		Str("link_id", linkID).
		Str("item_id", item.ID).
		Int("current_uses", consumed.CurrentUses).
		Int("dropped_fields", len(submission.Fields)-len(scoped)).
		Msg("collection link submission stored")
	return item, nil
}

func (s *collectionLinkService) Open(ctx context.Context, actor models.Principal, linkID, passphrase string) (models.DisclosedItem, error) {
	log := logger.FromContext(ctx)

	link, err := s.getLink(ctx, linkID)
	if err != nil {
		return models.DisclosedItem{}, err
	}
	if !link.IsDisclosure() {
		return models.DisclosedItem{}, ErrWrongLinkKind
	}

	now := s.deps.now()
	if err = s.checkConsumable(ctx, link, actor, passphrase, now); err != nil {
		return models.DisclosedItem{}, err
	}

	item, err := s.items.GetItem(ctx, *link.ItemID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && item.IsTrashed) {
		return models.DisclosedItem{}, linkUnusable(ReasonRevoked)
	}
	if err != nil {
		log.Err(err).Str("func", "collectionLinkService.Open").Str("link_id", linkID).Msg("failed to load linked item")
		return models.DisclosedItem{}, fmt.Errorf("error loading linked item: %w", err)
	}

	// the use is spent before any plaintext exists
	if _, err = s.links.ConsumeLink(ctx, linkID, now, nil); err != nil {
		return models.DisclosedItem{}, s.consumeError(ctx, linkID, now, err)
	}

	payload, err := decryptPayload(s.cipher, item)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkService.Open").Str("link_id", linkID).Msg("failed to decrypt linked item")
		return models.DisclosedItem{}, err
	}

	fields, err := payloadFields(payload)
	if err != nil {
		return models.DisclosedItem{}, err
	}

	if err = s.items.TouchItem(ctx, item.ID, now); err != nil {
		log.Err(err).Str("func", "collectionLinkService.Open").Str("item_id", item.ID).Msg("failed to stamp last access")
	}

	log.Info().Str("func", "collectionLinkService.Open").Str("link_id", linkID).Str("item_id", item.ID).Msg("disclosure link opened")
	return models.DisclosedItem{
		ItemID:   item.ID,
		ItemType: item.ItemType,
		Title:    item.Title,
		Fields:   scopeFields(fields, link.AllowedFields),
	}, nil
}

func (s *collectionLinkService) getLink(ctx context.Context, linkID string) (models.CollectionLink, error) {
	link, err := s.links.GetLink(ctx, linkID)
	if errors.Is(err, store.ErrNotFound) {
		return models.CollectionLink{}, ErrLinkNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "collectionLinkService.getLink").Str("link_id", linkID).Msg("failed to load link")
		return models.CollectionLink{}, fmt.Errorf("error loading link: %w", err)
	}
	return link, nil
}

// checkConsumable applies the consumption rules in order: revoked, expired,
// exhausted, passphrase, authentication. The store repeats the first three
// atomically when the use is recorded.
func (s *collectionLinkService) checkConsumable(ctx context.Context, link models.CollectionLink, actor models.Principal, passphrase string, now time.Time) error {
	reject := func(reason LinkUnusableReason) error {
		logger.FromContext(ctx).Info().
			Str("func", "collectionLinkService.checkConsumable").
			Str("link_id", link.ID).
			Str("reason", string(reason)).
			Msg("link consumption rejected")
		return linkUnusable(reason)
	}

	// The passphrase is verified before the state is looked at, so a dead
	// passphrase link takes as long to refuse as a live one.
	matched := true
	if link.HasPassphrase() {
		ok, err := s.verifyPassphrase(ctx, passphrase, *link.PassphraseHash)
		if err != nil {
			return fmt.Errorf("error verifying passphrase: %w", err)
		}
		matched = ok
	}

	switch link.State(now) {
	case models.LinkStateRevoked:
		return reject(ReasonRevoked)
	case models.LinkStateExpired:
		return reject(ReasonExpired)
	case models.LinkStateExhausted:
		return reject(ReasonExhausted)
	}

	if !matched {
		return reject(ReasonPassphraseMismatch)
	}

	if link.RequiresAuth && !actor.IsAuthenticated() {
		return reject(ReasonAuthRequired)
	}
	return nil
}

// verifyPassphrase runs the hasher under the process-wide limit on
// concurrent passphrase checks.
func (s *collectionLinkService) verifyPassphrase(ctx context.Context, passphrase, encoded string) (bool, error) {
	if err := s.verifies.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer s.verifies.Release(1)

	return s.hasher.Verify(passphrase, encoded)
}

// consumeError maps a failed ConsumeLink. A link that stopped matching the
// conditional increment is reloaded to name the reason; one that still
// reads active lost the race for its last use.
func (s *collectionLinkService) consumeError(ctx context.Context, linkID string, now time.Time, err error) error {
	log := logger.FromContext(ctx)

	if !errors.Is(err, store.ErrLinkNotConsumable) {
		log.Err(err).Str("func", "collectionLinkService.consumeError").Str("link_id", linkID).Msg("failed to consume link")
		return fmt.Errorf("error consuming link: %w", err)
	}

	link, getErr := s.links.GetLink(ctx, linkID)
	if getErr != nil {
		return linkUnusable(ReasonRevoked)
	}

	switch link.State(now) {
	case models.LinkStateRevoked:
		return linkUnusable(ReasonRevoked)
	case models.LinkStateExpired:
		return linkUnusable(ReasonExpired)
	default:
		return linkUnusable(ReasonExhausted)
	}
}

// expiry resolves the requested deadline against the configured lifetimes.
func (s *collectionLinkService) expiry(requested, now time.Time) (time.Time, error) {
	if requested.IsZero() {
		return now.Add(s.ttl.DefaultTTL), nil
	}

	requested = requested.UTC()
	if !requested.After(now) {
		return time.Time{}, validators.NewFieldError(fieldExpiresAt, "must be in the future")
	}
	if s.ttl.MaxTTL > 0 && requested.After(now.Add(s.ttl.MaxTTL)) {
		return time.Time{}, validators.NewFieldError(fieldExpiresAt, fmt.Sprintf("must be within %s", s.ttl.MaxTTL))
	}
	return requested, nil
}

// buildPayload validates scoped submission fields and decodes them into the
// typed payload of itemType.
func (s *collectionLinkService) buildPayload(ctx context.Context, itemType models.ItemType, fields map[string]any) (models.Payload, error) {
	if err := s.validator.Payloads().ValidateDocument(ctx, itemType, fields); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validators.ErrValidation, err)
	}
	payload, err := models.DecodePayload(itemType, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validators.ErrValidation, err)
	}
	return payload, nil
}

// scopeFields keeps the entries of fields named in allowed. Everything else
// is dropped without error.
func scopeFields(fields map[string]any, allowed []string) map[string]any {
	scoped := make(map[string]any, len(allowed))
	for _, name := range allowed {
		if v, ok := fields[name]; ok {
			scoped[name] = v
		}
	}
	return scoped
}

// payloadFields flattens a payload into its JSON field map.
func payloadFields(payload models.Payload) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding payload: %w", err)
	}
	var fields map[string]any
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("error decoding payload: %w", err)
	}
	return fields, nil
}

func defaultSubmissionTitle(link models.CollectionLink) string {
	if link.SiteName != "" {
		return fmt.Sprintf("%s submission via %s", link.ItemType, link.SiteName)
	}
	return fmt.Sprintf("%s submission", link.ItemType)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
