// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// MemoryStore keeps every record in process memory. It implements all four
// repositories behind one mutex, which makes ConsumeLink and PurgeItem
// trivially atomic. Values are copied on the way in and out.
type MemoryStore struct {
	mu      sync.Mutex
	items   map[string]models.VaultItem
	folders map[string]models.Folder
	shares  map[string]models.SharedItem
	links   map[string]models.CollectionLink
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:   make(map[string]models.VaultItem),
		folders: make(map[string]models.Folder),
		shares:  make(map[string]models.SharedItem),
		links:   make(map[string]models.CollectionLink),
	}
}

// ---------------------------------------------------------------------------
// VaultItemRepository
// ---------------------------------------------------------------------------

func (m *MemoryStore) CreateItem(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; ok {
		return models.VaultItem{}, ErrAlreadyExists
	}
	m.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (m *MemoryStore) GetItem(_ context.Context, id string) (models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return models.VaultItem{}, ErrNotFound
	}
	return cloneItem(item), nil
}

func (m *MemoryStore) ListItems(_ context.Context, filter models.ItemFilter) ([]models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	items := make([]models.VaultItem, 0)
	for _, item := range m.items {
		if !matchesFilter(item, filter, query) {
			continue
		}
		items = append(items, cloneItem(item))
	}

	sortItems(items)
	return items, nil
}

func (m *MemoryStore) ListItemsByIDs(_ context.Context, ids []string) ([]models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]models.VaultItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			items = append(items, cloneItem(item))
		}
	}

	sortItems(items)
	return items, nil
}

func (m *MemoryStore) UpdateItem(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[item.ID]
	if !ok {
		return models.VaultItem{}, ErrNotFound
	}

	stored.Title = item.Title
	stored.EncryptedData = item.EncryptedData
	stored.FolderID = clonePtr(item.FolderID)
	stored.Tags = slices.Clone(item.Tags)
	stored.IsTrashed = item.IsTrashed
	stored.TrashedAt = clonePtr(item.TrashedAt)
	stored.UpdatedAt = item.UpdatedAt
	m.items[item.ID] = stored

	return cloneItem(stored), nil
}

func (m *MemoryStore) TouchItem(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	item.LastAccessedAt = &at
	m.items[id] = item
	return nil
}

func (m *MemoryStore) PurgeItem(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)

	for shareID, share := range m.shares {
		if share.ItemID == id && share.RevokedAt == nil {
			share.RevokedAt = &at
			m.shares[shareID] = share
		}
	}
	for linkID, link := range m.links {
		if link.ItemID != nil && *link.ItemID == id && link.RevokedAt == nil {
			link.RevokedAt = &at
			m.links[linkID] = link
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// FolderRepository
// ---------------------------------------------------------------------------

func (m *MemoryStore) CreateFolder(_ context.Context, folder models.Folder) (models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.folders[folder.ID]; ok {
		return models.Folder{}, ErrAlreadyExists
	}
	folder.ParentID = clonePtr(folder.ParentID)
	m.folders[folder.ID] = folder
	return folder, nil
}

func (m *MemoryStore) GetFolder(_ context.Context, id string) (models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	folder, ok := m.folders[id]
	if !ok {
		return models.Folder{}, ErrNotFound
	}
	folder.ParentID = clonePtr(folder.ParentID)
	return folder, nil
}

func (m *MemoryStore) ListFolders(_ context.Context, userID string) ([]models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	folders := make([]models.Folder, 0)
	for _, folder := range m.folders {
		if folder.UserID == userID {
			folder.ParentID = clonePtr(folder.ParentID)
			folders = append(folders, folder)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})
	return folders, nil
}

func (m *MemoryStore) UpdateFolder(_ context.Context, folder models.Folder) (models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.folders[folder.ID]
	if !ok {
		return models.Folder{}, ErrNotFound
	}
	stored.Name = folder.Name
	stored.ParentID = clonePtr(folder.ParentID)
	stored.UpdatedAt = folder.UpdatedAt
	m.folders[folder.ID] = stored
	return stored, nil
}

func (m *MemoryStore) DeleteFolder(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.folders[id]; !ok {
		return ErrNotFound
	}

	for childID, child := range m.folders {
		if child.ParentID != nil && *child.ParentID == id {
			child.ParentID = nil
			child.UpdatedAt = at
			m.folders[childID] = child
		}
	}
	for itemID, item := range m.items {
		if item.FolderID != nil && *item.FolderID == id {
			item.FolderID = nil
			item.UpdatedAt = at
			m.items[itemID] = item
		}
	}

	delete(m.folders, id)
	return nil
}

// ---------------------------------------------------------------------------
// ShareRepository
// ---------------------------------------------------------------------------

func (m *MemoryStore) CreateShare(_ context.Context, share models.SharedItem) (models.SharedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shares[share.ID]; ok {
		return models.SharedItem{}, ErrAlreadyExists
	}
	for _, existing := range m.shares {
		if existing.IsActive() && existing.ItemID == share.ItemID && existing.SharedWithID == share.SharedWithID {
			return models.SharedItem{}, ErrAlreadyExists
		}
	}

	share.RevokedAt = clonePtr(share.RevokedAt)
	m.shares[share.ID] = share
	return share, nil
}

func (m *MemoryStore) GetShare(_ context.Context, id string) (models.SharedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	share, ok := m.shares[id]
	if !ok {
		return models.SharedItem{}, ErrNotFound
	}
	share.RevokedAt = clonePtr(share.RevokedAt)
	return share, nil
}

func (m *MemoryStore) ListSharesForItem(_ context.Context, itemID string) ([]models.SharedItem, error) {
	return m.selectShares(func(s models.SharedItem) bool {
		return s.ItemID == itemID
	}), nil
}

func (m *MemoryStore) ListActiveShares(_ context.Context, itemID, principalID string) ([]models.SharedItem, error) {
	return m.selectShares(func(s models.SharedItem) bool {
		return s.IsActive() && s.ItemID == itemID && s.SharedWithID == principalID
	}), nil
}

func (m *MemoryStore) ListSharedWith(_ context.Context, principalID string) ([]models.SharedItem, error) {
	return m.selectShares(func(s models.SharedItem) bool {
		return s.IsActive() && s.SharedWithID == principalID
	}), nil
}

func (m *MemoryStore) RevokeShare(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	share, ok := m.shares[id]
	if !ok {
		return ErrNotFound
	}
	if !share.IsActive() {
		return ErrAlreadyRevoked
	}
	share.RevokedAt = &at
	m.shares[id] = share
	return nil
}

func (m *MemoryStore) selectShares(keep func(models.SharedItem) bool) []models.SharedItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	shares := make([]models.SharedItem, 0)
	for _, share := range m.shares {
		if keep(share) {
			share.RevokedAt = clonePtr(share.RevokedAt)
			shares = append(shares, share)
		}
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].CreatedAt.Equal(shares[j].CreatedAt) {
			return shares[i].CreatedAt.Before(shares[j].CreatedAt)
		}
		return shares[i].ID < shares[j].ID
	})
	return shares
}

// ---------------------------------------------------------------------------
// CollectionLinkRepository
// ---------------------------------------------------------------------------

func (m *MemoryStore) CreateLink(_ context.Context, link models.CollectionLink) (models.CollectionLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.links[link.ID]; ok {
		return models.CollectionLink{}, ErrAlreadyExists
	}
	m.links[link.ID] = cloneLink(link)
	return cloneLink(link), nil
}

func (m *MemoryStore) GetLink(_ context.Context, id string) (models.CollectionLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[id]
	if !ok {
		return models.CollectionLink{}, ErrNotFound
	}
	return cloneLink(link), nil
}

func (m *MemoryStore) ListLinks(_ context.Context, ownerID string) ([]models.CollectionLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	links := make([]models.CollectionLink, 0)
	for _, link := range m.links {
		if link.OwnerID == ownerID {
			links = append(links, cloneLink(link))
		}
	}

	sort.Slice(links, func(i, j int) bool {
		if !links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].CreatedAt.After(links[j].CreatedAt)
		}
		return links[i].ID < links[j].ID
	})
	return links, nil
}

func (m *MemoryStore) RevokeLink(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[id]
	if !ok {
		return ErrNotFound
	}
	if link.RevokedAt != nil {
		return ErrAlreadyRevoked
	}
	link.RevokedAt = &at
	m.links[id] = link
	return nil
}

// ConsumeLink applies the same predicate as the SQL conditional update while
// holding the store mutex.
func (m *MemoryStore) ConsumeLink(_ context.Context, id string, now time.Time, item *models.VaultItem) (models.CollectionLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[id]
	if !ok || link.State(now) != models.LinkStateActive {
		return models.CollectionLink{}, ErrLinkNotConsumable
	}

	if item != nil {
		if _, exists := m.items[item.ID]; exists {
			return models.CollectionLink{}, ErrAlreadyExists
		}
		m.items[item.ID] = cloneItem(*item)
	}

	link.CurrentUses++
	m.links[id] = link
	return cloneLink(link), nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func matchesFilter(item models.VaultItem, filter models.ItemFilter, query string) bool {
	switch {
	case item.UserID != filter.UserID:
		return false
	case filter.FolderID != nil && (item.FolderID == nil || *item.FolderID != *filter.FolderID):
		return false
	case filter.ItemType != "" && item.ItemType != filter.ItemType:
		return false
	case filter.SourceLinkID != nil && (item.SourceLinkID == nil || *item.SourceLinkID != *filter.SourceLinkID):
		return false
	case filter.OnlyTrashed && !item.IsTrashed:
		return false
	case !filter.OnlyTrashed && !filter.IncludeTrashed && item.IsTrashed:
		return false
	case filter.Tag != "" && !slices.Contains(item.Tags, filter.Tag):
		return false
	case query != "" && !strings.Contains(strings.ToLower(item.Title), query):
		return false
	}
	return true
}

func sortItems(items []models.VaultItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].ID < items[j].ID
	})
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneItem(item models.VaultItem) models.VaultItem {
	item.FolderID = clonePtr(item.FolderID)
	item.Tags = slices.Clone(item.Tags)
	item.TrashedAt = clonePtr(item.TrashedAt)
	item.SourceLinkID = clonePtr(item.SourceLinkID)
	item.SubmitterID = clonePtr(item.SubmitterID)
	item.LastAccessedAt = clonePtr(item.LastAccessedAt)
	return item
}

func cloneLink(link models.CollectionLink) models.CollectionLink {
	link.ItemID = clonePtr(link.ItemID)
	link.AllowedFields = slices.Clone(link.AllowedFields)
	link.MaxUses = clonePtr(link.MaxUses)
	link.PassphraseHash = clonePtr(link.PassphraseHash)
	link.RevokedAt = clonePtr(link.RevokedAt)
	return link
}
