// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestMemoryStore_ItemsAreCopied(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	item := sampleItem()
	_, err := m.CreateItem(ctx, item)
	require.NoError(t, err)

	item.Tags[0] = "mutated"
	got, err := m.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "dev", got.Tags[0])

	_, err = m.CreateItem(ctx, sampleItem())
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryStore_ListItems(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	folder := "f1"
	mk := func(id, title string, mutate func(*models.VaultItem)) {
		item := sampleItem()
		item.ID = id
		item.Title = title
		if mutate != nil {
			mutate(&item)
		}
		_, err := m.CreateItem(ctx, item)
		require.NoError(t, err)
	}

	mk("a", "Bank", func(i *models.VaultItem) { i.FolderID = &folder })
	mk("b", "GitHub", nil)
	mk("c", "Gitlab", func(i *models.VaultItem) { i.IsTrashed = true; i.TrashedAt = &testNow })
	mk("d", "Notes", func(i *models.VaultItem) { i.ItemType = models.ItemTypeNote; i.Tags = []string{"home"} })
	mk("e", "Other owner", func(i *models.VaultItem) { i.UserID = "owner-2" })

	ids := func(items []models.VaultItem) []string {
		out := make([]string, 0, len(items))
		for _, i := range items {
			out = append(out, i.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.ItemFilter
		want   []string
	}{
		{"default hides trash", models.ItemFilter{UserID: "owner-1"}, []string{"a", "b", "d"}},
		{"include trashed", models.ItemFilter{UserID: "owner-1", IncludeTrashed: true}, []string{"a", "b", "c", "d"}},
		{"only trashed", models.ItemFilter{UserID: "owner-1", OnlyTrashed: true}, []string{"c"}},
		{"folder", models.ItemFilter{UserID: "owner-1", FolderID: &folder}, []string{"a"}},
		{"type", models.ItemFilter{UserID: "owner-1", ItemType: models.ItemTypeNote}, []string{"d"}},
		{"tag", models.ItemFilter{UserID: "owner-1", Tag: "home"}, []string{"d"}},
		{"query is case insensitive", models.ItemFilter{UserID: "owner-1", Query: "GIT", IncludeTrashed: true}, []string{"b", "c"}},
		{"other owner", models.ItemFilter{UserID: "owner-2"}, []string{"e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := m.ListItems(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestMemoryStore_PurgeItemRevokesGrantsAndLinks(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	item := sampleItem()
	_, err := m.CreateItem(ctx, item)
	require.NoError(t, err)

	_, err = m.CreateShare(ctx, models.SharedItem{
		ID: "s1", ItemID: item.ID, OwnerID: item.UserID, SharedWithID: "friend", Permission: models.PermissionView, CreatedAt: testNow,
	})
	require.NoError(t, err)

	link := sampleLink()
	link.ItemID = &item.ID
	_, err = m.CreateLink(ctx, link)
	require.NoError(t, err)

	later := testNow.Add(time.Minute)
	require.NoError(t, m.PurgeItem(ctx, item.ID, later))

	_, err = m.GetItem(ctx, item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	active, err := m.ListActiveShares(ctx, item.ID, "friend")
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := m.GetLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LinkStateRevoked, got.State(later))

	require.ErrorIs(t, m.PurgeItem(ctx, item.ID, later), ErrNotFound)
}

func TestMemoryStore_DeleteFolderDetaches(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	parent := models.Folder{ID: "p", UserID: "owner-1", Name: "Parent", CreatedAt: testNow, UpdatedAt: testNow}
	child := models.Folder{ID: "c", UserID: "owner-1", Name: "Child", ParentID: ptr("p"), CreatedAt: testNow, UpdatedAt: testNow}
	for _, f := range []models.Folder{parent, child} {
		_, err := m.CreateFolder(ctx, f)
		require.NoError(t, err)
	}

	item := sampleItem()
	item.FolderID = ptr("p")
	_, err := m.CreateItem(ctx, item)
	require.NoError(t, err)

	require.NoError(t, m.DeleteFolder(ctx, "p", testNow))

	gotChild, err := m.GetFolder(ctx, "c")
	require.NoError(t, err)
	assert.Nil(t, gotChild.ParentID)

	gotItem, err := m.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem.FolderID)

	require.ErrorIs(t, m.DeleteFolder(ctx, "p", testNow), ErrNotFound)
}

func TestMemoryStore_ShareUniqueness(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	share := models.SharedItem{ID: "s1", ItemID: "i", OwnerID: "o", SharedWithID: "f", Permission: models.PermissionView, CreatedAt: testNow}
	_, err := m.CreateShare(ctx, share)
	require.NoError(t, err)

	dup := share
	dup.ID = "s2"
	_, err = m.CreateShare(ctx, dup)
	require.ErrorIs(t, err, ErrAlreadyExists)

	require.NoError(t, m.RevokeShare(ctx, "s1", testNow))
	require.ErrorIs(t, m.RevokeShare(ctx, "s1", testNow), ErrAlreadyRevoked)

	// a revoked grant no longer blocks a fresh one
	_, err = m.CreateShare(ctx, dup)
	require.NoError(t, err)
}

func TestMemoryStore_ConsumeLink(t *testing.T) {
	ctx := testContext()

	t.Run("expiry boundary is inclusive", func(t *testing.T) {
		m := NewMemoryStore()
		link := sampleLink()
		_, err := m.CreateLink(ctx, link)
		require.NoError(t, err)

		got, err := m.ConsumeLink(ctx, link.ID, link.ExpiresAt, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, got.CurrentUses)
	})

	t.Run("expired", func(t *testing.T) {
		m := NewMemoryStore()
		link := sampleLink()
		_, err := m.CreateLink(ctx, link)
		require.NoError(t, err)

		_, err = m.ConsumeLink(ctx, link.ID, link.ExpiresAt.Add(time.Nanosecond), nil)
		require.ErrorIs(t, err, ErrLinkNotConsumable)
	})

	t.Run("revoked", func(t *testing.T) {
		m := NewMemoryStore()
		link := sampleLink()
		_, err := m.CreateLink(ctx, link)
		require.NoError(t, err)
		require.NoError(t, m.RevokeLink(ctx, link.ID, testNow))
		require.ErrorIs(t, m.RevokeLink(ctx, link.ID, testNow), ErrAlreadyRevoked)

		_, err = m.ConsumeLink(ctx, link.ID, testNow, nil)
		require.ErrorIs(t, err, ErrLinkNotConsumable)
	})

	t.Run("unknown", func(t *testing.T) {
		m := NewMemoryStore()
		_, err := m.ConsumeLink(ctx, "nope", testNow, nil)
		require.ErrorIs(t, err, ErrLinkNotConsumable)
	})

	t.Run("unlimited multi-use", func(t *testing.T) {
		m := NewMemoryStore()
		link := sampleLink()
		link.LinkType = models.LinkTypeMultiUse
		link.MaxUses = nil
		_, err := m.CreateLink(ctx, link)
		require.NoError(t, err)

		for i := 1; i <= 5; i++ {
			got, err := m.ConsumeLink(ctx, link.ID, testNow, nil)
			require.NoError(t, err)
			assert.Equal(t, i, got.CurrentUses)
		}
	})
}

func TestMemoryStore_ConsumeLink_ConcurrentOneTime(t *testing.T) {
	m := NewMemoryStore()
	ctx := testContext()

	link := sampleLink()
	_, err := m.CreateLink(ctx, link)
	require.NoError(t, err)

	const workers = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		failures  atomic.Int32
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			item := sampleItem()
			item.ID = fmt.Sprintf("submitted-%d", i)
			item.SourceLinkID = &link.ID

			if _, err := m.ConsumeLink(ctx, link.ID, testNow, &item); err != nil {
				assert.ErrorIs(t, err, ErrLinkNotConsumable)
				failures.Add(1)
				return
			}
			successes.Add(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(workers-1), failures.Load())

	got, err := m.GetLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentUses)
	assert.Equal(t, models.LinkStateExhausted, got.State(testNow))

	submitted, err := m.ListItems(ctx, models.ItemFilter{UserID: link.OwnerID, SourceLinkID: &link.ID})
	require.NoError(t, err)
	assert.Len(t, submitted, 1)
}
