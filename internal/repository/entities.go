// Package repository gives the orchestrator typed access to the entity
// tables over the KV document store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/domain"
	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/store"
)

// Entity table names, as created in the target platform.
const (
	TablePersons        = "Persons"
	TableContactDetails = "ContactDetails"
	TableTenures        = "TenureInformation"
	TableActivities     = "ActivityHistory"
	TableAssets         = "Assets"
)

type Entities struct {
	kv store.KV
}

func NewEntities(kv store.KV) *Entities { return &Entities{kv: kv} }

func key(table, id string) string { return table + ":" + id }

// getDoc reads and decodes one document. A miss returns (nil, nil):
// absence is the expected outcome the orchestrator branches on.
func getDoc[T any](ctx context.Context, kv store.KV, table, id string) (*T, error) {
	raw, err := kv.Get(ctx, key(table, id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s %s: %w", table, id, err)
	}
	var doc T
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", table, id, err)
	}
	return &doc, nil
}

func putDoc[T any](ctx context.Context, kv store.KV, table, id string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", table, id, err)
	}
	if err := kv.Set(ctx, key(table, id), string(raw)); err != nil {
		return fmt.Errorf("put %s %s: %w", table, id, err)
	}
	return nil
}

func (e *Entities) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	return getDoc[domain.Person](ctx, e.kv, TablePersons, id)
}

func (e *Entities) PutPerson(ctx context.Context, p domain.Person) error {
	return putDoc(ctx, e.kv, TablePersons, p.ID, p)
}

func (e *Entities) GetTenure(ctx context.Context, id string) (*domain.Tenure, error) {
	return getDoc[domain.Tenure](ctx, e.kv, TableTenures, id)
}

func (e *Entities) PutTenure(ctx context.Context, t domain.Tenure) error {
	return putDoc(ctx, e.kv, TableTenures, t.ID, t)
}

func (e *Entities) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return getDoc[domain.Asset](ctx, e.kv, TableAssets, id)
}

func (e *Entities) PutAsset(ctx context.Context, a domain.Asset) error {
	return putDoc(ctx, e.kv, TableAssets, a.ID, a)
}

func (e *Entities) PutContactDetail(ctx context.Context, cd domain.ContactDetail) error {
	return putDoc(ctx, e.kv, TableContactDetails, cd.ID, cd)
}

func (e *Entities) PutActivity(ctx context.Context, a domain.Activity) error {
	return putDoc(ctx, e.kv, TableActivities, a.ID, a)
}
