package usecase

import (
	"context"

	"restaurant_backend/internal/feature/plat/domain/entity"
)

// DishLookup loads dishes by id. Menus and orders hold weak references to dishes
// and resolve them through it.
type DishLookup interface {
	FindByIDs(ctx context.Context, ids []string) ([]entity.Plat, error)
}

// Resolve returns the dishes for ids in the order given, repeats included.
// Ids with no stored dish are skipped and reported in missing.
func Resolve(ctx context.Context, lookup DishLookup, ids []string) (dishes []entity.Plat, missing []string, err error) {
	index, err := Index(ctx, lookup, ids)
	if err != nil {
		return nil, nil, err
	}
	dishes, missing = Pick(index, ids)
	return dishes, missing, nil
}

// Index loads the dishes among ids with a single lookup, keyed by id.
func Index(ctx context.Context, lookup DishLookup, ids []string) (map[string]entity.Plat, error) {
	if len(ids) == 0 {
		return map[string]entity.Plat{}, nil
	}

	found, err := lookup.FindByIDs(ctx, unique(ids))
	if err != nil {
		return nil, err
	}
	index := make(map[string]entity.Plat, len(found))
	for _, p := range found {
		index[p.ID] = p
	}
	return index, nil
}

// Pick returns the indexed dishes for ids in order, and the ids not in index.
func Pick(index map[string]entity.Plat, ids []string) (dishes []entity.Plat, missing []string) {
	dishes = make([]entity.Plat, 0, len(ids))
	for _, id := range ids {
		p, ok := index[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		dishes = append(dishes, p)
	}
	return dishes, missing
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
