package entity

import "storefront/internal/util"

// NormalizeProductIDs coerces a loosely typed favorites list into product ids,
// dropping null, false, zero and empty entries while keeping order and duplicates.
func NormalizeProductIDs(raw []any) []string {
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if util.IsFalsy(v) {
			continue
		}
		ids = append(ids, util.ToString(v))
	}

	return ids
}
