// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 50
	maxPageSize     uint64 = 200
)

// Offset calculates the offset for pagination based on the provided page parameter and page size.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return uint64(pageParam-1) * pageSize
}

// PageSize clamps the requested page size, zero or negative values pick the default.
func PageSize(sizeParam int64) uint64 {
	if sizeParam <= 0 {
		return defaultPageSize
	}
	if uint64(sizeParam) > maxPageSize {
		return maxPageSize
	}
	return uint64(sizeParam)
}
