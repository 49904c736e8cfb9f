// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
)

// ClientInterface is the subset of the OpenFGA API the relationship mirror needs
type ClientInterface interface {
	ReadModel(ctx context.Context) (*fga.AuthorizationModel, error)
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(ctx context.Context, tuples ...Tuple) error
}
