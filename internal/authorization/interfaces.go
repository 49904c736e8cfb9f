// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/crew-service/internal/openfga"
	"github.com/canonical/crew-service/internal/types"
)

// AuthorizerInterface mirrors boat roles into OpenFGA
type AuthorizerInterface interface {
	ValidateModel(ctx context.Context) error
	AssignBoatRole(ctx context.Context, boatID, userID string, role types.CrewRole) error
	ChangeBoatRole(ctx context.Context, boatID, userID string, from, to types.CrewRole) error
	RemoveBoatMember(ctx context.Context, boatID, userID string, role types.CrewRole) error
	DeleteBoat(ctx context.Context, boatID string) error
}

type AuthzClientInterface interface {
	ReadModel(ctx context.Context) (*fga.AuthorizationModel, error)
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(ctx context.Context, tuples ...openfga.Tuple) error
}
