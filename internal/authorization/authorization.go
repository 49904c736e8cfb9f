// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/openfga"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer keeps OpenFGA relationships in line with crew memberships.
// Decisions in this service are taken by Evaluate, the tuples serve downstream consumers.
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model, err := NewAuthorizationModelProvider("v0").GetModel()
	if err != nil {
		return err
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignBoatRole(ctx context.Context, boatID, userID string, role types.CrewRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignBoatRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), RoleRelation(role), BoatTuple(boatID))
}

func (a *Authorizer) ChangeBoatRole(ctx context.Context, boatID, userID string, from, to types.CrewRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ChangeBoatRole")
	defer span.End()

	if from == to {
		return nil
	}

	if err := a.client.DeleteTuple(ctx, UserTuple(userID), RoleRelation(from), BoatTuple(boatID)); err != nil {
		a.logger.Warnf("failed to delete %s tuple for user %s on boat %s: %s", from, userID, boatID, err)
	}

	return a.client.WriteTuple(ctx, UserTuple(userID), RoleRelation(to), BoatTuple(boatID))
}

func (a *Authorizer) RemoveBoatMember(ctx context.Context, boatID, userID string, role types.CrewRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveBoatMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), RoleRelation(role), BoatTuple(boatID))
}

// DeleteBoat removes every tuple pointing at the boat, page by page
func (a *Authorizer) DeleteBoat(ctx context.Context, boatID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteBoat")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", BoatTuple(boatID), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
