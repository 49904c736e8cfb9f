// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

const readPageSize int32 = 50

var _ ClientInterface = (*Client)(nil)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	res, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issue when reading authorization model: %s", err)
		return nil, err
	}

	return res.AuthorizationModel, nil
}

// CompareModel reports whether the model stored in OpenFGA matches the given one
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}

	if current.SchemaVersion != model.SchemaVersion {
		return false, nil
	}

	stored, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}
	expected, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	var a, b any
	if err := json.Unmarshal(stored, &a); err != nil {
		return false, err
	}
	if err := json.Unmarshal(expected, &b); err != nil {
		return false, err
	}

	return reflect.DeepEqual(a, b), nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = fga.PtrString(user)
	}
	if relation != "" {
		body.Relation = fga.PtrString(relation)
	}
	if object != "" {
		body.Object = fga.PtrString(object)
	}

	options := client.ClientReadOptions{PageSize: fga.PtrInt32(readPageSize)}
	if continuationToken != "" {
		options.ContinuationToken = fga.PtrString(continuationToken)
	}

	res, err := c.c.Read(ctx).Body(body).Options(options).Execute()
	if err != nil {
		c.logger.Errorf("issue when reading tuples: %s", err)
		return nil, err
	}

	return res, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	body := client.ClientWriteRequest{
		Writes: []client.ClientTupleKey{{User: user, Relation: relation, Object: object}},
	}

	if _, err := c.c.Write(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when writing tuple %s %s %s: %s", user, relation, object, err)
		return err
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	deletes := make([]client.ClientTupleKeyWithoutCondition, 0, len(tuples))
	for _, t := range tuples {
		deletes = append(deletes, t.withoutCondition())
	}

	if _, err := c.c.Write(ctx).Body(client.ClientWriteRequest{Deletes: deletes}).Execute(); err != nil {
		c.logger.Errorf("issue when deleting tuples %v: %s", tuples, err)
		return err
	}

	return nil
}

// CreateStore creates a store and returns its id
func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	res, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store %s: %w", name, err)
	}

	return res.Id, nil
}

// WriteModel stores a new authorization model and returns its id
func (c *Client) WriteModel(ctx context.Context, model *fga.AuthorizationModel) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	body := client.ClientWriteAuthorizationModelRequest{
		TypeDefinitions: model.TypeDefinitions,
		SchemaVersion:   model.SchemaVersion,
		Conditions:      model.Conditions,
	}

	res, err := c.c.WriteAuthorizationModel(ctx).Body(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return res.AuthorizationModelId, nil
}

func NewClient(cfg *Config) (*Client, error) {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{ApiToken: cfg.ApiToken},
		}
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfga client: %w", err)
	}

	c.c = fgaClient

	return c, nil
}
