// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
	"google.golang.org/protobuf/encoding/protojson"
)

var models = map[string]string{
	"v0": `model
  schema 1.1

type user

type boat
  relations
    define owner: [user]
    define admin: [user]
    define crew: [user]
    define member: owner or admin or crew
    define can_manage_crew: owner or admin
    define can_manage_events: owner or admin
    define can_delete: owner
`,
}

type AuthorizationModelProvider struct {
	version string
}

// DSL returns the model source for the configured version
func (p *AuthorizationModelProvider) DSL() string {
	return models[p.version]
}

// GetModel compiles the DSL into the SDK representation
func (p *AuthorizationModelProvider) GetModel() (*fga.AuthorizationModel, error) {
	dsl, ok := models[p.version]
	if !ok {
		return nil, fmt.Errorf("unknown authorization model version %q", p.version)
	}

	compiled, err := transformer.TransformDSLToProto(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile authorization model: %w", err)
	}

	raw, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(compiled)
	if err != nil {
		return nil, fmt.Errorf("failed to encode authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
