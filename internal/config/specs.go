// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	LogFile  string `envconfig:"log_file"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`
	AuthenticationAnySubject      bool     `envconfig:"authentication_any_subject" default:"true"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiURL        string `envconfig:"openfga_api_url"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`
	AppURL             string        `envconfig:"app_url" default:"http://localhost:3000"`
	RSVPTokenSecret    string        `envconfig:"rsvp_token_secret" required:"true"`

	ResendAPIKey string `envconfig:"resend_api_key"`
	MailFrom     string `envconfig:"mail_from" default:"Crew <noreply@crew.local>"`

	KafkaBrokers     []string `envconfig:"kafka_brokers"`
	KafkaTopicPrefix string   `envconfig:"kafka_topic_prefix" default:"crew"`
}
