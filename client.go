package gantry

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ClientConfig carries the settings a client is constructed from. The
// scalar fields can be loaded from the environment with LoadClientConfig;
// the handle fields must be filled in by the caller.
type ClientConfig struct {
	// Endpoint is the host:port the client dials.
	Endpoint string `env:"GANTRY_ENDPOINT" validate:"omitempty,hostname_port"`

	// UserAgent is sent with every call.
	UserAgent string `env:"GANTRY_USER_AGENT"`

	// TransportChannel carries the client's calls. Required.
	TransportChannel TransportChannel `env:"-" validate:"required"`

	// Credentials authorize calls. Optional; absent means unauthenticated.
	Credentials Credentials `env:"-"`

	// Tracer observes calls. Optional; defaults to NoopTracer.
	Tracer Tracer `env:"-"`

	// Logger receives client logs. Optional; defaults to slog.Default.
	Logger *slog.Logger `env:"-"`
}

// LoadClientConfig builds a ClientConfig from the environment. The handle
// fields (transport channel, credentials, tracer, logger) cannot come from
// the environment and are left nil for the caller to fill in before
// NewClientContext.
func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

// ClientContext is the validated, materialized form of a ClientConfig. Call
// contexts seed their transport channel and credentials from it.
type ClientContext struct {
	endpoint  string
	userAgent string
	channel   TransportChannel
	creds     Credentials
	tracer    Tracer
	logger    *slog.Logger
}

// NewClientContext validates cfg and materializes a ClientContext. A config
// that fails validation is reported as a CodeInvalidArgument error with
// per-field details.
func NewClientContext(cfg ClientConfig) (*ClientContext, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, DefaultErrorTransformer(err)
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = NoopTracer()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ClientContext{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		channel:   cfg.TransportChannel,
		creds:     cfg.Credentials,
		tracer:    tracer,
		logger:    logger,
	}, nil
}

// Endpoint returns the host:port the client dials.
func (c *ClientContext) Endpoint() string {
	return c.endpoint
}

// UserAgent returns the user agent sent with every call.
func (c *ClientContext) UserAgent() string {
	return c.userAgent
}

// TransportChannel returns the channel carrying the client's calls.
func (c *ClientContext) TransportChannel() TransportChannel {
	return c.channel
}

// Credentials returns the client's credentials, or nil when the client is
// unauthenticated.
func (c *ClientContext) Credentials() Credentials {
	return c.creds
}

// Tracer returns the client's tracer. Never nil.
func (c *ClientContext) Tracer() Tracer {
	return c.tracer
}

// Logger returns the client's logger. Never nil.
func (c *ClientContext) Logger() *slog.Logger {
	return c.logger
}
