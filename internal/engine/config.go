package engine

import "go.uber.org/zap"

// Config holds settings shared by the nodes created against it: the point
// scale factor used for pixel-grid rounding, compatibility flags, the
// logger the engine reports through, and an opaque caller context.
//
// One Config is typically shared by a whole tree. Mutations take effect on
// the next CalculateLayout.
type Config struct {
	pointScaleFactor float32
	useWebDefaults   bool
	errata           Errata
	logger           *zap.Logger
	context          any
}

// NewConfig returns a Config with a point scale factor of 1 and a no-op
// logger.
func NewConfig() *Config {
	return &Config{
		pointScaleFactor: 1,
		logger:           zap.NewNop(),
	}
}

// defaultConfig backs nodes created without an explicit config.
var defaultConfig = NewConfig()

// SetPointScaleFactor sets the density used to round computed geometry onto
// the pixel grid. A factor of 0 disables rounding.
func (c *Config) SetPointScaleFactor(factor float32) {
	c.pointScaleFactor = factor
}

// PointScaleFactor returns the configured point scale factor.
func (c *Config) PointScaleFactor() float32 {
	return c.pointScaleFactor
}

// SetUseWebDefaults switches style defaults for nodes created against this
// config to match web browsers (row direction, flex-shrink 1).
func (c *Config) SetUseWebDefaults(useWebDefaults bool) {
	c.useWebDefaults = useWebDefaults
}

// UseWebDefaults returns whether web-style defaults are enabled.
func (c *Config) UseWebDefaults() bool {
	return c.useWebDefaults
}

// SetErrata sets the legacy-compatibility flag mask.
func (c *Config) SetErrata(errata Errata) {
	c.errata = errata
}

// Errata returns the legacy-compatibility flag mask.
func (c *Config) Errata() Errata {
	return c.errata
}

// SetLogger sets the logger the engine reports through. A nil logger
// restores the no-op default.
func (c *Config) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

// Logger returns the config's logger.
func (c *Config) Logger() *zap.Logger {
	return c.logger
}

// SetContext attaches an opaque caller value to the config.
func (c *Config) SetContext(context any) {
	c.context = context
}

// Context returns the opaque caller value attached to the config.
func (c *Config) Context() any {
	return c.context
}
