package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/grindlemire/go-flexbox/internal/layout"
	"github.com/grindlemire/go-flexbox/pkg/debug"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// ErrInvalidPointScaleFactor is returned for a negative or NaN scale.
var ErrInvalidPointScaleFactor = errors.New("point scale factor must be a non-negative number")

// CloneNodeFunc produces the replacement for a shared child when its owner
// needs a private copy. Returning nil falls back to Node.Clone.
type CloneNodeFunc func(old, owner *Node, childIndex int) *Node

// PassStats counts the work done by the most recent CalculateLayout call on
// a tree using this config.
type PassStats struct {
	// Visits is the number of layout or measure passes that missed the cache.
	Visits int
	// CacheHits is the number of passes answered from a cache slot.
	CacheHits int
	// MeasureCalls is the number of host measure callback invocations.
	MeasureCalls int
}

// Config holds settings shared by every node of a tree. A config is read
// only during a layout pass apart from its generation counter, so a config
// must not be shared by trees laid out concurrently.
type Config struct {
	logger               hclog.Logger
	experimentalFeatures [layout.FeatureCount]bool
	useWebDefaults       bool
	pointScaleFactor     float64
	cloneNodeFunc        CloneNodeFunc
	context              any
	printTree            bool

	generation uint64
	stats      PassStats
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config) error

// WithLogger sets the logger used for layout tracing and contract
// violations. A nil logger discards output.
func WithLogger(l hclog.Logger) ConfigOption {
	return func(c *Config) error {
		if l == nil {
			l = hclog.NewNullLogger()
		}
		c.logger = l
		return nil
	}
}

// WithPointScaleFactor sets the number of physical pixels per point used by
// pixel rounding. Default is 1. Zero disables rounding.
func WithPointScaleFactor(scale float64) ConfigOption {
	return func(c *Config) error {
		return c.SetPointScaleFactor(scale)
	}
}

// WithExperimentalFeature enables an experimental feature. Use
// SetExperimentalFeatureEnabled to turn off one that is on by default.
func WithExperimentalFeature(f ExperimentalFeature) ConfigOption {
	return func(c *Config) error {
		if int(f) >= layout.FeatureCount {
			return fmt.Errorf("experimental feature %d: %w", f, ErrUnknownValue)
		}
		c.experimentalFeatures[f] = true
		return nil
	}
}

// WithWebDefaults makes new nodes start from WebDefaultStyle and changes
// the default flex shrink to 1.
func WithWebDefaults(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.useWebDefaults = enabled
		return nil
	}
}

// WithCloneNodeFunc sets the callback used to copy shared children.
func WithCloneNodeFunc(fn CloneNodeFunc) ConfigOption {
	return func(c *Config) error {
		c.cloneNodeFunc = fn
		return nil
	}
}

// WithContext attaches an opaque host value to the config.
func WithContext(ctx any) ConfigOption {
	return func(c *Config) error {
		c.context = ctx
		return nil
	}
}

// WithPrintTree logs the whole tree at trace level after every layout.
func WithPrintTree(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.printTree = enabled
		return nil
	}
}

// NewConfig creates a config with default settings and applies opts. Every
// option runs; their errors are returned together.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	c := DefaultConfig()

	var result *multierror.Error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultConfig returns a config with a point scale factor of 1, pixel
// rounding on, and the logger selected by the FLEXBOX_DEBUG environment
// variable.
func DefaultConfig() *Config {
	c := &Config{
		logger:           debug.FromEnv(),
		pointScaleFactor: 1,
	}
	c.experimentalFeatures[FeatureRounding] = true
	return c
}

// Logger returns the config's logger.
func (c *Config) Logger() hclog.Logger { return c.logger }

// PointScaleFactor returns the pixel density used by rounding.
func (c *Config) PointScaleFactor() float64 { return c.pointScaleFactor }

// SetPointScaleFactor changes the pixel density. Zero disables rounding.
func (c *Config) SetPointScaleFactor(scale float64) error {
	if math.IsNaN(scale) || scale < 0 {
		return fmt.Errorf("%v: %w", scale, ErrInvalidPointScaleFactor)
	}
	c.pointScaleFactor = scale
	return nil
}

// SetExperimentalFeatureEnabled toggles an experimental feature. Unknown
// features are ignored.
func (c *Config) SetExperimentalFeatureEnabled(f ExperimentalFeature, enabled bool) {
	if int(f) < layout.FeatureCount {
		c.experimentalFeatures[f] = enabled
	}
}

// IsExperimentalFeatureEnabled reports whether f is on.
func (c *Config) IsExperimentalFeatureEnabled(f ExperimentalFeature) bool {
	return int(f) < layout.FeatureCount && c.experimentalFeatures[f]
}

// UseWebDefaults reports whether new nodes get web default styles.
func (c *Config) UseWebDefaults() bool { return c.useWebDefaults }

// SetUseWebDefaults toggles web defaults for nodes created afterwards.
func (c *Config) SetUseWebDefaults(enabled bool) { c.useWebDefaults = enabled }

// CloneNodeFunc returns the shared-child clone callback.
func (c *Config) CloneNodeFunc() CloneNodeFunc { return c.cloneNodeFunc }

// SetCloneNodeFunc sets the shared-child clone callback.
func (c *Config) SetCloneNodeFunc(fn CloneNodeFunc) { c.cloneNodeFunc = fn }

// Context returns the host value attached to the config.
func (c *Config) Context() any { return c.context }

// SetContext attaches a host value to the config.
func (c *Config) SetContext(ctx any) { c.context = ctx }

// PrintTree reports whether the tree is logged after every layout.
func (c *Config) PrintTree() bool { return c.printTree }

// SetPrintTree toggles logging of the tree after every layout.
func (c *Config) SetPrintTree(enabled bool) { c.printTree = enabled }

// LastPassStats returns the counters of the most recent layout pass.
func (c *Config) LastPassStats() PassStats { return c.stats }

// Validate checks the config for inconsistent settings.
func (c *Config) Validate() error {
	var result *multierror.Error
	if math.IsNaN(c.pointScaleFactor) || c.pointScaleFactor < 0 {
		result = multierror.Append(result, fmt.Errorf("%v: %w", c.pointScaleFactor, ErrInvalidPointScaleFactor))
	}
	if c.logger == nil {
		result = multierror.Append(result, errors.New("logger is nil"))
	}
	return result.ErrorOrNil()
}

// nextGeneration starts a new layout pass and returns its number. The
// counter never yields 0 so that 0 can mean "never visited".
func (c *Config) nextGeneration() uint64 {
	c.generation++
	if c.generation == 0 {
		c.generation = 1
	}
	c.stats = PassStats{}
	return c.generation
}

// configInput is the map shape accepted by DecodeConfig.
type configInput struct {
	PointScaleFactor     *float64              `mapstructure:"pointScaleFactor"`
	UseWebDefaults       *bool                 `mapstructure:"useWebDefaults"`
	PrintTree            *bool                 `mapstructure:"printTree"`
	ExperimentalFeatures []ExperimentalFeature `mapstructure:"experimentalFeatures"`
}

// DecodeConfig builds a config from a generic map, such as one read from a
// host's settings file:
//
//	{"pointScaleFactor": 2, "useWebDefaults": true,
//	 "experimentalFeatures": ["web-flex-basis"]}
//
// Unknown keys are rejected. opts are applied after the decoded settings.
func DecodeConfig(input map[string]any, opts ...ConfigOption) (*Config, error) {
	var in configInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(featureDecodeHook),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &in,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var decoded []ConfigOption
	if in.PointScaleFactor != nil {
		decoded = append(decoded, WithPointScaleFactor(*in.PointScaleFactor))
	}
	if in.UseWebDefaults != nil {
		decoded = append(decoded, WithWebDefaults(*in.UseWebDefaults))
	}
	if in.PrintTree != nil {
		decoded = append(decoded, WithPrintTree(*in.PrintTree))
	}
	for _, f := range in.ExperimentalFeatures {
		decoded = append(decoded, WithExperimentalFeature(f))
	}

	return NewConfig(append(decoded, opts...)...)
}

var featureType = reflect.TypeOf(ExperimentalFeature(0))

func featureDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != featureType || from.Kind() != reflect.String {
		return data, nil
	}
	return layout.ParseExperimentalFeature(reflect.ValueOf(data).String())
}
