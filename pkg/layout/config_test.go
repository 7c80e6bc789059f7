package layout

import (
	"bytes"
	"math"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/shoenig/test/must"
)

func TestNewConfig(t *testing.T) {
	type tc struct {
		opts    []ConfigOption
		check   func(t *testing.T, c *Config)
		wantErr error
	}

	tests := map[string]tc{
		"defaults": {
			check: func(t *testing.T, c *Config) {
				must.Eq(t, 1.0, c.PointScaleFactor())
				must.False(t, c.UseWebDefaults())
				must.False(t, c.IsExperimentalFeatureEnabled(FeatureWebFlexBasis))
				must.True(t, c.IsExperimentalFeatureEnabled(FeatureRounding))
				must.NotNil(t, c.Logger())
				must.NoError(t, c.Validate())
			},
		},
		"all options": {
			opts: []ConfigOption{
				WithPointScaleFactor(3),
				WithWebDefaults(true),
				WithExperimentalFeature(FeatureWebFlexBasis),
				WithContext("host"),
				WithPrintTree(true),
			},
			check: func(t *testing.T, c *Config) {
				must.Eq(t, 3.0, c.PointScaleFactor())
				must.True(t, c.UseWebDefaults())
				must.True(t, c.IsExperimentalFeatureEnabled(FeatureWebFlexBasis))
				must.Eq[any](t, "host", c.Context())
				must.True(t, c.PrintTree())
			},
		},
		"nil logger discards": {
			opts: []ConfigOption{WithLogger(nil)},
			check: func(t *testing.T, c *Config) {
				must.NotNil(t, c.Logger())
			},
		},
		"negative scale": {
			opts:    []ConfigOption{WithPointScaleFactor(-1)},
			wantErr: ErrInvalidPointScaleFactor,
		},
		"nan scale": {
			opts:    []ConfigOption{WithPointScaleFactor(math.NaN())},
			wantErr: ErrInvalidPointScaleFactor,
		},
		"unknown feature": {
			opts:    []ConfigOption{WithExperimentalFeature(ExperimentalFeature(99))},
			wantErr: ErrUnknownValue,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := NewConfig(tt.opts...)
			if tt.wantErr != nil {
				must.ErrorIs(t, err, tt.wantErr)
				must.Nil(t, c)
				return
			}
			must.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestNewConfig_CollectsAllErrors(t *testing.T) {
	_, err := NewConfig(
		WithPointScaleFactor(-2),
		WithExperimentalFeature(ExperimentalFeature(42)),
	)
	must.Error(t, err)

	merr, ok := err.(*multierror.Error)
	must.True(t, ok)
	must.Len(t, 2, merr.Errors)
	must.ErrorIs(t, err, ErrInvalidPointScaleFactor)
	must.ErrorIs(t, err, ErrUnknownValue)
}

func TestConfig_SetPointScaleFactor(t *testing.T) {
	c := DefaultConfig()

	must.NoError(t, c.SetPointScaleFactor(0))
	must.Eq(t, 0.0, c.PointScaleFactor())

	must.ErrorIs(t, c.SetPointScaleFactor(-0.5), ErrInvalidPointScaleFactor)
	must.Eq(t, 0.0, c.PointScaleFactor())
}

func TestConfig_Setters(t *testing.T) {
	c := DefaultConfig()

	c.SetExperimentalFeatureEnabled(FeatureWebFlexBasis, true)
	must.True(t, c.IsExperimentalFeatureEnabled(FeatureWebFlexBasis))
	c.SetExperimentalFeatureEnabled(FeatureWebFlexBasis, false)
	must.False(t, c.IsExperimentalFeatureEnabled(FeatureWebFlexBasis))
	c.SetExperimentalFeatureEnabled(FeatureRounding, false)
	must.False(t, c.IsExperimentalFeatureEnabled(FeatureRounding))

	c.SetUseWebDefaults(true)
	must.True(t, c.UseWebDefaults())

	c.SetContext(42)
	must.Eq[any](t, 42, c.Context())

	must.Nil(t, c.CloneNodeFunc())
	c.SetCloneNodeFunc(func(old, owner *Node, i int) *Node { return nil })
	must.NotNil(t, c.CloneNodeFunc())

	c.SetPrintTree(true)
	must.True(t, c.PrintTree())
}

func TestDecodeConfig(t *testing.T) {
	type tc struct {
		input   map[string]any
		opts    []ConfigOption
		check   func(t *testing.T, c *Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty map": {
			input: map[string]any{},
			check: func(t *testing.T, c *Config) {
				must.Eq(t, 1.0, c.PointScaleFactor())
			},
		},
		"all keys": {
			input: map[string]any{
				"pointScaleFactor":     2,
				"useWebDefaults":       true,
				"printTree":            "true",
				"experimentalFeatures": []any{"web-flex-basis", "rounding"},
			},
			check: func(t *testing.T, c *Config) {
				must.Eq(t, 2.0, c.PointScaleFactor())
				must.True(t, c.UseWebDefaults())
				must.True(t, c.PrintTree())
				must.True(t, c.IsExperimentalFeatureEnabled(FeatureWebFlexBasis))
				must.True(t, c.IsExperimentalFeatureEnabled(FeatureRounding))
			},
		},
		"options override decoded values": {
			input: map[string]any{"pointScaleFactor": 2},
			opts:  []ConfigOption{WithPointScaleFactor(4)},
			check: func(t *testing.T, c *Config) {
				must.Eq(t, 4.0, c.PointScaleFactor())
			},
		},
		"unknown key": {
			input:   map[string]any{"pointScale": 2},
			wantErr: "pointScale",
		},
		"unknown feature": {
			input:   map[string]any{"experimentalFeatures": []any{"legacy-stretch"}},
			wantErr: "legacy-stretch",
		},
		"negative scale": {
			input:   map[string]any{"pointScaleFactor": -1},
			wantErr: ErrInvalidPointScaleFactor.Error(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := DecodeConfig(tt.input, tt.opts...)
			if tt.wantErr != "" {
				must.ErrorContains(t, err, tt.wantErr)
				return
			}
			must.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestConfig_TreeErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "flexbox",
		Output: &buf,
		Level:  hclog.Error,
	})
	cfg, err := NewConfig(WithLogger(logger))
	must.NoError(t, err)

	n := NewNodeWithConfig(cfg)
	must.ErrorIs(t, n.MarkDirty(), ErrMarkDirtyWithoutMeasure)

	must.StrContains(t, buf.String(), "flexbox.tree")
	must.StrContains(t, buf.String(), ErrMarkDirtyWithoutMeasure.Error())
}

func TestConfig_PrintTreeTraces(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "flexbox",
		Output: &buf,
		Level:  hclog.Trace,
	})
	cfg, err := NewConfig(WithLogger(logger), WithPrintTree(true))
	must.NoError(t, err)

	root := NewNodeWithConfig(cfg)
	root.SetWidth(10)
	root.SetHeight(10)
	root.CalculateLayout(Undefined, Undefined, LTR)

	must.StrContains(t, buf.String(), "flexbox.layout")
	must.StrContains(t, buf.String(), "layout complete")
	must.StrContains(t, buf.String(), "width: 10")
}
