package layout

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
)

// styleInput is the shape of a style property map. Pointer fields stay nil
// when the key is absent so the base style shows through.
type styleInput struct {
	Direction      *Direction     `mapstructure:"direction"`
	FlexDirection  *FlexDirection `mapstructure:"flexDirection"`
	JustifyContent *Justify       `mapstructure:"justifyContent"`
	AlignContent   *Align         `mapstructure:"alignContent"`
	AlignItems     *Align         `mapstructure:"alignItems"`
	AlignSelf      *Align         `mapstructure:"alignSelf"`
	PositionType   *PositionType  `mapstructure:"position"`
	FlexWrap       *Wrap          `mapstructure:"flexWrap"`
	Overflow       *Overflow      `mapstructure:"overflow"`
	Display        *Display       `mapstructure:"display"`

	Flex        *float64 `mapstructure:"flex"`
	FlexGrow    *float64 `mapstructure:"flexGrow"`
	FlexShrink  *float64 `mapstructure:"flexShrink"`
	FlexBasis   *Value   `mapstructure:"flexBasis"`
	AspectRatio *float64 `mapstructure:"aspectRatio"`

	Width     *Value `mapstructure:"width"`
	Height    *Value `mapstructure:"height"`
	MinWidth  *Value `mapstructure:"minWidth"`
	MinHeight *Value `mapstructure:"minHeight"`
	MaxWidth  *Value `mapstructure:"maxWidth"`
	MaxHeight *Value `mapstructure:"maxHeight"`

	Edges map[string]any `mapstructure:",remain"`
}

var edgeKeySuffixes = map[string]Edge{
	"":           EdgeAll,
	"Left":       EdgeLeft,
	"Top":        EdgeTop,
	"Right":      EdgeRight,
	"Bottom":     EdgeBottom,
	"Start":      EdgeStart,
	"End":        EdgeEnd,
	"Horizontal": EdgeHorizontal,
	"Vertical":   EdgeVertical,
}

var positionKeys = map[string]Edge{
	"left":   EdgeLeft,
	"top":    EdgeTop,
	"right":  EdgeRight,
	"bottom": EdgeBottom,
	"start":  EdgeStart,
	"end":    EdgeEnd,
}

// DecodeStyle applies a property map onto base and returns the result.
// Keys use the camelCase names of the corresponding CSS properties
// ("flexDirection", "marginLeft", "borderTopWidth", "left", ...). Enum
// values are CSS keywords and dimensions are numbers or strings accepted by
// ParseValue. All problems are reported together.
func DecodeStyle(input map[string]any, base Style) (Style, error) {
	var in styleInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &in,
		DecodeHook: mapstructure.DecodeHookFuncType(styleDecodeHook),
	})
	if err != nil {
		return base, err
	}
	// Field errors do not stop the decoder, so the edge keys below are still
	// checked and every problem is reported in one error.
	var mErr *multierror.Error
	if err := dec.Decode(input); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("decoding style: %w", err))
	}

	s := base
	setIf(&s.Direction, in.Direction)
	setIf(&s.FlexDirection, in.FlexDirection)
	setIf(&s.JustifyContent, in.JustifyContent)
	setIf(&s.AlignContent, in.AlignContent)
	setIf(&s.AlignItems, in.AlignItems)
	setIf(&s.AlignSelf, in.AlignSelf)
	setIf(&s.PositionType, in.PositionType)
	setIf(&s.FlexWrap, in.FlexWrap)
	setIf(&s.Overflow, in.Overflow)
	setIf(&s.Display, in.Display)
	setIf(&s.Flex, in.Flex)
	setIf(&s.FlexGrow, in.FlexGrow)
	setIf(&s.FlexShrink, in.FlexShrink)
	setIf(&s.FlexBasis, in.FlexBasis)
	setIf(&s.AspectRatio, in.AspectRatio)
	setIf(&s.Dimensions[DimensionWidth], in.Width)
	setIf(&s.Dimensions[DimensionHeight], in.Height)
	setIf(&s.MinDimensions[DimensionWidth], in.MinWidth)
	setIf(&s.MinDimensions[DimensionHeight], in.MinHeight)
	setIf(&s.MaxDimensions[DimensionWidth], in.MaxWidth)
	setIf(&s.MaxDimensions[DimensionHeight], in.MaxHeight)

	keys := make([]string, 0, len(in.Edges))
	for k := range in.Edges {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		edges, edge, ok := edgeForKey(&s, key)
		if !ok {
			mErr = multierror.Append(mErr, fmt.Errorf("style key %q: %w", key, ErrUnknownValue))
			continue
		}
		v, err := ParseValue(in.Edges[key])
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("style key %q: %w", key, err))
			continue
		}
		edges[edge] = v
	}

	if err := mErr.ErrorOrNil(); err != nil {
		return base, err
	}
	return s, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func edgeForKey(s *Style, key string) (*Edges, Edge, bool) {
	if edge, ok := positionKeys[key]; ok {
		return &s.Position, edge, true
	}

	switch {
	case strings.HasPrefix(key, "margin"):
		edge, ok := edgeKeySuffixes[strings.TrimPrefix(key, "margin")]
		return &s.Margin, edge, ok
	case strings.HasPrefix(key, "padding"):
		edge, ok := edgeKeySuffixes[strings.TrimPrefix(key, "padding")]
		return &s.Padding, edge, ok
	case strings.HasPrefix(key, "border") && strings.HasSuffix(key, "Width"):
		edge, ok := edgeKeySuffixes[strings.TrimSuffix(strings.TrimPrefix(key, "border"), "Width")]
		return &s.Border, edge, ok
	}
	return nil, 0, false
}

var (
	valueType         = reflect.TypeOf(Value{})
	directionType     = reflect.TypeOf(Direction(0))
	flexDirectionType = reflect.TypeOf(FlexDirection(0))
	justifyType       = reflect.TypeOf(Justify(0))
	alignType         = reflect.TypeOf(Align(0))
	positionTypeType  = reflect.TypeOf(PositionType(0))
	wrapType          = reflect.TypeOf(Wrap(0))
	overflowType      = reflect.TypeOf(Overflow(0))
	displayType       = reflect.TypeOf(Display(0))
)

// styleDecodeHook turns CSS keywords into enum values and numbers or
// strings into Values.
func styleDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to == valueType {
		return ParseValue(data)
	}
	if from.Kind() != reflect.String {
		return data, nil
	}

	s := reflect.ValueOf(data).String()
	switch to {
	case directionType:
		return ParseDirection(s)
	case flexDirectionType:
		return ParseFlexDirection(s)
	case justifyType:
		return ParseJustify(s)
	case alignType:
		return ParseAlign(s)
	case positionTypeType:
		return ParsePositionType(s)
	case wrapType:
		return ParseWrap(s)
	case overflowType:
		return ParseOverflow(s)
	case displayType:
		return ParseDisplay(s)
	}
	return data, nil
}
