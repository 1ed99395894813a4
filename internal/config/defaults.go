package config

const (
	defaultFinalLinePolicy = "synthesize"
	defaultTextEncoding    = "utf-8"
	defaultInstrumentTag   = 34118
	defaultSuffix          = "_metadata.json"
	defaultIndent          = 4
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultFallbackLimit   = 50
)

// DefaultFeatures are the instrument settings shown first by the feature view.
var DefaultFeatures = []string{
	"AP_WD",
	"AP_BEAM_TIME",
	"AP_IMAGE_PIXEL_SIZE",
	"AP_HOLDER_HEIGHT",
	"AP_BEAM_CURRENT",
	"AP_HOLDER_DIAMETER",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Extract: Extract{
			FinalLinePolicy: defaultFinalLinePolicy,
			TextEncoding:    defaultTextEncoding,
			InstrumentTag:   defaultInstrumentTag,
		},
		Output: Output{
			Suffix: defaultSuffix,
			Indent: defaultIndent,
		},
		Index: Index{
			Path: defaultIndexPath(),
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		View: View{
			Features:      append([]string(nil), DefaultFeatures...),
			FallbackLimit: defaultFallbackLimit,
		},
	}
}
