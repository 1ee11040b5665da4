// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults applied by ClientConfig.WithDefaults.
const (
	DefaultEndpoint            = "http://127.0.0.1:5000/edit"
	DefaultTimeout             = 60 * time.Second
	DefaultUserAgent           = "docreplace/0.1"
	DefaultExpectedContentType = "application/pdf"
	DefaultExtension           = "pdf"
	DefaultOutputName          = "examplePdf"

	// FallbackOutputName is used for the saved file when the output name
	// is empty, matching the name the service itself falls back to.
	FallbackOutputName = "EditedCoverLetter"
)

// HTTPConfig holds shared HTTP settings used for the service request.
type HTTPConfig struct {
	// Timeout bounds one submission from send to the last body byte.
	// Zero selects DefaultTimeout; a negative value disables the deadline.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ClientConfig holds settings for the submission controller.
type ClientConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the full URL of the document-processing service.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// ExpectedContentType is the media type a successful response must carry.
	ExpectedContentType string `json:"expected_content_type" yaml:"expected_content_type" mapstructure:"expected_content_type"`

	// Extension is appended to the output name for the saved file.
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c ClientConfig) WithDefaults() ClientConfig {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.ExpectedContentType == "" {
		c.ExpectedContentType = DefaultExpectedContentType
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	return c
}

// FormConfig holds the values the form is seeded with on start.
type FormConfig struct {
	// OutputName is the initial output base name.
	OutputName string `json:"output_name" yaml:"output_name" mapstructure:"output_name"`

	// Preset is an optional path to a YAML or JSON replacements file.
	Preset string `json:"preset" yaml:"preset" mapstructure:"preset"`

	// Replacements is an inline seed list; it wins over Preset when both are set.
	Replacements []Replacement `json:"replacements" yaml:"replacements" mapstructure:"replacements"`

	// OutDir is the directory downloads are saved into.
	OutDir string `json:"out_dir" yaml:"out_dir" mapstructure:"out_dir"`
}
