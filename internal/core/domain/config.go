package domain

// ProcessingConfig is the classification policy for one run.
// Treat it as immutable once handed to a processor.
type ProcessingConfig struct {
	AllowGradeConversion   bool              `json:"allow_grade_conversion" yaml:"allow_grade_conversion"`
	DefaultToPassOnMissing bool              `json:"default_to_pass_on_missing" yaml:"default_to_pass_on_missing"`
	StrictColumnMatching   bool              `json:"strict_column_matching" yaml:"strict_column_matching"`
	GradeMapping           map[string]Status `json:"grade_mapping,omitempty" yaml:"grade_mapping,omitempty"`
	CustomFieldMappings    []string          `json:"custom_field_mappings,omitempty" yaml:"custom_field_mappings,omitempty"`
}

// ConfigOverride is a partial ProcessingConfig. Nil fields keep the base value.
type ConfigOverride struct {
	AllowGradeConversion   *bool             `json:"allow_grade_conversion,omitempty" yaml:"allow_grade_conversion"`
	DefaultToPassOnMissing *bool             `json:"default_to_pass_on_missing,omitempty" yaml:"default_to_pass_on_missing"`
	StrictColumnMatching   *bool             `json:"strict_column_matching,omitempty" yaml:"strict_column_matching"`
	GradeMapping           map[string]Status `json:"grade_mapping,omitempty" yaml:"grade_mapping"`
	CustomFieldMappings    []string          `json:"custom_field_mappings,omitempty" yaml:"custom_field_mappings"`
}

var defaultGradeMapping = map[string]Status{
	"A+": StatusPass, "A": StatusPass, "A-": StatusPass,
	"B+": StatusPass, "B": StatusPass, "B-": StatusPass,
	"C+": StatusPass, "C": StatusPass, "C-": StatusPass,
	"D+": StatusPass, "D": StatusPass, "D-": StatusPass,
	"E": StatusFail, "F": StatusFail, "F+": StatusFail, "F-": StatusFail,
	"S": StatusPass, "CR": StatusPass,
	"U": StatusFail, "NC": StatusFail,
	"IP": StatusPending, "WIP": StatusPending,
}

// DefaultProcessingConfig returns a fresh copy of the documented defaults.
func DefaultProcessingConfig() ProcessingConfig {
	return ProcessingConfig{
		AllowGradeConversion:   true,
		DefaultToPassOnMissing: true,
		StrictColumnMatching:   false,
		GradeMapping:           copyGradeMapping(defaultGradeMapping),
	}
}

// DefaultTarget is the status assigned when there is no usable signal.
func (c ProcessingConfig) DefaultTarget() Status {
	if c.DefaultToPassOnMissing {
		return StatusPass
	}

	return StatusPending
}

// Apply returns a copy of c with every non-nil override field replacing the base value.
// A non-nil GradeMapping replaces the whole map rather than merging entries.
func (c ProcessingConfig) Apply(o ConfigOverride) ProcessingConfig {
	out := c.Clone()

	if o.AllowGradeConversion != nil {
		out.AllowGradeConversion = *o.AllowGradeConversion
	}

	if o.DefaultToPassOnMissing != nil {
		out.DefaultToPassOnMissing = *o.DefaultToPassOnMissing
	}

	if o.StrictColumnMatching != nil {
		out.StrictColumnMatching = *o.StrictColumnMatching
	}

	if o.GradeMapping != nil {
		out.GradeMapping = copyGradeMapping(o.GradeMapping)
	}

	if o.CustomFieldMappings != nil {
		out.CustomFieldMappings = append([]string(nil), o.CustomFieldMappings...)
	}

	return out
}

// Clone deep-copies the map and slice fields.
func (c ProcessingConfig) Clone() ProcessingConfig {
	out := c
	out.GradeMapping = copyGradeMapping(c.GradeMapping)

	if c.CustomFieldMappings != nil {
		out.CustomFieldMappings = append([]string(nil), c.CustomFieldMappings...)
	}

	return out
}

func copyGradeMapping(m map[string]Status) map[string]Status {
	if m == nil {
		return nil
	}

	out := make(map[string]Status, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
